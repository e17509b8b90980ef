package cpu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text    string
		program Program
	}{
		{"1,0,0,0,99", Program{1, 0, 0, 0, 99}},
		{" 104, 1125899906842624,99\n", Program{104, 1125899906842624, 99}},
		{"109,-1\n204,1\n99", Program{109, -1, 204, 1, 99}},
		{"", nil},
	}

	for _, entry := range table {
		program, err := Parse(strings.NewReader(entry.text))
		assert.NoError(err, entry.text)
		assert.Equal(entry.program, program, entry.text)
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseString("1,2,x,4")
	assert.Equal(ErrParseNumber{Index: 2, Token: "x"}, err)

	_, err = ParseString("1,99999999999999999999")
	assert.Equal(ErrParseNumber{Index: 1, Token: "99999999999999999999"}, err)

	assert.Panics(func() { MustParse("1,,q") })
}

func TestProgramString(t *testing.T) {
	assert := assert.New(t)

	program := MustParse(quineProgram)
	assert.Equal(quineProgram, program.String())

	clone := program.Clone()
	clone[0] = 0
	assert.Equal(int64(109), program[0])
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "prog.txt")
	require.NoError(os.WriteFile(path, []byte("104,7,99\n"), 0o644))

	program, err := Load(path)
	assert.NoError(err)
	assert.Equal(Program{104, 7, 99}, program)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(os.WriteFile(bad, []byte("104,seven,99"), 0o644))
	_, err = Load(bad)
	assert.ErrorAs(err, &ErrParseNumber{})
	assert.Contains(err.Error(), "bad.txt")
}
