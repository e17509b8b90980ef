package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProgram(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "program.ic")
	require.NoError(t, os.WriteFile(path, []byte(text+"\n"), 0o644))
	return path
}

func execute(t *testing.T, input string, args ...string) (output string, err error) {
	out := &bytes.Buffer{}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})

	err = rootCmd.Execute()
	output = out.String()
	return
}

func TestRunCommand(t *testing.T) {
	assert := assert.New(t)

	// Reads values until a zero, outputting each one doubled.
	path := writeProgram(t, "3,20,1006,20,14,1002,20,2,21,4,21,1105,1,0,99")

	// Patch the multiplier to 3.
	output, err := execute(t, "1,2\n3 0", "run", path, "--set", "7=3", "--peek", "21", "--peek", "7")
	assert.NoError(err)
	assert.Equal("3\n6\n9\n[21]=9\n[7]=3\n", output)
}

func TestAmplifyCommand(t *testing.T) {
	assert := assert.New(t)

	path := writeProgram(t, "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")

	output, err := execute(t, "", "amplify", path)
	assert.NoError(err)
	assert.Equal("43210 4,3,2,1,0\n", output)

	output, err = execute(t, "", "amplify", path, "--fixed", "--phases", "4,3,2,1,0")
	assert.NoError(err)
	assert.Equal("43210 4,3,2,1,0\n", output)

	output, err = execute(t, "", "amplify", path, "--fixed", "--simulate", "--phases", "0,1,2,3,4")
	assert.NoError(err)
	assert.Equal("1234 0,1,2,3,4\n", output)
}

func TestAmplifyMissing(t *testing.T) {
	assert := assert.New(t)

	_, err := execute(t, "", "amplify", filepath.Join(t.TempDir(), "missing.ic"))
	assert.ErrorIs(err, os.ErrNotExist)
}
