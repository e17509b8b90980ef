package io

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"
)

const counterScript = `
def input():
    n = state.get("n", 0)
    state["n"] = n + 1
    if n >= len(VALUES):
        return None
    return VALUES[n] * SCALE

def output(value):
    state["sum"] = state.get("sum", 0) + value
`

func TestScript(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()

	src := "VALUES = [1, 2, 3]\n" + counterScript
	script, err := NewScript("counter.star", src, map[string]int64{"SCALE": 10})
	require.NoError(err)

	var values []int64
	for {
		value, err := script.Receive(ctx)
		if err != nil {
			assert.ErrorIs(err, ErrExhausted)
			break
		}
		values = append(values, value)
	}
	assert.Equal([]int64{10, 20, 30}, values)

	assert.NoError(script.Send(ctx, 5))
	assert.NoError(script.Send(ctx, 1125899906842624))

	sum, found, err := script.State.Get(starlark.String("sum"))
	assert.NoError(err)
	assert.True(found)
	total, ok := sum.(starlark.Int).Int64()
	assert.True(ok)
	assert.Equal(int64(1125899906842629), total)
}

func TestScript_OutputOnly(t *testing.T) {
	assert := assert.New(t)

	script, err := NewScript("out.star", "def output(v):\n    pass\n", nil)
	assert.NoError(err)
	assert.False(script.HasInput())
	assert.True(script.HasOutput())

	_, err = script.Receive(context.Background())
	assert.ErrorIs(err, ErrExhausted)
	assert.NoError(script.Send(context.Background(), 1))
}

func TestScript_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name string
		src  string
	}{
		{"syntax", "def input(:\n"},
		{"empty", "X = 1\n"},
	}

	for _, entry := range table {
		_, err := NewScript(entry.name, entry.src, nil)
		assert.ErrorIs(err, ErrScript, entry.name)
	}

	script, err := NewScript("bad.star", "def input():\n    return 'x'\n", nil)
	assert.NoError(err)
	_, err = script.Receive(context.Background())
	assert.ErrorIs(err, ErrScript)

	script, err = NewScript("fail.star", "def input():\n    fail('nope')\n", nil)
	assert.NoError(err)
	_, err = script.Receive(context.Background())
	assert.ErrorIs(err, ErrScript)
}

func TestScript_Cancelled(t *testing.T) {
	assert := assert.New(t)

	script, err := NewScript("in.star", "def input():\n    return 1\n", nil)
	assert.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = script.Receive(ctx)
	assert.ErrorIs(err, context.Canceled)
}
