package io

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Decimal(t *testing.T) {
	assert := assert.New(t)

	ctx := context.Background()
	tape := &Tape{Input: strings.NewReader(" 1,-2\n\n1125899906842624 , 4")}

	var values []int64
	for {
		value, err := tape.Receive(ctx)
		if err != nil {
			assert.ErrorIs(err, ErrExhausted)
			break
		}
		values = append(values, value)
	}

	assert.Equal([]int64{1, -2, 1125899906842624, 4}, values)
}

func TestTape_BadNumber(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("12,x3")}

	value, err := tape.Receive(context.Background())
	assert.NoError(err)
	assert.Equal(int64(12), value)

	_, err = tape.Receive(context.Background())
	assert.Equal(ErrParse("x3"), err)
}

func TestTape_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	_, err := tape.Receive(context.Background())
	assert.ErrorIs(err, ErrExhausted)
	assert.NoError(tape.Send(context.Background(), 1))
}

func TestTape_Output(t *testing.T) {
	assert := assert.New(t)

	ctx := context.Background()
	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(ctx, 99))
	assert.NoError(tape.Send(ctx, -7))
	assert.Equal("99\n-7\n", output.String())
}

func TestTape_Ascii(t *testing.T) {
	assert := assert.New(t)

	ctx := context.Background()
	output := &bytes.Buffer{}
	tape := &Tape{
		Input:  strings.NewReader("Hi\n"),
		Output: output,
		Ascii:  true,
	}

	var values []int64
	for {
		value, err := tape.Receive(ctx)
		if err != nil {
			assert.ErrorIs(err, ErrExhausted)
			break
		}
		values = append(values, value)
	}
	assert.Equal([]int64{'H', 'i', '\n'}, values)

	for _, value := range []int64{'O', 'K', '\n', 19349722} {
		assert.NoError(tape.Send(ctx, value))
	}
	assert.Equal("OK\n19349722\n", output.String())
}

func TestTape_Cancelled(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1,2")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tape.Receive(ctx)
	assert.ErrorIs(err, context.Canceled)

	// Nothing was consumed by the cancelled read.
	value, err := tape.Receive(context.Background())
	assert.NoError(err)
	assert.Equal(int64(1), value)
}
