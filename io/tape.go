package io

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
)

// Tape provides sequential I/O over byte streams.
// In decimal mode (the default) input is a sequence of integers separated
// by commas or whitespace, and each output value is written on its own line.
// In Ascii mode each input byte is one value, and output values in the
// ASCII range are written as bytes.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Ascii  bool

	reader *bufio.Reader
}

var _ Source = (*Tape)(nil)
var _ Sink = (*Tape)(nil)

func isSeparator(b byte) bool {
	switch b {
	case ',', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// Receive reads the next value from the input stream.
// End of input is reported as ErrExhausted. ctx is checked before reading
// only; a read blocked in Input (an idle terminal, say) is not interrupted
// when ctx ends.
func (tc *Tape) Receive(ctx context.Context) (value int64, err error) {
	err = ctx.Err()
	if err != nil {
		return
	}

	if tc.Input == nil {
		err = ErrExhausted
		return
	}

	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}

	if tc.Ascii {
		var b byte
		b, err = tc.reader.ReadByte()
		if err == io.EOF {
			err = ErrExhausted
		}
		value = int64(b)
		return
	}

	var token []byte
	for {
		var b byte
		b, err = tc.reader.ReadByte()
		if err == io.EOF {
			if len(token) == 0 {
				err = ErrExhausted
				return
			}
			err = nil
			break
		}
		if err != nil {
			return
		}
		if isSeparator(b) {
			if len(token) > 0 {
				break
			}
			continue
		}
		token = append(token, b)
	}

	value, err = strconv.ParseInt(string(token), 10, 64)
	if err != nil {
		err = ErrParse(token)
	}

	return
}

// Send writes a value to the output stream.
func (tc *Tape) Send(ctx context.Context, value int64) (err error) {
	if tc.Output == nil {
		return
	}

	if tc.Ascii && value >= 0 && value < 128 {
		_, err = tc.Output.Write([]byte{byte(value)})
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}
