package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrExhausted = errors.New(f("input exhausted"))
	ErrClosed    = errors.New(f("channel closed"))
	ErrScript    = errors.New(f("script"))
)

// ErrParse reports a tape token that is not an integer.
type ErrParse string

func (err ErrParse) Error() string {
	return f("'%v' is not a number", string(err))
}
