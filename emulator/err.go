package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrPatch = errors.New(f("patch failed"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip    int64
	Ticks int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d tick %d %v", err.Ip, err.Ticks, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
