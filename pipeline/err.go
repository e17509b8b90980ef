package pipeline

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoPhases = errors.New(f("no phases"))
	ErrNoOutput = errors.New(f("no output"))
)

// ErrEngine identifies the engine that failed.
type ErrEngine struct {
	Index int
	Phase int64
	Err   error
}

func (err *ErrEngine) Error() string {
	return f("engine %d (phase %d): %v", err.Index, err.Phase, err.Err)
}

func (err *ErrEngine) Unwrap() error {
	return err.Err
}

// ErrDeadlock is a simulated pipeline where every unhalted engine waits
// on input that will never arrive.
type ErrDeadlock struct {
	Round   int
	Waiting int
}

func (err *ErrDeadlock) Error() string {
	return f("deadlock in round %d: %d engines waiting for input", err.Round, err.Waiting)
}
