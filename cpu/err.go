package cpu

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Engine state errors
	ErrHalted  = errors.New(f("halted"))
	ErrFaulted = errors.New(f("faulted"))

	// Instruction errors
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrModeInvalid    = errors.New(f("mode invalid"))
	ErrAddressInvalid = errors.New(f("address invalid"))
	ErrOverflow       = errors.New(f("integer overflow"))

	// I/O errors
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrOutput         = errors.New(f("output"))
)

// ErrFault locates a fatal engine fault.
type ErrFault struct {
	Ip   int64 // Instruction pointer of the faulting instruction.
	Word int64 // Raw word at Ip.
	Err  error
}

func (err *ErrFault) Error() string {
	return f("ip %d word %d: %v", err.Ip, err.Word, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrParseNumber is a program cell that is not an integer.
type ErrParseNumber struct {
	Index int
	Token string
}

func (err ErrParseNumber) Error() string {
	return f("cell %d '%v' is not a number", err.Index, err.Token)
}
