package cpu

import (
	"fmt"
	"strings"
)

// Code is a decoded instruction word.
type Code struct {
	Word   int64                 // Raw instruction word.
	Opcode Opcode                // Operation.
	Modes  [PARAMETER_LIMIT]Mode // Addressing mode of each parameter.
}

// Decode splits an instruction word into its opcode and the modes of the
// opcode's parameters. The hundreds digit is the first parameter's mode,
// the thousands digit the second's, and so on; absent digits are
// MODE_POSITION.
func Decode(word int64) (code Code, err error) {
	code.Word = word

	if word < 0 {
		err = ErrOpcodeInvalid
		return
	}

	code.Opcode = Opcode(word % 100)
	inst, ok := Lookup(code.Opcode)
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	modes := word / 100
	for n := range inst.Arity {
		mode := Mode(modes % 10)
		modes /= 10

		if mode > MODE_RELATIVE {
			err = ErrModeInvalid
			return
		}
		if mode == MODE_IMMEDIATE && inst.Store && n == inst.Arity-1 {
			err = ErrModeInvalid
			return
		}
		code.Modes[n] = mode
	}

	return
}

// Arity returns the number of parameters of the decoded opcode.
func (code Code) Arity() int {
	inst, _ := Lookup(code.Opcode)
	return inst.Arity
}

// Size returns the number of cells the instruction occupies.
func (code Code) Size() int64 {
	return int64(1 + code.Arity())
}

func (code Code) String() string {
	modes := make([]string, code.Arity())
	for n := range modes {
		modes[n] = code.Modes[n].String()
	}
	if len(modes) == 0 {
		return code.Opcode.String()
	}
	return fmt.Sprintf("%v %v", code.Opcode, strings.Join(modes, ","))
}
