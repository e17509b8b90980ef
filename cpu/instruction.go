package cpu

import (
	"math"
)

// Operands are the resolved inputs of an instruction handler.
type Operands struct {
	Args         [PARAMETER_LIMIT]int64 // Parameter values, in order.
	Dest         int64                  // Destination address, for storing instructions.
	Input        int64                  // Input value, for OP_IN.
	RelativeBase int64                  // Relative base at decode time.
}

// Write is a single memory store requested by an instruction.
type Write struct {
	Addr  int64
	Value int64
}

// Effect describes everything an instruction changes. The engine applies
// it after the handler returns.
type Effect struct {
	Writes        []Write // Memory stores, applied in order.
	Jump          bool    // If set, Target replaces the next instruction pointer.
	Target        int64
	RelativeDelta int64 // Added to the relative base.
	Output        bool  // If set, Value is emitted.
	Value         int64
	Halt          bool // Stop execution.
}

// Handler computes the effect of an instruction from its operands.
type Handler func(ops *Operands) (effect Effect, err error)

// Instruction describes one opcode of the instruction set.
type Instruction struct {
	Opcode  Opcode
	Arity   int  // Parameter count, excluding the opcode cell.
	Store   bool // Last parameter is a destination address.
	Input   bool // Consumes one input value.
	Handler Handler
}

var _instruction_set = map[Opcode]Instruction{
	OP_ADD:  {Opcode: OP_ADD, Arity: 3, Store: true, Handler: opAdd},
	OP_MUL:  {Opcode: OP_MUL, Arity: 3, Store: true, Handler: opMul},
	OP_IN:   {Opcode: OP_IN, Arity: 1, Store: true, Input: true, Handler: opIn},
	OP_OUT:  {Opcode: OP_OUT, Arity: 1, Handler: opOut},
	OP_JNZ:  {Opcode: OP_JNZ, Arity: 2, Handler: opJnz},
	OP_JZ:   {Opcode: OP_JZ, Arity: 2, Handler: opJz},
	OP_LT:   {Opcode: OP_LT, Arity: 3, Store: true, Handler: opLt},
	OP_EQ:   {Opcode: OP_EQ, Arity: 3, Store: true, Handler: opEq},
	OP_ARB:  {Opcode: OP_ARB, Arity: 1, Handler: opArb},
	OP_HALT: {Opcode: OP_HALT, Arity: 0, Handler: opHalt},
}

// Lookup returns the instruction for an opcode.
func Lookup(op Opcode) (inst Instruction, ok bool) {
	inst, ok = _instruction_set[op]
	return
}

// AddInt64 returns a + b, or ErrOverflow if the sum does not fit.
func AddInt64(a, b int64) (sum int64, err error) {
	sum = a + b
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		err = ErrOverflow
	}
	return
}

// MulInt64 returns a * b, or ErrOverflow if the product does not fit.
func MulInt64(a, b int64) (product int64, err error) {
	if a == 0 || b == 0 {
		return
	}

	product = a * b
	if product/b != a ||
		(a == -1 && b == math.MinInt64) ||
		(b == -1 && a == math.MinInt64) {
		err = ErrOverflow
	}
	return
}

func boolValue(cond bool) int64 {
	if cond {
		return 1
	}
	return 0
}

func opAdd(ops *Operands) (effect Effect, err error) {
	sum, err := AddInt64(ops.Args[0], ops.Args[1])
	if err != nil {
		return
	}
	effect.Writes = []Write{{Addr: ops.Dest, Value: sum}}
	return
}

func opMul(ops *Operands) (effect Effect, err error) {
	product, err := MulInt64(ops.Args[0], ops.Args[1])
	if err != nil {
		return
	}
	effect.Writes = []Write{{Addr: ops.Dest, Value: product}}
	return
}

func opIn(ops *Operands) (effect Effect, err error) {
	effect.Writes = []Write{{Addr: ops.Dest, Value: ops.Input}}
	return
}

func opOut(ops *Operands) (effect Effect, err error) {
	effect.Output = true
	effect.Value = ops.Args[0]
	return
}

func opJnz(ops *Operands) (effect Effect, err error) {
	if ops.Args[0] != 0 {
		effect.Jump = true
		effect.Target = ops.Args[1]
	}
	return
}

func opJz(ops *Operands) (effect Effect, err error) {
	if ops.Args[0] == 0 {
		effect.Jump = true
		effect.Target = ops.Args[1]
	}
	return
}

func opLt(ops *Operands) (effect Effect, err error) {
	effect.Writes = []Write{{Addr: ops.Dest, Value: boolValue(ops.Args[0] < ops.Args[1])}}
	return
}

func opEq(ops *Operands) (effect Effect, err error) {
	effect.Writes = []Write{{Addr: ops.Dest, Value: boolValue(ops.Args[0] == ops.Args[1])}}
	return
}

func opArb(ops *Operands) (effect Effect, err error) {
	effect.RelativeDelta = ops.Args[0]
	return
}

func opHalt(ops *Operands) (effect Effect, err error) {
	effect.Halt = true
	return
}
