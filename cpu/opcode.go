package cpu

// Opcode is the operation selected by the low two decimal digits of an
// instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JNZ  = Opcode(5)  // jnz
	OP_JZ   = Opcode(6)  // jz
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_ARB  = Opcode(9)  // arb
	OP_HALT = Opcode(99) // hlt
)

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

// State is the execution state of an engine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING        = State(0) // running
	STATE_AWAITING_INPUT = State(1) // awaiting-input
	STATE_HALTED         = State(2) // halted
	STATE_FAULTED        = State(3) // faulted
)

const (
	PARAMETER_LIMIT = 3 // Maximum parameters of any instruction.
)
