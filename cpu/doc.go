// Package cpu implements the intcode engine.
//
// A program is a tape of signed integers that is copied into a growable
// Memory. Each cycle the engine decodes the word at the instruction pointer
// into an opcode and a mode per parameter, resolves the parameters through
// the position, immediate and relative addressing modes, and applies the
// effects the instruction handler returns: memory writes, a jump, a relative
// base adjustment, an output value, or a halt.
//
// Input is pulled from an io.Source. An engine that needs input which is not
// yet available suspends at the input instruction, without side effects, and
// resumes there once a value arrives. Tick blocks for it; Step returns and
// leaves the engine in STATE_AWAITING_INPUT for an external scheduler.
package cpu
