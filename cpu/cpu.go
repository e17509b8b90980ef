// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/intcode/io"
)

// Cpu is a single intcode engine. It exclusively owns its Memory; nothing
// in it is safe for concurrent use, so each engine runs on one goroutine.
type Cpu struct {
	Memory       Memory // Program tape.
	Ip           int64  // Address of the next instruction.
	RelativeBase int64  // Base of MODE_RELATIVE parameters.
	State        State  // Execution state.
	Fault        error  // Fault that moved the engine to STATE_FAULTED.

	Input   io.Source // Input values. A nil Input is always exhausted.
	Output  io.Sink   // Output observer. May be nil.
	Outputs []int64   // Every value output so far, in order.

	Ticks int // Instructions retired.

	Log *logrus.Entry // Trace logging, at debug level.
}

// NewCpu creates an engine running a private copy of program.
func NewCpu(program Program, input io.Source, output io.Sink) (cpu *Cpu) {
	cpu = &Cpu{
		Input:  input,
		Output: output,
		Log:    logrus.NewEntry(logrus.StandardLogger()),
	}
	cpu.Memory.Load(program)

	return
}

// String returns the current engine state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("%6s: %v\n", "state", cpu.State)
	text += fmt.Sprintf("%6s: %d\n", "ip", cpu.Ip)
	text += fmt.Sprintf("%6s: %d\n", "base", cpu.RelativeBase)
	text += fmt.Sprintf("%6s: %d\n", "ticks", cpu.Ticks)
	text += fmt.Sprintf("%6s: %d\n", "memory", cpu.Memory.Len())
	if word, err := cpu.Memory.Read(cpu.Ip); err == nil {
		if code, err := Decode(word); err == nil {
			text += fmt.Sprintf("%6s: %v\n", "code", code)
		} else {
			text += fmt.Sprintf("%6s: %d ?\n", "code", word)
		}
	}
	if cpu.Fault != nil {
		text += fmt.Sprintf("%6s: %v\n", "fault", cpu.Fault)
	}

	return
}

// Halted returns true once the engine has executed OP_HALT.
func (cpu *Cpu) Halted() bool {
	return cpu.State == STATE_HALTED
}

// Fetch decodes the instruction at the instruction pointer.
func (cpu *Cpu) Fetch() (code Code, inst Instruction, err error) {
	word, err := cpu.Memory.Read(cpu.Ip)
	if err != nil {
		return
	}

	code, err = Decode(word)
	if err != nil {
		return
	}

	inst, _ = Lookup(code.Opcode)
	return
}

// resolve computes the operands of a decoded instruction.
func (cpu *Cpu) resolve(code Code, inst Instruction) (ops Operands, err error) {
	ops.RelativeBase = cpu.RelativeBase

	for n := range inst.Arity {
		var raw int64
		raw, err = cpu.Memory.Read(cpu.Ip + 1 + int64(n))
		if err != nil {
			return
		}

		if inst.Store && n == inst.Arity-1 {
			ops.Dest, err = cpu.addressOf(code.Modes[n], raw)
			if err != nil {
				return
			}
			continue
		}

		switch code.Modes[n] {
		case MODE_IMMEDIATE:
			ops.Args[n] = raw
		default:
			var addr int64
			addr, err = cpu.addressOf(code.Modes[n], raw)
			if err != nil {
				return
			}
			ops.Args[n], err = cpu.Memory.Read(addr)
			if err != nil {
				return
			}
		}
	}

	return
}

// addressOf returns the address a position or relative parameter refers to.
func (cpu *Cpu) addressOf(mode Mode, raw int64) (addr int64, err error) {
	switch mode {
	case MODE_POSITION:
		addr = raw
	case MODE_RELATIVE:
		addr, err = AddInt64(cpu.RelativeBase, raw)
	default:
		err = ErrModeInvalid
	}
	return
}

// receive obtains the input value for OP_IN. ok is false if the engine
// must wait for the value.
func (cpu *Cpu) receive(ctx context.Context, poll bool) (value int64, ok bool, err error) {
	if cpu.Input == nil {
		err = ErrInputExhausted
		return
	}

	if poller, is_poller := cpu.Input.(io.Poller); poll && is_poller {
		value, ok, err = poller.Poll()
	} else {
		cpu.State = STATE_AWAITING_INPUT
		value, err = cpu.Input.Receive(ctx)
		ok = err == nil
	}

	if errors.Is(err, io.ErrExhausted) {
		err = errors.Join(ErrInputExhausted, err)
	}

	return
}

// Tick executes a single instruction, blocking for input if an input
// instruction finds none ready.
func (cpu *Cpu) Tick(ctx context.Context) (err error) {
	return cpu.cycle(ctx, false)
}

// Step executes a single instruction without blocking on a Poller input.
// If the instruction needs input that is not ready, Step returns nil with
// the engine in STATE_AWAITING_INPUT and nothing changed; the same
// instruction is retried by the next Step or Tick. Inputs that are not
// Pollers are received as in Tick.
func (cpu *Cpu) Step() (err error) {
	return cpu.cycle(context.Background(), true)
}

// cycle is the fetch, decode, execute loop body.
func (cpu *Cpu) cycle(ctx context.Context, poll bool) (err error) {
	switch cpu.State {
	case STATE_HALTED:
		return ErrHalted
	case STATE_FAULTED:
		return errors.Join(ErrFaulted, cpu.Fault)
	}

	var code Code
	defer func() {
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		err = &ErrFault{Ip: cpu.Ip, Word: code.Word, Err: err}
		cpu.State = STATE_FAULTED
		cpu.Fault = err
		cpu.Log.WithField("ip", cpu.Ip).Debugf("fault: %v", err)
	}()

	code, inst, err := cpu.Fetch()
	if err != nil {
		return
	}

	ops, err := cpu.resolve(code, inst)
	if err != nil {
		return
	}

	if inst.Input {
		var ok bool
		ops.Input, ok, err = cpu.receive(ctx, poll)
		if err != nil || !ok {
			if err == nil {
				cpu.State = STATE_AWAITING_INPUT
			}
			return
		}
	}
	cpu.State = STATE_RUNNING

	if cpu.Log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		cpu.Log.WithFields(logrus.Fields{
			"ip":   cpu.Ip,
			"base": cpu.RelativeBase,
			"args": ops.Args[:inst.Arity],
		}).Debugf("%v", code)
	}

	effect, err := inst.Handler(&ops)
	if err != nil {
		return
	}

	err = cpu.apply(ctx, code, effect)
	return
}

// apply commits an instruction's effect to the engine.
func (cpu *Cpu) apply(ctx context.Context, code Code, effect Effect) (err error) {
	for _, write := range effect.Writes {
		err = cpu.Memory.Write(write.Addr, write.Value)
		if err != nil {
			return
		}
	}

	if effect.RelativeDelta != 0 {
		var base int64
		base, err = AddInt64(cpu.RelativeBase, effect.RelativeDelta)
		if err != nil {
			return
		}
		cpu.RelativeBase = base
	}

	if effect.Output {
		if cpu.Output != nil {
			err = cpu.Output.Send(ctx, effect.Value)
			if err != nil {
				if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
					err = errors.Join(ErrOutput, err)
				}
				return
			}
		}
		cpu.Outputs = append(cpu.Outputs, effect.Value)
	}

	cpu.Ticks++

	if effect.Halt {
		cpu.State = STATE_HALTED
		cpu.Log.WithField("ticks", cpu.Ticks).Debug("halt")
		return
	}

	if effect.Jump {
		cpu.Ip = effect.Target
	} else {
		cpu.Ip += code.Size()
	}

	return
}

// Run executes instructions until the engine halts or faults.
func (cpu *Cpu) Run(ctx context.Context) (err error) {
	for !cpu.Halted() {
		err = cpu.Tick(ctx)
		if err != nil {
			return
		}
	}
	return
}
