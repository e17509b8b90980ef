// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

// Emulator state. An engine plus its IO channels.
type Emulator struct {
	Verbose  bool        // If set, enables verbose logging.
	*cpu.Cpu             // Reference to the engine simulation.
	Program  cpu.Program // Program image the engine is reset to.

	Input  io.Source // Input channel.
	Output io.Sink   // Output channel. May be nil.
}

// NewEmulator creates a new emulator, ready to run program.
func NewEmulator(program cpu.Program, input io.Source, output io.Sink) (emu *Emulator) {
	emu = &Emulator{
		Program: program.Clone(),
		Input:   input,
		Output:  output,
	}

	emu.Reset()

	return
}

// Reset the emulator to a fresh engine loaded with the program.
// A halted or faulted engine is never resumed; Reset replaces it.
func (emu *Emulator) Reset() {
	emu.Cpu = cpu.NewCpu(emu.Program, emu.Input, emu.Output)
	emu.setVerbose()
}

func (emu *Emulator) setVerbose() {
	if !emu.Verbose || emu.Cpu.Log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	std := logrus.StandardLogger()
	logger := logrus.New()
	logger.SetOutput(std.Out)
	logger.SetFormatter(std.Formatter)
	logger.SetLevel(logrus.DebugLevel)
	emu.Cpu.Log = logrus.NewEntry(logger)
}

// Patch sets a memory cell, typically before the first Tick.
func (emu *Emulator) Patch(addr int64, value int64) (err error) {
	err = emu.Cpu.Memory.Write(addr, value)
	if err != nil {
		err = &ErrRuntime{Ip: emu.Cpu.Ip, Ticks: emu.Cpu.Ticks, Err: errors.Join(err, ErrPatch)}
	}
	return
}

// Peek returns the value of a memory cell.
func (emu *Emulator) Peek(addr int64) (value int64, err error) {
	value, err = emu.Cpu.Memory.Read(addr)
	if err != nil {
		err = &ErrRuntime{Ip: emu.Cpu.Ip, Ticks: emu.Cpu.Ticks, Err: err}
	}
	return
}

// Ticks returns the total instructions retired since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Tick performs a single instruction of the emulator, blocking for input.
// done is set once the program has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	return emu.tick(context.Background())
}

func (emu *Emulator) tick(ctx context.Context) (done bool, err error) {
	if emu.Verbose {
		emu.setVerbose()
	}

	ip := emu.Cpu.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Ticks: emu.Cpu.Ticks, Err: err}
		}
	}()

	if emu.Cpu.Halted() {
		done = true
		return
	}

	err = emu.Cpu.Tick(ctx)
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()
	return
}

// Run the emulator until the program halts, returning every value it
// output, in order. A halted engine is not re-run: Run returns its
// existing output log with ErrHalted. Use Reset to run again.
func (emu *Emulator) Run(ctx context.Context) (outputs []int64, err error) {
	if emu.Cpu.Halted() {
		outputs = emu.Cpu.Outputs
		err = &ErrRuntime{Ip: emu.Cpu.Ip, Ticks: emu.Cpu.Ticks, Err: cpu.ErrHalted}
		return
	}

	var done bool
	for !done {
		done, err = emu.tick(ctx)
		if err != nil {
			break
		}
	}

	outputs = emu.Cpu.Outputs
	return
}

// Run program to completion with a fixed list of inputs, returning its
// outputs.
func Run(ctx context.Context, program cpu.Program, inputs ...int64) (outputs []int64, err error) {
	emu := NewEmulator(program, io.NewFixed(inputs...), io.Discard)
	return emu.Run(ctx)
}
