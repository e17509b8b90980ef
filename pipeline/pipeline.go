// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package pipeline chains intcode engines running the same program, each
// engine's output feeding the next engine's input.
package pipeline

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/io"
)

// Pipeline is a chain of engines, one per phase setting.
type Pipeline struct {
	Program  cpu.Program // Program every engine runs.
	Phases   []int64     // Phase setting of each engine, in chain order.
	Feedback bool        // If set, the last engine feeds the first.

	Log *logrus.Entry // Pipeline logging. May be nil.
}

// stage is one engine and the queue it writes to.
type stage struct {
	*cpu.Cpu
	Phase int64
	Next  *io.Queue // Queue written to; nil for the last engine of an open chain.
}

// build wires up the engines. Each engine's input queue is seeded with its
// phase; the first engine's is followed by the initial signal. Without
// feedback nothing writes to the first queue, so it starts out closed.
func (pl *Pipeline) build(signal int64) (stages []*stage, err error) {
	if len(pl.Phases) == 0 {
		err = ErrNoPhases
		return
	}

	log := pl.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	queues := make([]*io.Queue, len(pl.Phases))
	for n, phase := range pl.Phases {
		if n == 0 {
			queues[n] = io.NewQueue(phase, signal)
		} else {
			queues[n] = io.NewQueue(phase)
		}
	}
	if !pl.Feedback {
		queues[0].Close()
	}

	stages = make([]*stage, len(pl.Phases))
	for n, phase := range pl.Phases {
		st := &stage{Phase: phase}
		switch {
		case n+1 < len(queues):
			st.Next = queues[n+1]
		case pl.Feedback:
			st.Next = queues[0]
		}

		var sink io.Sink
		if st.Next != nil {
			sink = st.Next
		}
		st.Cpu = cpu.NewCpu(pl.Program, queues[n], sink)
		st.Cpu.Log = log.WithFields(logrus.Fields{"engine": n, "phase": phase})
		stages[n] = st
	}

	return
}

// halt closes the engine's outgoing queue, so a downstream engine waiting
// on it sees the input exhausted instead of waiting forever.
func (st *stage) halt() {
	if st.Next != nil {
		st.Next.Close()
	}
}

// result is the last value output by the last engine.
func result(stages []*stage) (signal int64, err error) {
	last := stages[len(stages)-1]
	if len(last.Outputs) == 0 {
		err = ErrNoOutput
		return
	}

	signal = last.Outputs[len(last.Outputs)-1]
	return
}

// Run the pipeline with every engine on its own goroutine, returning the
// last value output by the last engine. The first engine fault stops the
// remaining engines and is returned. A feedback pipeline that deadlocks
// runs until ctx is done.
func (pl *Pipeline) Run(ctx context.Context, signal int64) (result_signal int64, err error) {
	stages, err := pl.build(signal)
	if err != nil {
		return
	}

	group, group_ctx := errgroup.WithContext(ctx)
	for n, st := range stages {
		group.Go(func() (err error) {
			err = st.Run(group_ctx)
			if err != nil {
				err = &ErrEngine{Index: n, Phase: st.Phase, Err: err}
				return
			}

			st.Log.WithField("ticks", st.Ticks).Debug("halted")
			st.halt()
			return
		})
	}

	err = group.Wait()
	if err != nil {
		return
	}

	result_signal, err = result(stages)
	return
}

// Simulate runs the pipeline on the calling goroutine, round-robin. Each
// engine runs until it halts or must wait for input. A full round in
// which no engine makes progress is a deadlock.
func (pl *Pipeline) Simulate(signal int64) (result_signal int64, err error) {
	stages, err := pl.build(signal)
	if err != nil {
		return
	}

	for round := 0; ; round++ {
		running := 0
		progress := false

		for n, st := range stages {
			if st.Halted() {
				continue
			}
			running++

			ticks := st.Ticks
			for !st.Halted() {
				err = st.Step()
				if err != nil {
					err = &ErrEngine{Index: n, Phase: st.Phase, Err: err}
					return
				}
				if st.State == cpu.STATE_AWAITING_INPUT {
					break
				}
			}

			if st.Ticks != ticks {
				progress = true
			}
			if st.Halted() {
				st.Log.WithField("ticks", st.Ticks).Debug("halted")
				st.halt()
			}
		}

		if running == 0 {
			break
		}

		if !progress {
			err = &ErrDeadlock{Round: round, Waiting: running}
			return
		}
	}

	result_signal, err = result(stages)
	return
}

// MaxSignal tries every ordering of settings as the pipeline phases,
// returning the highest signal and the phases that produced it.
func MaxSignal(ctx context.Context, program cpu.Program, settings []int64, feedback bool) (best int64, phases []int64, err error) {
	found := false
	for order := range internal.Permutations(settings) {
		pl := &Pipeline{
			Program:  program,
			Phases:   order,
			Feedback: feedback,
		}

		var signal int64
		signal, err = pl.Run(ctx, 0)
		if err != nil {
			return
		}

		if !found || signal > best {
			found = true
			best = signal
			phases = slices.Clone(order)
		}
	}

	return
}
