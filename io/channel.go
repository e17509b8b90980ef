// Package io provides the input sources and output sinks that connect an
// intcode engine to its surroundings.
//
// A Source produces input values on demand and may block until a producer
// delivers one. A Sink observes every output value at the moment it is
// produced. Queue joins the two and is the edge type used to chain engines
// into pipelines and feedback rings.
package io

import (
	"context"
)

// Source supplies input values to an engine.
type Source interface {
	// Receive returns the next input value, blocking until one is ready.
	// It returns ErrExhausted only when no further input will ever arrive,
	// and ctx.Err() if the context ends first.
	Receive(ctx context.Context) (value int64, err error)
}

// Poller is implemented by sources that can report a pending value without
// blocking.
type Poller interface {
	// Poll returns the next value if one is ready. ok is false when no
	// value is available yet. err is ErrExhausted when none ever will be.
	Poll() (value int64, ok bool, err error)
}

// Sink observes output values.
type Sink interface {
	// Send delivers a single output value.
	Send(ctx context.Context, value int64) error
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (int64, error)

var _ Source = SourceFunc(nil)

// Receive calls fn(ctx).
func (fn SourceFunc) Receive(ctx context.Context) (int64, error) {
	return fn(ctx)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, value int64) error

var _ Sink = SinkFunc(nil)

// Send calls fn(ctx, value).
func (fn SinkFunc) Send(ctx context.Context, value int64) error {
	return fn(ctx, value)
}

// Discard is a Sink that drops every value.
var Discard Sink = SinkFunc(func(context.Context, int64) error { return nil })

// Tee returns a Sink that delivers each value to every sink in order,
// stopping at the first error.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(ctx context.Context, value int64) (err error) {
		for _, sink := range sinks {
			err = sink.Send(ctx, value)
			if err != nil {
				return
			}
		}
		return
	})
}
