package io

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	SCRIPT_INPUT  = "input"  // Name of the script's input function.
	SCRIPT_OUTPUT = "output" // Name of the script's output function.
	SCRIPT_STATE  = "state"  // Name of the predeclared mutable dict.
)

// Script is a Starlark program acting as an engine's collaborator.
//
// The script may define input(), returning the next value or None when no
// more input exists, and output(value), called for each produced value.
// Module globals are frozen once the script is loaded, so persistent
// state belongs in the predeclared 'state' dict.
type Script struct {
	Thread *starlark.Thread
	State  *starlark.Dict

	input  starlark.Callable
	output starlark.Callable
}

var _ Source = (*Script)(nil)
var _ Sink = (*Script)(nil)

// NewScript loads a script from src (a string, []byte or io.Reader; nil
// reads filename). Each define is visible to the script as an integer.
func NewScript(filename string, src any, defines map[string]int64) (script *Script, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			logrus.WithField("script", filename).Info(msg)
		},
	}

	state := starlark.NewDict(0)
	pred := starlark.StringDict{
		SCRIPT_STATE: state,
	}
	for key, value := range defines {
		pred[key] = starlark.MakeInt64(value)
	}

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, pred)
	if err != nil {
		err = errors.Join(ErrScript, err)
		return
	}

	script = &Script{
		Thread: thread,
		State:  state,
	}

	script.input, _ = globals[SCRIPT_INPUT].(starlark.Callable)
	script.output, _ = globals[SCRIPT_OUTPUT].(starlark.Callable)

	if script.input == nil && script.output == nil {
		script = nil
		err = errors.Join(ErrScript, errors.New(f("%v defines neither %v() nor %v()", filename, SCRIPT_INPUT, SCRIPT_OUTPUT)))
	}

	return
}

// call invokes fn, cancelling the Starlark thread if ctx ends first.
func (script *Script) call(ctx context.Context, fn starlark.Callable, args starlark.Tuple) (value starlark.Value, err error) {
	err = ctx.Err()
	if err != nil {
		return
	}

	stop := context.AfterFunc(ctx, func() {
		script.Thread.Cancel(ctx.Err().Error())
	})
	defer stop()

	value, err = starlark.Call(script.Thread, fn, args, nil)
	if err != nil {
		err = errors.Join(ErrScript, err)
	}

	return
}

// HasInput returns true if the script defines input().
func (script *Script) HasInput() bool {
	return script.input != nil
}

// HasOutput returns true if the script defines output(value).
func (script *Script) HasOutput() bool {
	return script.output != nil
}

// Receive calls the script's input() function.
func (script *Script) Receive(ctx context.Context) (value int64, err error) {
	if script.input == nil {
		err = ErrExhausted
		return
	}

	rc, err := script.call(ctx, script.input, nil)
	if err != nil {
		return
	}

	switch rc := rc.(type) {
	case starlark.NoneType:
		err = ErrExhausted
	case starlark.Int:
		var ok bool
		value, ok = rc.Int64()
		if !ok {
			err = errors.Join(ErrScript, errors.New(f("%v() returned %v, out of range", SCRIPT_INPUT, rc)))
		}
	default:
		err = errors.Join(ErrScript, errors.New(f("%v() returned %v, not an int", SCRIPT_INPUT, rc.Type())))
	}

	return
}

// Send calls the script's output(value) function, if defined.
func (script *Script) Send(ctx context.Context, value int64) (err error) {
	if script.output == nil {
		return
	}

	_, err = script.call(ctx, script.output, starlark.Tuple{starlark.MakeInt64(value)})
	return
}
