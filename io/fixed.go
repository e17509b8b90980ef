package io

import (
	"context"
)

// Fixed is a finite list of input values known in advance.
// Once every value is consumed, the source is exhausted: there is no
// producer that could ever deliver more.
type Fixed struct {
	Data []int64

	ReadIndex int
}

var _ Source = (*Fixed)(nil)
var _ Poller = (*Fixed)(nil)

// NewFixed returns a source yielding values in order.
func NewFixed(values ...int64) *Fixed {
	return &Fixed{Data: values}
}

// Rewind restarts the source from its first value.
func (fc *Fixed) Rewind() {
	fc.ReadIndex = 0
}

// Poll returns the next value, or ErrExhausted.
func (fc *Fixed) Poll() (value int64, ok bool, err error) {
	if fc == nil || fc.ReadIndex >= len(fc.Data) {
		err = ErrExhausted
		return
	}

	value = fc.Data[fc.ReadIndex]
	fc.ReadIndex++
	ok = true
	return
}

// Receive returns the next value, or ErrExhausted. It never blocks.
func (fc *Fixed) Receive(ctx context.Context) (value int64, err error) {
	value, _, err = fc.Poll()
	return
}
