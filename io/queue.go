package io

import (
	"context"
	"sync"
)

const (
	// QUEUE_DEFAULT_CAPACITY is the initial capacity in values of a new queue.
	QUEUE_DEFAULT_CAPACITY = 16
)

// Queue is an unbounded FIFO of values, safe for concurrent use.
// Values are never dropped: a Send with no waiting receiver is buffered and
// delivered on the next Receive or Poll, in order.
type Queue struct {
	mutex sync.Mutex

	readIndex  int
	writeIndex int
	size       int
	data       []int64

	closed bool
	notify chan struct{} // Closed and replaced whenever the queue changes.
}

var _ Source = (*Queue)(nil)
var _ Poller = (*Queue)(nil)
var _ Sink = (*Queue)(nil)

// NewQueue returns a queue pre-loaded with values.
func NewQueue(values ...int64) (queue *Queue) {
	queue = &Queue{}
	for _, value := range values {
		queue.push(value)
	}
	return
}

// grow doubles the circular buffer, unwrapping it in the process.
func (queue *Queue) grow() {
	capacity := len(queue.data) * 2
	if capacity == 0 {
		capacity = QUEUE_DEFAULT_CAPACITY
	}

	data := make([]int64, capacity)
	for n := range queue.size {
		data[n] = queue.data[(queue.readIndex+n)%len(queue.data)]
	}

	queue.data = data
	queue.readIndex = 0
	queue.writeIndex = queue.size
}

func (queue *Queue) push(value int64) {
	if queue.size == len(queue.data) {
		queue.grow()
	}

	queue.data[queue.writeIndex] = value
	queue.writeIndex++
	if queue.writeIndex == len(queue.data) {
		queue.writeIndex = 0
	}
	queue.size++
}

func (queue *Queue) pop() (value int64) {
	value = queue.data[queue.readIndex]
	queue.readIndex++
	if queue.readIndex == len(queue.data) {
		queue.readIndex = 0
	}
	queue.size--
	return
}

// wake releases every receiver blocked on the current notify channel.
// Must be called with the mutex held.
func (queue *Queue) wake() {
	if queue.notify != nil {
		close(queue.notify)
		queue.notify = nil
	}
}

// Len returns the number of buffered values.
func (queue *Queue) Len() int {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	return queue.size
}

// Send appends a value to the queue.
// Returns ErrClosed if the queue has been closed.
func (queue *Queue) Send(ctx context.Context, value int64) (err error) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if queue.closed {
		err = ErrClosed
		return
	}

	queue.push(value)
	queue.wake()

	return
}

// Poll removes and returns the oldest value, if any.
// Returns ErrExhausted once the queue is closed and drained.
func (queue *Queue) Poll() (value int64, ok bool, err error) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	switch {
	case queue.size > 0:
		value = queue.pop()
		ok = true
	case queue.closed:
		err = ErrExhausted
	}

	return
}

// Receive removes and returns the oldest value, waiting for one to be sent
// if the queue is empty.
func (queue *Queue) Receive(ctx context.Context) (value int64, err error) {
	for {
		queue.mutex.Lock()
		if queue.size > 0 {
			value = queue.pop()
			queue.mutex.Unlock()
			return
		}
		if queue.closed {
			queue.mutex.Unlock()
			err = ErrExhausted
			return
		}
		if queue.notify == nil {
			queue.notify = make(chan struct{})
		}
		notify := queue.notify
		queue.mutex.Unlock()

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case <-notify:
		}
	}
}

// Close marks the queue as having no further producers. Buffered values
// remain receivable; after that, receivers get ErrExhausted.
func (queue *Queue) Close() (err error) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	queue.closed = true
	queue.wake()

	return
}

// Values returns a copy of the buffered values, oldest first.
func (queue *Queue) Values() (values []int64) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	values = make([]int64, 0, queue.size)
	for n := range queue.size {
		values = append(values, queue.data[(queue.readIndex+n)%len(queue.data)])
	}
	return
}
