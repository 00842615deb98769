// Package queue implements a FIFO queue built from two stacks.
//
// Enqueued values land on an inbound stack. Dequeue pops from an outbound stack and,
// only when that stack is empty, first moves every inbound value onto it, which
// reverses them back into arrival order. Each value is moved at most once, so both
// operations are amortized O(1); a single Dequeue that triggers the move is O(n).
//
// At any point between calls the logical queue, front to back, is the outbound stack
// from top to bottom followed by the inbound stack from bottom to top.
package queue

import (
	"iter"

	"github.com/matthewoestreich/dsa-go/container/stack"
	"github.com/matthewoestreich/dsa-go/util"
)

type Queue[T any] struct {
	inbound  stack.Stack[T]
	outbound stack.Stack[T]
}

func NewQueue[T any]() Queue[T] {
	return Queue[T]{
		inbound:  stack.NewStack[T](),
		outbound: stack.NewStack[T](),
	}
}

// NewQueueOf returns a queue holding values, with values[0] at the front.
func NewQueueOf[T any](values ...T) Queue[T] {
	out := NewQueue[T]()
	for _, value := range values {
		out.Enqueue(value)
	}
	return out
}

func (me *Queue[T]) Enqueue(value T) {
	me.inbound.Push(value)
}

// Dequeue removes and returns the value at the front of the queue.
func (me *Queue[T]) Dequeue() (out T, exists bool) {
	if me.outbound.IsEmpty() {
		me.refill()
	}
	return me.outbound.Pop()
}

// Peek returns the value at the front of the queue without removing it.
func (me *Queue[T]) Peek() (out T, exists bool) {
	if !me.outbound.IsEmpty() {
		return me.outbound.Peek()
	}
	return me.inbound.Bottom()
}

func (me *Queue[T]) Size() int {
	return me.inbound.Size() + me.outbound.Size()
}

func (me *Queue[T]) IsEmpty() bool {
	return me.inbound.IsEmpty() && me.outbound.IsEmpty()
}

// All iterates from front to back without modifying the queue.
func (me *Queue[T]) All() iter.Seq[T] {
	return util.Concat(me.outbound.All(), me.inbound.Backward())
}

func (me *Queue[T]) refill() {
	for {
		value, exists := me.inbound.Pop()
		if !exists {
			return
		}
		me.outbound.Push(value)
	}
}
