// Package stack implements a LIFO stack over a growable slice.
package stack

import (
	"iter"

	"github.com/matthewoestreich/dsa-go/util"
)

type Stack[T any] struct {
	items []T
}

func NewStack[T any]() Stack[T] {
	return Stack[T]{}
}

func (me *Stack[T]) Push(value T) {
	me.items = append(me.items, value)
}

// Pop removes and returns the most recently pushed element.
func (me *Stack[T]) Pop() (out T, exists bool) {
	n := len(me.items)
	if n == 0 {
		return out, false
	}

	out = me.items[n-1]
	var zero T
	me.items[n-1] = zero
	me.items = me.items[:n-1]
	return out, true
}

// Peek returns the most recently pushed element.
func (me *Stack[T]) Peek() (out T, exists bool) {
	if len(me.items) == 0 {
		return out, false
	}
	return me.items[len(me.items)-1], true
}

// Bottom returns the least recently pushed element.
func (me *Stack[T]) Bottom() (out T, exists bool) {
	if len(me.items) == 0 {
		return out, false
	}
	return me.items[0], true
}

func (me *Stack[T]) Size() int {
	return len(me.items)
}

func (me *Stack[T]) IsEmpty() bool {
	return len(me.items) == 0
}

// All iterates from top to bottom.
func (me *Stack[T]) All() iter.Seq[T] {
	return util.SeqOfReversed(me.items...)
}

// Backward iterates from bottom to top.
func (me *Stack[T]) Backward() iter.Seq[T] {
	return util.SeqOf(me.items...)
}
