// Package priorityqueue names the operations of a heap.Heap by priority: the front is
// the element with the highest priority and the back the one with the lowest.
//
// Priority is whatever the comparator says it is; see heap.Comparator for the sign
// convention. A PriorityQueue built with heap.MinFirst serves the smallest element
// first, one built with heap.MaxFirst the largest.
package priorityqueue

import (
	"fmt"
	"iter"

	"github.com/matthewoestreich/dsa-go/container/heap"
	"github.com/matthewoestreich/dsa-go/util"
)

type NewArgs[T any] struct {
	Comparator heap.Comparator[T]
	// Initial contents, in any order. The slice is copied.
	Items []T
	// Capacity preallocates storage. It does not bound the queue.
	Capacity util.Optional[int]
}

type PriorityQueue[T any] struct {
	heap heap.Heap[T]
}

func New[T any](args NewArgs[T]) PriorityQueue[T] {
	out := PriorityQueue[T]{
		heap: heap.NewHeap(args.Comparator, args.Items...),
	}
	out.heap.Grow(args.Capacity.Or(0) - len(args.Items))
	return out
}

// Front returns the element with the highest priority.
func (me *PriorityQueue[T]) Front() (out T, exists bool) {
	return me.heap.Peek()
}

// Back returns the element with the lowest priority. This is a linear scan over the
// heap's leaves, not a constant-time lookup.
func (me *PriorityQueue[T]) Back() (out T, exists bool) {
	return me.heap.Leaf()
}

func (me *PriorityQueue[T]) Enqueue(value T) {
	me.heap.Push(value)
}

// Push is an alias for Enqueue.
func (me *PriorityQueue[T]) Push(value T) {
	me.Enqueue(value)
}

// Dequeue removes and returns the element with the highest priority.
func (me *PriorityQueue[T]) Dequeue() (out T, exists bool) {
	return me.heap.Pop()
}

// Pop is an alias for Dequeue.
func (me *PriorityQueue[T]) Pop() (out T, exists bool) {
	return me.Dequeue()
}

func (me *PriorityQueue[T]) Size() int {
	return me.heap.Size()
}

func (me *PriorityQueue[T]) IsEmpty() bool {
	return me.heap.IsEmpty()
}

// ToSortedSlice returns every element from highest to lowest priority without
// modifying the queue.
func (me *PriorityQueue[T]) ToSortedSlice() []T {
	return me.heap.ToSortedSlice()
}

// All iterates in storage order, which is not priority order.
func (me *PriorityQueue[T]) All() iter.Seq[T] {
	return me.heap.All()
}

// Any reports whether predicate holds for at least one element.
func (me *PriorityQueue[T]) Any(predicate func(T) bool) bool {
	for item := range me.heap.All() {
		if predicate(item) {
			return true
		}
	}
	return false
}

// DrainFilter keeps the elements for which keep returns true and returns the rest.
// The order of the returned elements is unspecified.
func (me *PriorityQueue[T]) DrainFilter(keep func(T) bool) (removed []T) {
	var retained []T
	for item := range me.heap.Drain() {
		if keep(item) {
			retained = append(retained, item)
		} else {
			removed = append(removed, item)
		}
	}

	for _, item := range retained {
		me.heap.Push(item)
	}
	return removed
}

func (me PriorityQueue[T]) String() string {
	return fmt.Sprintf("PriorityQueue{%s}", me.heap)
}
