// Package heap implements a binary heap ordered by a caller-supplied Comparator.
//
// Elements are stored as a complete binary tree in a flat slice: index 0 is the root
// (the front, highest priority) and the children of index i are 2i+1 and 2i+2. No child
// ever has strictly higher priority than its parent.
//
// Heap is not safe for concurrent use.
package heap

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/matthewoestreich/dsa-go/util"
)

// Heap must be created with NewHeap or NewHeapFromSeq; the zero value has no comparator.
type Heap[T any] struct {
	comparator Comparator[T]
	items      []T
}

// NewHeap copies items into a new heap and heapifies them bottom-up.
func NewHeap[T any](comparator Comparator[T], items ...T) Heap[T] {
	out := Heap[T]{
		comparator: comparator,
		items:      append([]T(nil), items...),
	}
	out.Init()
	return out
}

func NewHeapFromSeq[T any](comparator Comparator[T], seq iter.Seq[T]) Heap[T] {
	out := Heap[T]{
		comparator: comparator,
	}
	for item := range seq {
		out.items = append(out.items, item)
	}
	out.Init()
	return out
}

// Init re-establishes the heap invariant over the whole backing slice in O(n).
func (me *Heap[T]) Init() {
	for i := len(me.items)/2 - 1; i >= 0; i-- {
		me.down(i)
	}
}

// Grow preallocates room for at least n more elements.
func (me *Heap[T]) Grow(n int) {
	if n > 0 {
		me.items = slices.Grow(me.items, n)
	}
}

func (me *Heap[T]) Size() int {
	return len(me.items)
}

func (me *Heap[T]) IsEmpty() bool {
	return len(me.items) == 0
}

// Peek returns the element with the highest priority.
func (me *Heap[T]) Peek() (out T, exists bool) {
	if len(me.items) == 0 {
		return out, false
	}
	return me.items[0], true
}

// Leaf returns the element with the lowest priority.
//
// A heap only orders root-to-leaf paths, so the lowest priority element can sit at any
// position without children. Leaf scans all of them, which is O(n). Among equally low
// elements the one stored first wins.
func (me *Heap[T]) Leaf() (out T, exists bool) {
	n := len(me.items)
	if n == 0 {
		return out, false
	}

	worst := n / 2
	for i := worst + 1; i < n; i++ {
		if me.outranks(worst, i) {
			worst = i
		}
	}
	return me.items[worst], true
}

func (me *Heap[T]) Push(value T) {
	me.items = append(me.items, value)
	me.up(len(me.items) - 1)
}

// Pop removes and returns the element with the highest priority.
func (me *Heap[T]) Pop() (out T, exists bool) {
	n := len(me.items)
	if n == 0 {
		return out, false
	}

	last := n - 1
	me.swap(0, last)
	out = me.items[last]

	var zero T
	me.items[last] = zero // don't keep the popped value reachable
	me.items = me.items[:last]

	me.down(0)
	return out, true
}

// ToSortedSlice returns every element from highest to lowest priority without
// modifying the heap.
func (me *Heap[T]) ToSortedSlice() []T {
	clone := me.Clone()
	out := make([]T, 0, len(clone.items))
	for item := range clone.Drain() {
		out = append(out, item)
	}
	return out
}

// Drain pops elements in priority order as they are consumed. Stopping early leaves the
// remaining elements in the heap.
func (me *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, exists := me.Pop()
			if !exists || !yield(item) {
				return
			}
		}
	}
}

// All iterates the backing slice in storage order, which is not priority order.
func (me *Heap[T]) All() iter.Seq[T] {
	return util.SeqOf(me.items...)
}

// Clone returns a shallow copy that shares the comparator.
func (me *Heap[T]) Clone() Heap[T] {
	return me.CloneFunc(func(item T) T { return item })
}

// CloneFunc returns a copy whose elements are produced by copy, for element types that
// hold references.
func (me *Heap[T]) CloneFunc(copy func(T) T) Heap[T] {
	return Heap[T]{
		comparator: me.comparator,
		items:      util.CloneSliceFunc(me.items, copy),
	}
}

func (me Heap[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Heap[")
	for i, item := range me.items {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprint(&sb, item)
	}
	sb.WriteString("]")
	return sb.String()
}
