package heap_test

import (
	"cmp"
	"fmt"

	"github.com/matthewoestreich/dsa-go/container/heap"
)

// ExampleHeap_minHeap builds a min-heap by comparing in reverse natural order.
func ExampleHeap_minHeap() {
	h := heap.NewHeap(heap.MinFirst[int](), 30, 20, 90, 50, 60, 10)

	front, _ := h.Peek()
	leaf, _ := h.Leaf()
	fmt.Println("front:", front, "leaf:", leaf)
	fmt.Println(h.ToSortedSlice())

	// Output:
	// front: 10 leaf: 90
	// [10 20 30 50 60 90]
}

// ExampleHeap_maxHeap builds a max-heap by comparing in natural order.
func ExampleHeap_maxHeap() {
	h := heap.NewHeap(func(a, b int) int { return cmp.Compare(a, b) })
	for _, v := range []int{30, 20, 90, 50, 60, 10} {
		h.Push(v)
	}

	var drained []int
	for v := range h.Drain() {
		drained = append(drained, v)
	}
	fmt.Println(drained)
	fmt.Println("empty:", h.IsEmpty())

	// Output:
	// [90 60 50 30 20 10]
	// empty: true
}
