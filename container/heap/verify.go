package heap

import "github.com/pkg/errors"

var ErrInvariantViolated = errors.New("heap invariant violated")

func (me *Heap[T]) IsValid() bool {
	return me.Verify() == nil
}

// Verify checks every parent/child pair and reports the first child found to outrank
// its parent. It is O(n) and intended for tests and debugging; the result is only
// meaningful if the comparator is a consistent total order.
func (me *Heap[T]) Verify() error {
	n := len(me.items)
	for i := 0; i < n/2; i++ {
		for _, child := range [2]int{left(i), right(i)} {
			if child < n && me.outranks(child, i) {
				return errors.Wrapf(ErrInvariantViolated,
					"child %v at index %d outranks parent %v at index %d",
					me.items[child], child, me.items[i], i,
				)
			}
		}
	}
	return nil
}
