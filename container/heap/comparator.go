package heap

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Comparator orders two elements by priority. A positive result means a has higher
// priority than b, zero means equal priority and a negative result means a has lower
// priority than b.
//
// The comparator must be a consistent total order over every element ever stored and
// must not have side effects. Heap orientation is entirely a property of the
// comparator: MaxFirst and MinFirst differ only by argument order.
type Comparator[T any] func(a, b T) int

// MaxFirst orders by natural order, so the largest element is at the front.
func MaxFirst[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// MinFirst orders by reverse natural order, so the smallest element is at the front.
func MinFirst[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(b, a)
	}
}

// Reverse flips the orientation of comparator.
func Reverse[T any](comparator Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return comparator(b, a)
	}
}

// Then composes comparators lexicographically: the first comparator that does not
// report a tie decides. Useful for multi-field keys with deterministic tie-breaking.
func Then[T any](first Comparator[T], rest ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if out := first(a, b); out != 0 {
			return out
		}
		for _, comparator := range rest {
			if out := comparator(a, b); out != 0 {
				return out
			}
		}
		return 0
	}
}
