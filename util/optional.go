package util

// Optional is an argument that may be left unset. The zero value is unset.
type Optional[T any] struct {
	item   T
	exists bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{item: v, exists: true}
}

// Or returns the value if set, otherwise defaultValue.
func (me *Optional[T]) Or(defaultValue T) T {
	if !me.exists {
		return defaultValue
	}
	return me.item
}
