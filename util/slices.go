package util

// CloneSliceFunc copies slice element by element through copy. A nil slice stays nil.
func CloneSliceFunc[S ~[]T, T any](slice S, copy func(T) T) S {
	if slice == nil {
		return nil
	}

	out := make(S, len(slice))
	for i, item := range slice {
		out[i] = copy(item)
	}
	return out
}
