package heap

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// outranks reports whether the element at i has strictly higher priority than the
// element at j. It is the only place the comparator's sign is interpreted.
func (me *Heap[T]) outranks(i, j int) bool {
	return me.comparator(me.items[i], me.items[j]) > 0
}

func (me *Heap[T]) swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

// up moves the element at i toward the root while its parent does not outrank it.
func (me *Heap[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if me.outranks(p, i) {
			return
		}
		me.swap(p, i)
		i = p
	}
}

// down moves the element at i toward the leaves while a child outranks it. The left
// child is considered first, so the right child only wins by strictly outranking it.
func (me *Heap[T]) down(i int) {
	n := len(me.items)
	for {
		best := i
		if l := left(i); l < n && me.outranks(l, best) {
			best = l
		}
		if r := right(i); r < n && me.outranks(r, best) {
			best = r
		}
		if best == i {
			return
		}
		me.swap(i, best)
		i = best
	}
}
