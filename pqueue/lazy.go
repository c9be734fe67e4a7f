package pqueue

import (
	"cmp"

	"github.com/katalvlaran/sssp/minheap"
)

// Lazy is a priority queue with lazy deletion. The heap may carry several
// entries for the same identifier; only the latest cost is kept in
// priorities, and the comparator always reads that live value.
type Lazy[V comparable, C Cost] struct {
	heap       *minheap.Heap[V]
	priorities map[V]C
}

// NewLazy returns an empty lazy-deletion queue.
func NewLazy[V comparable, C Cost]() *Lazy[V, C] {
	q := &Lazy[V, C]{priorities: make(map[V]C)}
	q.heap = minheap.New[V](q.compare)

	return q
}

// compare orders identifiers by their current cost. An identifier without a
// cost is a consumed duplicate and sorts ahead of everything.
func (q *Lazy[V, C]) compare(a, b V) int {
	ca, okA := q.priorities[a]
	cb, okB := q.priorities[b]
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}

	return cmp.Compare(ca, cb)
}

// Push records c as the cost of v and inserts v into the heap, even if v is
// already queued.
func (q *Lazy[V, C]) Push(v V, c C) {
	q.priorities[v] = c
	q.heap.Insert(v)
}

// Pop removes the minimum identifier and consumes its cost entry.
// A stale duplicate comes back with Known == false.
func (q *Lazy[V, C]) Pop() (Entry[V, C], error) {
	v, err := q.heap.Pop()
	if err != nil {
		return Entry[V, C]{}, popErr(err)
	}
	c, ok := q.priorities[v]
	delete(q.priorities, v)

	return Entry[V, C]{Value: v, Cost: c, Known: ok}, nil
}

// Empty reports whether the heap holds no entries, stale or live.
func (q *Lazy[V, C]) Empty() bool { return q.heap.Empty() }

// Len returns the number of heap entries, stale duplicates included.
func (q *Lazy[V, C]) Len() int { return q.heap.Len() }
