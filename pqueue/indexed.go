package pqueue

import (
	"cmp"

	"github.com/katalvlaran/sssp/minheap"
)

// Indexed is a priority queue holding at most one heap entry per identifier.
// It keeps an identifier → slot map so Push can change a queued cost in place.
type Indexed[V comparable, C Cost] struct {
	heap       *minheap.Heap[V]
	priorities map[V]C
	slots      map[V]int
}

// NewIndexed returns an empty decrease-key queue.
func NewIndexed[V comparable, C Cost]() *Indexed[V, C] {
	q := &Indexed[V, C]{
		priorities: make(map[V]C),
		slots:      make(map[V]int),
	}
	q.heap = minheap.NewIndexed[V](q.compare, q.track)

	return q
}

func (q *Indexed[V, C]) compare(a, b V) int {
	return cmp.Compare(q.priorities[a], q.priorities[b])
}

func (q *Indexed[V, C]) track(v V, slot int) {
	if slot < 0 {
		delete(q.slots, v)
		return
	}
	q.slots[v] = slot
}

// Push queues v at cost c. If v is already queued its cost is replaced and
// its slot repaired; no duplicate is created.
func (q *Indexed[V, C]) Push(v V, c C) {
	q.priorities[v] = c
	if slot, ok := q.slots[v]; ok {
		q.heap.Fix(slot)
		return
	}
	q.heap.Insert(v)
}

// Pop removes the identifier with the lowest cost. Known is always true.
func (q *Indexed[V, C]) Pop() (Entry[V, C], error) {
	v, err := q.heap.Pop()
	if err != nil {
		return Entry[V, C]{}, popErr(err)
	}
	c := q.priorities[v]
	delete(q.priorities, v)

	return Entry[V, C]{Value: v, Cost: c, Known: true}, nil
}

// Contains reports whether v is currently queued.
func (q *Indexed[V, C]) Contains(v V) bool {
	_, ok := q.slots[v]
	return ok
}

// Empty reports whether nothing is queued.
func (q *Indexed[V, C]) Empty() bool { return q.heap.Empty() }

// Len returns the number of queued identifiers.
func (q *Indexed[V, C]) Len() int { return q.heap.Len() }
