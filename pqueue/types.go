package pqueue

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/sssp/minheap"
)

// ErrEmpty is returned by Pop when the queue holds no entries.
var ErrEmpty = fmt.Errorf("pqueue: %w", minheap.ErrEmpty)

// Cost is the set of numeric types a queue can order by.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Entry is one popped identifier with the cost it was queued at.
// Known is false when the identifier's cost had already been consumed by an
// earlier pop: Cost is then the zero value and must not be used.
type Entry[V comparable, C Cost] struct {
	Value V
	Cost  C
	Known bool
}

// Queue is the cost-oriented interface shared by Lazy and Indexed.
type Queue[V comparable, C Cost] interface {
	// Push queues v at cost c, replacing any cost already recorded for v.
	Push(v V, c C)
	// Pop removes the identifier with the lowest current cost.
	Pop() (Entry[V, C], error)
	// Empty reports whether nothing is left to pop.
	Empty() bool
	// Len returns the number of heap entries, stale duplicates included.
	Len() int
}

var (
	_ Queue[string, int]  = (*Lazy[string, int])(nil)
	_ Queue[int, float64] = (*Indexed[int, float64])(nil)
)

// popErr maps heap emptiness onto the queue's own sentinel.
func popErr(err error) error {
	if errors.Is(err, minheap.ErrEmpty) {
		return ErrEmpty
	}

	return err
}
