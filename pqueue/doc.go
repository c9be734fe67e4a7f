// Package pqueue provides cost-ordered priority queues of identifiers on top
// of package minheap.
//
// The heap stores only identifiers. Their costs live in a priorities table
// owned by the queue, and the heap comparator reads that table on every
// comparison, so the heap itself stays cost-agnostic.
//
// Two strategies are offered behind the Queue interface:
//
//   - Lazy: Push always inserts, even when the identifier is already queued,
//     and overwrites its cost. Older duplicates stay in the heap as garbage.
//     When one of them is popped after the identifier's cost entry was already
//     consumed, Pop returns an Entry with Known == false and the caller is
//     expected to skip it. Because the comparator reads costs that change
//     while entries sit in the heap, a lowered duplicate can surface later
//     than its cost alone would suggest; callers that re-push on every strict
//     improvement (as Dijkstra relaxation does) still converge.
//   - Indexed: one heap slot per identifier, tracked through
//     minheap.NewIndexed. Push on a queued identifier updates its cost in
//     place (decrease-key or increase-key) and repairs the heap with Fix. Pop
//     never yields stale entries.
//
// Complexity
//
//   - Lazy:    Push O(log n), Pop O(log n) where n counts duplicates.
//   - Indexed: Push O(log n), Pop O(log n) where n ≤ distinct identifiers.
package pqueue
