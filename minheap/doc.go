// Package minheap provides an array-backed binary min-heap over arbitrary
// elements, ordered by a caller-supplied comparator.
//
// What
//
//   - Heap[E] stores elements in a zero-indexed slice laid out as a complete
//     binary tree: the children of slot i live at 2i+1 and 2i+2, its parent
//     at (i-1)/2.
//   - Every parent compares strictly before both of its children, so the root
//     is always the next element to pop.
//   - The heap never looks at priorities itself. It only asks the comparator,
//     which lets a caller order opaque identifiers by a table that lives
//     outside the heap (see package pqueue).
//
// Operations
//
//   - Insert: append, then sift up.            O(log n)
//   - Pop:    take the root, move the last element to the root, sift down.
//     Returns ErrEmpty on an empty heap.       O(log n)
//   - Peek:   read the root without removing.  O(1)
//   - Fix:    restore order after the element at slot i changed.  O(log n)
//   - Empty / Len.                             O(1)
//
// Slot tracking
//
//	NewIndexed accepts an onMove callback that fires every time an element
//	lands in a new slot, and with slot -1 when it leaves the heap. Queues that
//	need true decrease-key keep an identifier → slot map with it and call Fix.
//
// Thread safety
//
//	A Heap is not safe for concurrent use. Each goroutine needs its own heap.
package minheap
