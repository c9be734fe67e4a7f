package minheap

import "errors"

// ErrEmpty is returned by Pop and Peek when the heap holds no elements.
var ErrEmpty = errors.New("minheap: heap is empty")

// Compare orders two elements. It returns a negative number when a must be
// popped before b, and zero or a positive number otherwise.
type Compare[E any] func(a, b E) int

// Heap is an array-backed binary min-heap ordered by a Compare function.
// The zero value is not usable; construct with New or NewIndexed.
type Heap[E any] struct {
	cmp       Compare[E]
	onMove    func(e E, i int) // nil unless built by NewIndexed
	container []E
}

// New returns an empty heap ordered by cmp.
func New[E any](cmp Compare[E]) *Heap[E] {
	return &Heap[E]{cmp: cmp}
}

// NewIndexed returns an empty heap ordered by cmp that reports every slot
// change through onMove. onMove(e, i) is called after e lands in slot i;
// onMove(e, -1) is called when e leaves the heap through Pop.
func NewIndexed[E any](cmp Compare[E], onMove func(e E, i int)) *Heap[E] {
	return &Heap[E]{cmp: cmp, onMove: onMove}
}

// Len returns the number of elements in the heap, duplicates included.
func (h *Heap[E]) Len() int { return len(h.container) }

// Empty reports whether the heap holds no elements.
func (h *Heap[E]) Empty() bool { return len(h.container) == 0 }

// Insert adds e to the heap.
func (h *Heap[E]) Insert(e E) {
	h.container = append(h.container, e)
	last := len(h.container) - 1
	h.moved(last)
	h.siftUp(last)
}

// Peek returns the root without removing it.
func (h *Heap[E]) Peek() (E, error) {
	if len(h.container) == 0 {
		var zero E
		return zero, ErrEmpty
	}

	return h.container[0], nil
}

// Pop removes and returns the element that compares before all others.
// It returns ErrEmpty if the heap holds no elements.
func (h *Heap[E]) Pop() (E, error) {
	var zero E
	n := len(h.container)
	switch n {
	case 0:
		return zero, ErrEmpty
	case 1:
		// A single element needs no reordering.
		head := h.container[0]
		h.container[0] = zero
		h.container = h.container[:0]
		h.removed(head)

		return head, nil
	}

	// 1) Save the root and move the last element into its slot.
	head := h.container[0]
	last := h.container[n-1]
	h.container[n-1] = zero // drop the reference held by the backing array
	h.container = h.container[:n-1]
	h.container[0] = last
	h.removed(head)
	h.moved(0)

	// 2) Push the new root down to where it belongs.
	h.siftDown(0)

	return head, nil
}

// Fix restores heap order after the element at slot i changed its
// position in the ordering. Out-of-range slots are ignored.
func (h *Heap[E]) Fix(i int) {
	if i < 0 || i >= len(h.container) {
		return
	}
	if hasParent(i) && h.inOrder(h.container[i], h.container[parentIndex(i)]) {
		h.siftUp(i)
		return
	}
	h.siftDown(i)
}

// siftUp swaps the element at i with its parent while the pair is not in
// order.
func (h *Heap[E]) siftUp(i int) {
	for hasParent(i) {
		p := parentIndex(i)
		if h.inOrder(h.container[p], h.container[i]) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

// siftDown swaps the element at i with its preferred child until the element
// has no children or already compares before the child.
func (h *Heap[E]) siftDown(i int) {
	n := len(h.container)
	for {
		next := leftChildIndex(i)
		if next >= n {
			return
		}
		// The right child wins only when it strictly precedes the left one.
		if r := rightChildIndex(i); r < n && h.inOrder(h.container[r], h.container[next]) {
			next = r
		}
		if h.inOrder(h.container[i], h.container[next]) {
			return
		}
		h.swap(i, next)
		i = next
	}
}

// inOrder reports whether a strictly precedes b.
func (h *Heap[E]) inOrder(a, b E) bool { return h.cmp(a, b) < 0 }

func (h *Heap[E]) swap(i, j int) {
	h.container[i], h.container[j] = h.container[j], h.container[i]
	h.moved(i)
	h.moved(j)
}

func (h *Heap[E]) moved(i int) {
	if h.onMove != nil {
		h.onMove(h.container[i], i)
	}
}

func (h *Heap[E]) removed(e E) {
	if h.onMove != nil {
		h.onMove(e, -1)
	}
}

func leftChildIndex(parent int) int  { return 2*parent + 1 }
func rightChildIndex(parent int) int { return 2*parent + 2 }
func parentIndex(child int) int      { return (child - 1) / 2 }

// hasParent tests the child index: (0-1)/2 truncates to 0 in Go.
func hasParent(child int) bool { return child > 0 }
