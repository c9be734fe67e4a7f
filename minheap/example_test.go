package minheap_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/sssp/minheap"
)

// ExampleHeap shows the heap ordering plain integers with cmp.Compare.
func ExampleHeap() {
	h := minheap.New(cmp.Compare[int])
	for _, v := range []int{5, 2, 8, 1} {
		h.Insert(v)
	}
	for !h.Empty() {
		v, _ := h.Pop()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 2 5 8
}

// ExampleNew_externalPriorities orders identifiers by a table kept outside the heap.
func ExampleNew_externalPriorities() {
	eta := map[string]int{"ferry": 40, "bus": 15, "train": 25}
	h := minheap.New(func(a, b string) int { return eta[a] - eta[b] })
	h.Insert("ferry")
	h.Insert("bus")
	h.Insert("train")

	first, _ := h.Pop()
	fmt.Println(first)
	// Output: bus
}
