// Package sssp is an in-memory toolkit for single-source shortest paths on
// weighted directed graphs.
//
// What is inside?
//
//	minheap/  — array-backed binary min-heap ordered by a caller comparator
//	pqueue/   — cost-ordered queues of identifiers: lazy deletion or decrease-key
//	dijkstra/ — Dijkstra's algorithm, predecessor tables, path extraction
//	examples/ — runnable walkthroughs (city route, terrain navigation)
//
// Dependencies flow one way: dijkstra → pqueue → minheap. The heap knows
// nothing about costs, the queues know nothing about edges, and the engine
// knows nothing about heap slots.
//
// Quick start:
//
//	g := dijkstra.Graph[string, int]{}
//	g.AddEdge("a", "b", 10)
//	g.AddEdge("a", "d", 1)
//	g.AddEdge("d", "b", 1)
//	path, err := dijkstra.FindPath(g, "a", "b") // [a d b]
//
//	go get github.com/katalvlaran/sssp
package sssp
