// Package dijkstra implements single-source shortest paths on weighted
// directed graphs with non-negative edge weights, plus reconstruction of the
// concrete path to a destination.
//
// Overview:
//
//   - The caller supplies the graph in memory as Graph[N, W]: a map from node to
//     its outgoing (neighbor, weight) edges. N is any comparable identifier,
//     W any integer or float type.
//   - The engine greedily settles the cheapest frontier node and relaxes its
//     edges, recording a cost table and a predecessor table.
//   - ExtractPath walks the predecessor table backward from a destination.
//
// Operations:
//
//	ShortestPaths(g, s)                 → *Result (Costs, Prev, Stats)
//	SingleSourceShortestPaths(g, s)     → predecessor table, never fails on reachability
//	SingleSourceShortestPathsTo(g, s, d)→ predecessor table, NoPathError if d unreachable
//	ExtractPath(prev, s, d)             → [s … d]
//	FindPath(g, s, d)                   → [s … d], NoPathError if d unreachable
//	FindPathCost(g, s, d)               → [s … d] and its cost
//	PathCost(g, path)                   → sum of edge weights along path
//
// Relaxation rule:
//
//	For each edge u→v of weight w popped at cost c(u), v is updated when it was
//	never discovered or when c(u)+w < c(v). The comparison is strict, so among
//	equal-cost routes the first discovered predecessor is kept. Self-loops and
//	zero-weight cycles are therefore never taken.
//
// Frontier strategies (WithQueue):
//
//   - QueueLazy (default): an improved node is pushed again and the older heap
//     entry stays behind. When that leftover is popped its cost entry is
//     already gone; the engine skips it without relaxing anything.
//   - QueueIndexed: one heap slot per node, updated in place (decrease-key).
//     No leftovers, smaller heap, same costs.
//
// Complexity:
//
//   - Time:  O((V + E) log E) lazy, O((V + E) log V) indexed.
//   - Space: O(V + E) lazy (duplicates), O(V) indexed, plus the cost and
//     predecessor tables.
//
// Errors:
//
//   - NoPathError / ErrNoPathFound: the destination was never discovered. A node
//     absent from the graph and a disconnected one look the same.
//   - ErrNegativeWeight: only with WithNegativeWeightCheck(). Without it negative
//     weights are not validated and results are undefined.
//
// Concurrency:
//
//	Each call owns its cost table, predecessor table and queue. The graph is
//	only read, so any number of goroutines may query the same graph as long as
//	nobody mutates it meanwhile.
package dijkstra
