package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/dijkstra"
)

// randomGraph builds a directed graph on n nodes with about m edges and
// weights in [0, maxW]. Parallel edges and self-loops are allowed.
func randomGraph(r *rand.Rand, n, m, maxW int) dijkstra.Graph[int, int] {
	g := make(dijkstra.Graph[int, int], n)
	for i := 0; i < m; i++ {
		g.AddEdge(r.Intn(n), r.Intn(n), r.Intn(maxW+1))
	}

	return g
}

// bellmanFord is the reference: plain repeated relaxation over every edge.
func bellmanFord(g dijkstra.Graph[int, int], n, source int) map[int]int {
	dist := map[int]int{source: 0}
	for round := 0; round < n; round++ {
		changed := false
		for u, edges := range g {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for _, edge := range edges {
				if dv, seen := dist[edge.To]; !seen || du+edge.Weight < dv {
					dist[edge.To] = du + edge.Weight
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// reachable lists every node reachable from source by following edges.
func reachable(g dijkstra.Graph[int, int], source int) map[int]bool {
	seen := map[int]bool{source: true}
	stack := []int{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, edge := range g[u] {
			if !seen[edge.To] {
				seen[edge.To] = true
				stack = append(stack, edge.To)
			}
		}
	}

	return seen
}

func TestProperties_RandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(40)
		g := randomGraph(r, n, r.Intn(4*n+1), 20)
		source := r.Intn(n)

		want := bellmanFord(g, n, source)

		lazy, err := dijkstra.ShortestPaths(g, source, dijkstra.WithQueue(dijkstra.QueueLazy))
		require.NoError(t, err)
		indexed, err := dijkstra.ShortestPaths(g, source, dijkstra.WithQueue(dijkstra.QueueIndexed))
		require.NoError(t, err)

		// Costs are minimal and agree with a true decrease-key run.
		if diff := cmp.Diff(want, lazy.Costs); diff != "" {
			t.Fatalf("round %d: lazy costs (-want +got):\n%s", round, diff)
		}
		if diff := cmp.Diff(want, indexed.Costs); diff != "" {
			t.Fatalf("round %d: indexed costs (-want +got):\n%s", round, diff)
		}

		// Predecessor keys are exactly the reachable nodes minus the source.
		reach := reachable(g, source)
		require.Len(t, lazy.Prev, len(reach)-1, "round %d", round)
		for v := range lazy.Prev {
			require.True(t, reach[v], "round %d: %d not reachable", round, v)
			require.NotEqual(t, source, v)
		}

		// Every extracted path starts at source, ends at dest, follows
		// real edges and costs exactly Costs[dest].
		for dest := 0; dest < n; dest++ {
			path, cost, err := dijkstra.FindPathCost(g, source, dest)
			if !reach[dest] {
				require.ErrorIs(t, err, dijkstra.ErrNoPathFound, "round %d dest %d", round, dest)
				continue
			}
			require.NoError(t, err, "round %d dest %d", round, dest)
			require.Equal(t, source, path[0])
			require.Equal(t, dest, path[len(path)-1])

			sum, err := dijkstra.PathCost(g, path)
			require.NoError(t, err)
			require.Equal(t, want[dest], sum, "round %d dest %d", round, dest)
			require.Equal(t, want[dest], cost)
		}
	}
}

// TestProperties_DecreasingPushes builds graphs where the first route found to
// each node is the most expensive, forcing many duplicate pushes.
func TestProperties_DecreasingPushes(t *testing.T) {
	const n = 30
	g := dijkstra.Graph[int, int]{}
	for v := 1; v < n; v++ {
		g.AddEdge(0, v, 1000-v) // expensive direct hop, found first
	}
	for v := 1; v+1 < n; v++ {
		g.AddEdge(v, v+1, 1) // cheap chain
	}
	g.AddEdge(0, 1, 1)

	lazy, err := dijkstra.ShortestPaths(g, 0)
	require.NoError(t, err)
	indexed, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithQueue(dijkstra.QueueIndexed))
	require.NoError(t, err)

	require.Equal(t, indexed.Costs, lazy.Costs)
	require.Equal(t, bellmanFord(g, n, 0), lazy.Costs)
	require.Positive(t, lazy.Stats.StalePops)
	require.Zero(t, indexed.Stats.StalePops)
	for v := 1; v < n; v++ {
		require.Equal(t, v, lazy.Costs[v])
	}
}
