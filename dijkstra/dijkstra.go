package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/sssp/pqueue"
)

// ShortestPaths runs Dijkstra's algorithm from source over g and returns the
// cost and predecessor tables of every node reachable from source.
//
// It never fails on reachability. The only error is ErrNegativeWeight, and
// only when WithNegativeWeightCheck() is passed.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with QueueLazy, O((V + E) log V) with QueueIndexed.
//   - Space: O(V + E) for QueueLazy (duplicates), O(V) for QueueIndexed.
func ShortestPaths[N comparable, W Weight](g Graph[N, W], source N, opts ...Option) (*Result[N, W], error) {
	return run(g, source, nil, opts)
}

// SingleSourceShortestPaths returns the predecessor table of a run from source.
// Its keys are exactly the nodes reachable from source, source excluded.
func SingleSourceShortestPaths[N comparable, W Weight](g Graph[N, W], source N, opts ...Option) (map[N]N, error) {
	res, err := run(g, source, nil, opts)
	if err != nil {
		return nil, err
	}

	return res.Prev, nil
}

// SingleSourceShortestPathsTo is SingleSourceShortestPaths with a destination:
// it fails with a NoPathError when dest is never discovered.
func SingleSourceShortestPathsTo[N comparable, W Weight](g Graph[N, W], source, dest N, opts ...Option) (map[N]N, error) {
	res, err := run(g, source, &dest, opts)
	if err != nil {
		return nil, err
	}

	return res.Prev, nil
}

// FindPath returns the cheapest path from source to dest, both inclusive.
// It fails with a NoPathError when dest is unreachable or not in the graph.
func FindPath[N comparable, W Weight](g Graph[N, W], source, dest N, opts ...Option) ([]N, error) {
	path, _, err := FindPathCost(g, source, dest, opts...)

	return path, err
}

// FindPathCost is FindPath that also returns the total cost of the path.
func FindPathCost[N comparable, W Weight](g Graph[N, W], source, dest N, opts ...Option) ([]N, W, error) {
	res, err := run(g, source, &dest, opts)
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(dest)
	if err != nil {
		return nil, 0, err
	}

	return path, res.Costs[dest], nil
}

// run validates options, executes the search and applies the destination check.
func run[N comparable, W Weight](g Graph[N, W], source N, dest *N, opts []Option) (*Result[N, W], error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Optional fail-fast scan for negative weights.
	if cfg.CheckNegative {
		if err := checkWeights(g); err != nil {
			return nil, err
		}
	}

	// 3) Fresh per-run state.
	r := &runner[N, W]{
		g:      g,
		source: source,
		cost:   map[N]W{source: 0},
		prev:   make(map[N]N),
		queue:  newQueue[N, W](cfg.Queue),
	}

	// 4) Drain the frontier.
	if err := r.process(); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("dijkstra: run complete",
		"source", source,
		"queue", cfg.Queue,
		"reached", len(r.cost),
		"pops", r.stats.Pops,
		"stale_pops", r.stats.StalePops,
		"edge_scans", r.stats.EdgeScans,
		"relaxations", r.stats.Relaxations,
	)

	// 5) Destination check.
	if dest != nil {
		if _, ok := r.cost[*dest]; !ok {
			cfg.Logger.Debug("dijkstra: destination unreachable", "source", source, "destination", *dest)

			return nil, NoPathError[N]{Source: source, Destination: *dest}
		}
	}

	return &Result[N, W]{
		Source: source,
		Costs:  r.cost,
		Prev:   r.prev,
		Stats:  r.stats,
	}, nil
}

// runner holds the mutable state of a single execution.
type runner[N comparable, W Weight] struct {
	g      Graph[N, W]        // read-only input
	source N                  // start node
	cost   map[N]W            // node → best known cost; absent means unreached
	prev   map[N]N            // node → predecessor on the best known path
	queue  pqueue.Queue[N, W] // frontier
	stats  Stats
}

func newQueue[N comparable, W Weight](kind QueueKind) pqueue.Queue[N, W] {
	if kind == QueueIndexed {
		return pqueue.NewIndexed[N, W]()
	}

	return pqueue.NewLazy[N, W]()
}

// process repeatedly settles the cheapest frontier node until none is left.
func (r *runner[N, W]) process() error {
	r.queue.Push(r.source, 0)
	for !r.queue.Empty() {
		// 1) Take the cheapest frontier entry.
		e, err := r.queue.Pop()
		if err != nil {
			return fmt.Errorf("dijkstra: frontier: %w", err)
		}
		r.stats.Pops++

		// 2) A duplicate whose cost was already consumed: its node has been
		//    settled through the cheaper entry, so there is nothing to relax.
		if !e.Known {
			r.stats.StalePops++
			continue
		}

		// 3) Relax outgoing edges using the popped cost.
		r.relax(e.Value, e.Cost)
	}

	return nil
}

// relax tries to improve every neighbor of u through u. Only a strictly
// cheaper candidate replaces a known cost, so among equal-cost routes the
// first one discovered keeps the predecessor slot.
func (r *runner[N, W]) relax(u N, costU W) {
	for _, e := range r.g[u] {
		r.stats.EdgeScans++
		v := e.To
		candidate := costU + e.Weight
		if known, seen := r.cost[v]; seen && !(candidate < known) {
			continue
		}
		r.cost[v] = candidate
		r.prev[v] = u
		r.queue.Push(v, candidate)
		r.stats.Relaxations++
	}
}

// checkWeights scans every edge once and reports the first negative weight.
func checkWeights[N comparable, W Weight](g Graph[N, W]) error {
	for u, edges := range g {
		for _, e := range edges {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	return nil
}
