// Package dijkstra defines the graph, result, error and option types used by
// the single-source shortest-path engine.
//
// Graph shape:
//
//	Graph[N, W] is map[N][]Edge[N, W]: node → outgoing (neighbor, weight) arcs.
//	A node without outgoing edges may be missing from the map.
//	A nil Graph is an empty graph. FromMap converts the map-of-maps form.
//
// Errors:
//
//	– ErrNoPathFound    destination never discovered (absent or disconnected).
//	– NoPathError[N]    the same failure carrying Source and Destination;
//	                    errors.Is(err, ErrNoPathFound) holds for it.
//	– ErrNegativeWeight only with WithNegativeWeightCheck().
//	– ErrNotAnEdge      PathCost found two consecutive nodes with no edge.
//	– ErrEmptyPath      PathCost was handed an empty path.
//	– ErrPredecessorCycle ExtractPath looped in a malformed predecessor table.
package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/sssp/pqueue"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNoPathFound indicates that the destination was never reached from the source.
	// A destination missing from the graph and a disconnected one are not told apart.
	ErrNoPathFound = errors.New("dijkstra: no path found")

	// ErrNegativeWeight indicates that the opt-in pre-scan found a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNotAnEdge indicates that two consecutive path nodes are not joined by an edge.
	ErrNotAnEdge = errors.New("dijkstra: no edge between consecutive path nodes")

	// ErrEmptyPath indicates that a path with no nodes was supplied.
	ErrEmptyPath = errors.New("dijkstra: path is empty")

	// ErrPredecessorCycle indicates that walking a predecessor table never reached a root.
	ErrPredecessorCycle = errors.New("dijkstra: predecessor table contains a cycle")
)

// NoPathError reports that Destination is unreachable from Source.
type NoPathError[N comparable] struct {
	Source, Destination N
}

func (e NoPathError[N]) Error() string {
	return fmt.Sprintf("dijkstra: could not find a path from %v to %v", e.Source, e.Destination)
}

// Is lets errors.Is match NoPathError against ErrNoPathFound.
func (e NoPathError[N]) Is(target error) bool { return target == ErrNoPathFound }

// Weight is the set of numeric edge weight types. Weights must be non-negative;
// they are summed with + and compared with <, with no overflow handling.
type Weight interface {
	pqueue.Cost
}

// Edge is one outgoing arc of an adjacency list.
type Edge[N comparable, W Weight] struct {
	To     N
	Weight W
}

// Graph is a directed weighted graph: node → outgoing edges. Edges are relaxed
// in slice order, which makes tie-breaking between equal-cost routes
// reproducible.
type Graph[N comparable, W Weight] map[N][]Edge[N, W]

// FromMap builds a Graph from the map-of-maps form node → (neighbor → weight).
// Go map order is random, so when several shortest paths tie the one chosen
// may differ between builds; costs never do.
func FromMap[N comparable, W Weight](m map[N]map[N]W) Graph[N, W] {
	g := make(Graph[N, W], len(m))
	for u, adj := range m {
		edges := make([]Edge[N, W], 0, len(adj))
		for v, w := range adj {
			edges = append(edges, Edge[N, W]{To: v, Weight: w})
		}
		g[u] = edges
	}

	return g
}

// AddEdge appends u→v with weight w. g must be non-nil.
func (g Graph[N, W]) AddEdge(u, v N, w W) {
	g[u] = append(g[u], Edge[N, W]{To: v, Weight: w})
}

// Neighbors returns the outgoing edges of u, nil when u has none.
func (g Graph[N, W]) Neighbors(u N) []Edge[N, W] { return g[u] }

// EdgeWeight returns the weight of u→v and whether that edge exists.
// With parallel edges the cheapest one is reported.
func (g Graph[N, W]) EdgeWeight(u, v N) (W, bool) {
	var (
		best  W
		found bool
	)
	for _, e := range g[u] {
		if e.To == v && (!found || e.Weight < best) {
			best, found = e.Weight, true
		}
	}

	return best, found
}

// Stats counts the work done by one run.
type Stats struct {
	Pops        int // entries popped from the frontier, stale ones included
	StalePops   int // popped entries whose cost had already been consumed
	EdgeScans   int // edges examined during relaxation
	Relaxations int // edges that improved a tentative cost
}

// Result holds the tables produced by one run from Source.
//
//	Costs: node → cost of the cheapest known path; contains Source at zero.
//	Prev:  node → predecessor on that path; never contains Source.
type Result[N comparable, W Weight] struct {
	Source N
	Costs  map[N]W
	Prev   map[N]N
	Stats  Stats
}

// CostTo returns the shortest-path cost to d and whether d was reached.
func (r *Result[N, W]) CostTo(d N) (W, bool) {
	c, ok := r.Costs[d]
	return c, ok
}

// Reachable reports whether d was discovered from the source.
func (r *Result[N, W]) Reachable(d N) bool {
	_, ok := r.Costs[d]
	return ok
}

// PathTo reconstructs the source→d path from the predecessor table.
func (r *Result[N, W]) PathTo(d N) ([]N, error) {
	return ExtractPath(r.Prev, r.Source, d)
}

// QueueKind selects the frontier strategy.
type QueueKind int

const (
	// QueueLazy pushes duplicates on improvement and skips stale pops.
	QueueLazy QueueKind = iota

	// QueueIndexed keeps one heap slot per node and updates it in place.
	QueueIndexed
)

// String returns the option name of k.
func (k QueueKind) String() string {
	switch k {
	case QueueLazy:
		return "lazy"
	case QueueIndexed:
		return "indexed"
	default:
		return fmt.Sprintf("QueueKind(%d)", int(k))
	}
}

// Options configures a shortest-path run.
//
//	Queue:         frontier strategy (default QueueLazy).
//	Logger:        receives Debug records about the run (default discards).
//	CheckNegative: scan every edge up front and fail with ErrNegativeWeight.
type Options struct {
	Queue         QueueKind
	Logger        *slog.Logger
	CheckNegative bool
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Queue:         QueueLazy,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		CheckNegative: false,
	}
}

// WithQueue selects the frontier strategy. Unknown kinds fall back to QueueLazy.
func WithQueue(kind QueueKind) Option {
	return func(o *Options) {
		switch kind {
		case QueueLazy, QueueIndexed:
			o.Queue = kind
		default:
			o.Queue = QueueLazy
		}
	}
}

// WithLogger routes run diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithNegativeWeightCheck enables an O(E) scan that rejects negative weights
// before the search starts.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegative = true
	}
}
