package dijkstra

import "fmt"

// ExtractPath walks prev backward from dest until it reaches a node without a
// predecessor, then returns the nodes in source→dest order.
//
// dest == source yields [source]. Any other dest missing from prev was never
// discovered and yields a NoPathError, as does a walk that stops at a node
// other than source. A table that loops back on itself yields
// ErrPredecessorCycle instead of spinning forever.
func ExtractPath[N comparable](prev map[N]N, source, dest N) ([]N, error) {
	if dest != source {
		if _, ok := prev[dest]; !ok {
			return nil, NoPathError[N]{Source: source, Destination: dest}
		}
	}

	// 1) Collect dest, prev[dest], prev[prev[dest]], ... A simple path visits
	//    each key of prev at most once, plus the root.
	limit := len(prev) + 1
	path := make([]N, 0, 8)
	cur := dest
	for {
		path = append(path, cur)
		if len(path) > limit {
			return nil, fmt.Errorf("%w: walking back from %v", ErrPredecessorCycle, dest)
		}
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	if cur != source {
		return nil, NoPathError[N]{Source: source, Destination: dest}
	}

	// 2) Reverse into source → dest order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathCost sums the edge weights along path in g. A single-node path costs
// zero. It returns ErrEmptyPath for an empty path and ErrNotAnEdge when two
// consecutive nodes are not joined by an edge.
func PathCost[N comparable, W Weight](g Graph[N, W], path []N) (W, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	var total W
	for i := 1; i < len(path); i++ {
		w, ok := g.EdgeWeight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v→%v", ErrNotAnEdge, path[i-1], path[i])
		}
		total += w
	}

	return total, nil
}
