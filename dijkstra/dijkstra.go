// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries for vertices that are already finalized.
//   - Only finalized vertices appear in the result; there is no "infinity" entry.
//   - Negative weights are rejected by core.Graph.AddEdge; relax re-checks them
//     so that foreign Graph implementations fail loudly instead of silently
//     producing wrong distances.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/internal/frontier"
)

// Dijkstra computes shortest distances from source to every vertex reachable
// from it in g.
//
// The source does not need to be known to g: an isolated or unknown source
// yields a Result whose Dist is {source: 0}.
//
// Returns ErrNilGraph for a nil g, the first option error, ErrNegativeWeight
// if an edge with negative or NaN weight is reached, or ErrDistanceOverflow if
// a reachable vertex's shortest distance does not fit in W (integer wrap, or a
// float sum of finite weights reaching +Inf). Overflowing sums into vertices
// that also have a representable path are ignored, as are overflows beyond
// MaxDistance. An edge whose weight is itself +Inf is never traversed.
// No partial result is returned on error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V comparable, W core.Weight](g Graph[V, W], source V, opts ...Option[W]) (*Result[V, W], error) {
	// 1) Build and validate options.
	var cfg Options[W]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil. A typed nil *core.Graph is caught too.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph[V, W]); ok && cg == nil {
		return nil, ErrNilGraph
	}

	// 3) Initialize runner state and run main loop.
	r := &runner[V, W]{
		g:         g,
		options:   &cfg,
		dist:      map[V]W{source: 0},
		prev:      make(map[V]V),
		finalized: make(map[V]struct{}),
		pq:        frontier.New[V, W](sizeHint(g)),
	}
	r.pq.Push(source, 0)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Restrict the tables to finalized vertices.
	return r.result(source), nil
}

// sizeHint returns a starting capacity for per-run structures.
func sizeHint[V comparable, W core.Weight](g Graph[V, W]) int {
	if cg, ok := g.(interface{ VertexCount() int }); ok {
		return cg.VertexCount()
	}

	return 0
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, W core.Weight] struct {
	g         Graph[V, W]           // The input graph; read-only within Dijkstra.
	options   *Options[W]           // Thresholds.
	dist      map[V]W               // Best known (tentative or final) distance.
	prev      map[V]V               // Predecessor on the best known path.
	finalized map[V]struct{}        // Vertices whose distance is proven minimal.
	pq        *frontier.Queue[V, W] // Frontier with lazy deletion.
	overflow  []pendingOverflow[V]  // Unrepresentable relaxations of unseen vertices.
}

// pendingOverflow is an overflowing relaxation into a vertex that had no
// tentative distance yet. It only becomes an error if v is never finalized.
type pendingOverflow[V comparable] struct {
	v   V
	err error
}

// process repeatedly extracts the closest unfinalized vertex and relaxes its
// outgoing edges, until the frontier is empty or MaxDistance is exceeded.
func (r *runner[V, W]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		u, d, _ := r.pq.Pop()

		// 2) Stale entry for an already finalized vertex: skip.
		if _, done := r.finalized[u]; done {
			continue
		}

		// 3) Everything left in the heap is at least d away.
		if r.options.beyond(d) {
			break
		}

		// 4) d is now final for u.
		r.finalized[u] = struct{}{}

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	// An overflowed vertex left unfinalized has a true distance W cannot hold.
	for _, p := range r.overflow {
		if _, done := r.finalized[p.v]; !done {
			return p.err
		}
	}

	return nil
}

// noteOverflow handles a relaxation u→v whose sum d+w does not fit in W.
// If v already has a tentative distance, that one is smaller and the edge is
// irrelevant. A wrapped integer sum exceeds any MaxDistance, so v is just out
// of range; a +Inf float sum is out of range for every finite cap.
// Otherwise the overflow is remembered until the frontier drains.
func (r *runner[V, W]) noteOverflow(u, v V, d, w, alt W) {
	if _, seen := r.dist[v]; seen {
		return
	}
	if r.options.hasMaxDistance && (alt < d || r.options.beyond(alt)) {
		return
	}
	r.overflow = append(r.overflow, pendingOverflow[V]{
		v:   v,
		err: fmt.Errorf("%w: %v + %v at edge %v→%v", ErrDistanceOverflow, d, w, u, v),
	})
}

// relax examines each edge outgoing from u (finalized at distance d) and
// records strictly shorter tentative distances, pushing a new frontier entry
// for each improvement.
func (r *runner[V, W]) relax(u V, d W) error {
	for _, e := range r.g.Neighbors(u) {
		v, w := e.To, e.Weight

		if !core.ValidWeight(w) {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, v, w)
		}
		if r.options.impassable(w) {
			continue
		}
		if _, done := r.finalized[v]; done {
			continue
		}

		// A +Inf edge is no finite-weight path.
		if isPosInf(w) {
			continue
		}

		alt := d + w
		// Integer wrap-around, or two finite floats summing to +Inf.
		if alt < d || isPosInf(alt) {
			r.noteOverflow(u, v, d, w, alt)
			continue
		}
		if r.options.beyond(alt) {
			continue
		}

		// Strict "<" keeps equal-cost paths from pushing duplicates.
		if cur, seen := r.dist[v]; seen && alt >= cur {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		r.pq.Push(v, alt)
	}

	return nil
}

// result copies the finalized part of the tables into a fresh Result.
func (r *runner[V, W]) result(source V) *Result[V, W] {
	res := &Result[V, W]{
		Source: source,
		Dist:   make(map[V]W, len(r.finalized)),
		Prev:   make(map[V]V, len(r.finalized)),
	}
	for v := range r.finalized {
		res.Dist[v] = r.dist[v]
		if p, ok := r.prev[v]; ok {
			res.Prev[v] = p
		}
	}

	return res
}

// isPosInf reports whether w is floating-point +Inf. For integer types
// w+w == w only holds for zero, so it is always false.
func isPosInf[W core.Weight](w W) bool {
	return w > 0 && w+w == w
}
