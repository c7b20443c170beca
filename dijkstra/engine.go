package dijkstra

import "github.com/katalvlaran/shortpath/core"

// Engine couples a graph under construction with the shortest-path solver.
//
// Edges are directed; model an undirected edge by adding both directions.
// Engine is not safe for concurrent use: AddEdge must not overlap with any
// other call on the same Engine.
type Engine[V comparable, W core.Weight] struct {
	g *core.Graph[V, W]
}

// NewEngine returns an Engine over an empty graph.
func NewEngine[V comparable, W core.Weight](opts ...core.GraphOption) *Engine[V, W] {
	return &Engine[V, W]{g: core.NewGraph[V, W](opts...)}
}

// AddEdge appends the directed edge u→v. It fails with ErrInvalidWeight
// for a negative or NaN weight and leaves the graph unchanged.
func (e *Engine[V, W]) AddEdge(u, v V, weight W) error {
	return e.g.AddEdge(u, v, weight)
}

// ShortestPaths returns the distance table from source: every vertex
// reachable from source mapped to its minimal path weight. Unreachable
// vertices are absent; an isolated source yields {source: 0}.
func (e *Engine[V, W]) ShortestPaths(source V) (map[V]W, error) {
	res, err := Dijkstra[V, W](e.g, source)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Solve runs Dijkstra from source with the given options and returns the
// full Result, predecessors included.
func (e *Engine[V, W]) Solve(source V, opts ...Option[W]) (*Result[V, W], error) {
	return Dijkstra[V, W](e.g, source, opts...)
}

// Graph exposes the underlying graph for inspection.
func (e *Engine[V, W]) Graph() *core.Graph[V, W] { return e.g }
