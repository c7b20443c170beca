// File: methods.go
// Role: Vertex and edge lifecycle plus read queries.
// Determinism:
//   - Vertices() and Edges() follow first-seen vertex order.
//   - Neighbors() follows AddEdge order for the given source.

package core

import "fmt"

// AddVertex registers v as an isolated vertex. No-op if v is already present.
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddVertex(v V) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.adjacency[v] = nil
	g.order = append(g.order, v)
}

// HasVertex reports whether v was registered through AddVertex or AddEdge.
func (g *Graph[V, W]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]

	return ok
}

// AddEdge appends the directed edge u→v with the given weight.
// Both endpoints are registered as vertices.
//
// Returns ErrInvalidWeight (wrapped with the offending edge) if weight is
// negative or NaN; in that case the graph is left untouched.
//
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddEdge(u, v V, weight W) error {
	if !ValidWeight(weight) {
		return fmt.Errorf("%w: edge %v→%v weight=%v", ErrInvalidWeight, u, v, weight)
	}

	g.AddVertex(u)
	g.AddVertex(v)
	g.adjacency[u] = append(g.adjacency[u], Edge[V, W]{From: u, To: v, Weight: weight})
	g.edgeCount++

	return nil
}

// Neighbors returns a copy of u's outgoing edges in insertion order.
// An unknown vertex, or one without outgoing edges, yields nil.
// Complexity: O(deg(u)).
func (g *Graph[V, W]) Neighbors(u V) []Edge[V, W] {
	out := g.adjacency[u]
	if len(out) == 0 {
		return nil
	}
	res := make([]Edge[V, W], len(out))
	copy(res, out)

	return res
}

// Vertices returns all vertices in first-seen order.
// Complexity: O(V).
func (g *Graph[V, W]) Vertices() []V {
	res := make([]V, len(g.order))
	copy(res, g.order)

	return res
}

// Edges returns every edge, grouped by source vertex in first-seen order
// and by insertion order within a source.
// Complexity: O(V + E).
func (g *Graph[V, W]) Edges() []Edge[V, W] {
	res := make([]Edge[V, W], 0, g.edgeCount)
	for _, u := range g.order {
		res = append(res, g.adjacency[u]...)
	}

	return res
}

// VertexCount returns the number of registered vertices.
func (g *Graph[V, W]) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of edges, counting duplicates and self-loops.
func (g *Graph[V, W]) EdgeCount() int { return g.edgeCount }

// ValidWeight reports whether w is usable as an edge weight:
// non-negative and, for floating-point types, not NaN.
func ValidWeight[W Weight](w W) bool {
	// w != w only holds for NaN.
	return w == w && w >= 0
}
