// File: types.go
// Role: Weight constraint, Edge and Graph types, GraphOption, sentinel errors
//       and the NewGraph constructor.
// Concurrency:
//   - None. Graph is owned by a single writer; see package doc.

package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidWeight indicates an edge weight that is negative or NaN.
// Dijkstra's finalization invariant only holds for non-negative weights,
// so such edges are refused at construction time instead of being clamped.
var ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

// Weight is the set of numeric types usable as edge weights and distances.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is a directed, weighted connection From→To.
type Edge[V comparable, W Weight] struct {
	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the non-negative traversal cost.
	Weight W
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	capacity int
}

// WithCapacity pre-sizes internal storage for roughly n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Graph is a directed, weighted adjacency-list graph.
//
// adjacency[u] holds u's outgoing edges in insertion order.
// order records vertices in the order they were first seen so that
// Vertices and Edges are deterministic despite map iteration.
type Graph[V comparable, W Weight] struct {
	adjacency map[V][]Edge[V, W]
	order     []V
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph[V comparable, W Weight](opts ...GraphOption) *Graph[V, W] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V, W]{
		adjacency: make(map[V][]Edge[V, W], cfg.capacity),
		order:     make([]V, 0, cfg.capacity),
	}
}
