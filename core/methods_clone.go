// File: methods_clone.go
// Role: Cloning and clearing graph instances.

package core

// Clone returns a deep copy of the Graph: vertices, their order and all edges.
// Mutating the clone never affects g and vice versa.
//
// Complexity: O(V + E).
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	clone := &Graph[V, W]{
		adjacency: make(map[V][]Edge[V, W], len(g.adjacency)),
		order:     make([]V, len(g.order)),
		edgeCount: g.edgeCount,
	}
	copy(clone.order, g.order)
	for u, out := range g.adjacency {
		if out == nil {
			clone.adjacency[u] = nil
			continue
		}
		edges := make([]Edge[V, W], len(out))
		copy(edges, out)
		clone.adjacency[u] = edges
	}

	return clone
}

// Clear removes every vertex and edge.
// Complexity: O(1) (old storage is left to the GC).
func (g *Graph[V, W]) Clear() {
	g.adjacency = make(map[V][]Edge[V, W])
	g.order = nil
	g.edgeCount = 0
}
