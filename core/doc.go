// Package core provides the generic in-memory weighted Graph that the
// shortest-path engine runs on.
//
// The Graph G = (V,E) is a directed adjacency list:
//
//   - Vertices are any comparable type V (ints, strings, small structs).
//   - Weights are any integer or floating-point type W (see Weight).
//   - Each vertex owns an ordered slice of outgoing edges; AddEdge appends.
//   - Parallel edges and self-loops are always permitted.
//   - Undirected modelling is a caller convention: call AddEdge(u, v, w)
//     and AddEdge(v, u, w).
//
// Why a separate core package?
//
//   - Graph storage has no knowledge of any algorithm; dijkstra consumes it
//     through a one-method interface, so callers may plug in their own storage.
//   - Validation lives at the edge: a negative (or NaN) weight never enters the
//     graph, which is what Dijkstra's correctness rests on.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                       // O(1), idempotent
//	HasVertex(v V) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v V, w W) error           // O(1) amortized; ErrInvalidWeight on w<0 or NaN
//
//	// Query
//	Neighbors(u V) []Edge[V, W]          // O(deg(u)), insertion order, copy
//	Vertices() []V                       // O(V), first-seen order
//	Edges() []Edge[V, W]                 // O(V+E), grouped by source vertex
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1)
//
//	// Maintenance
//	Clone() *Graph[V, W]                 // O(V+E) deep copy
//	Clear()                              // O(1)
//
// Concurrency:
//
//	Graph carries no locks. Concurrent readers are safe; any AddEdge, AddVertex
//	or Clear must be externally serialized against every other call.
//
// Errors:
//
//	ErrInvalidWeight - edge weight is negative or NaN.
package core
