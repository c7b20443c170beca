// Package shortpath is a small, generic toolkit for single-source shortest
// paths on directed graphs with non-negative weights.
//
// Packages:
//
//	core/      — generic adjacency-list Graph[V, W] with validated edge insertion
//	dijkstra/  — Engine (AddEdge + ShortestPaths), Dijkstra, Result.PathTo, options
//	builder/   — deterministic graph fixtures (paths, cycles, grids, random sparse)
//
// Quick start:
//
//	eng := dijkstra.NewEngine[int, int]()
//	_ = eng.AddEdge(0, 1, 4)
//	_ = eng.AddEdge(0, 2, 6)
//	_ = eng.AddEdge(1, 3, 5)
//	_ = eng.AddEdge(2, 3, 2)
//	dist, _ := eng.ShortestPaths(0) // map[0:0 1:4 2:6 3:8]
//
// Edges are directed; add both directions to model an undirected edge.
// Unreachable vertices are absent from the distance table.
//
//	go get github.com/katalvlaran/shortpath
package shortpath
