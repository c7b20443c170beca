// Package dijkstra computes single-source shortest paths on directed graphs
// with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra finalizes vertices in order of increasing distance from the
//     source, using a binary min-heap as the frontier.
//   - The frontier uses lazy deletion: an improved distance pushes a new entry
//     and the superseded one is skipped when popped. No decrease-key is needed.
//   - Vertex and weight types are generic: any comparable V, any integer or
//     floating-point W.
//
// Entry points:
//
//	eng := dijkstra.NewEngine[int, int64]()
//	_ = eng.AddEdge(0, 1, 4)                     // ErrInvalidWeight if w < 0
//	dist, err := eng.ShortestPaths(0)            // map[int]int64{0:0, 1:4}
//
//	res, err := dijkstra.Dijkstra[string, int64](g, "A", // g is any Graph, e.g. *core.Graph
//	    dijkstra.WithMaxDistance(int64(100)),
//	    dijkstra.WithInfEdgeThreshold(int64(1_000)),
//	)
//	path, err := res.PathTo("F")
//
// Result contract:
//
//   - Dist holds exactly the vertices reached from the source. Unreachable
//     vertices are absent (no math.MaxInt64 sentinel), Dist[source] == 0.
//   - An unknown or isolated source is not an error: Dist == {source: 0}.
//   - A Result is fresh per call; two calls on an unchanged graph yield equal maps.
//   - Ties between equal distances are broken arbitrarily; only distance values
//     (not finalization order or the chosen predecessor) are guaranteed.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap holds at most E+1 entries under lazy deletion.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrInvalidWeight:    Engine.AddEdge with a negative or NaN weight.
//   - ErrNilGraph:         nil Graph passed to Dijkstra.
//   - ErrNegativeWeight:   negative weight met during relaxation (only possible
//     with a Graph implementation that skips validation).
//   - ErrDistanceOverflow: a reachable vertex's shortest distance does not fit
//     in W (integer wrap, or finite float weights summing to +Inf).
//   - ErrBadMaxDistance:   WithMaxDistance with a negative value.
//   - ErrBadInfThreshold:  WithInfEdgeThreshold with a value ≤ 0.
//   - ErrNoPath:           Result.PathTo for an unreached vertex.
//
// Thread safety:
//
//   - Dijkstra only reads the graph, so concurrent runs over an unchanged graph
//     are fine. Mutating the graph during a run is not; synchronize externally.
//   - There is no cancellation. Bound the work with WithMaxDistance, or run the
//     call in its own goroutine and drop the result on timeout.
package dijkstra
