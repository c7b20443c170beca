package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Result holds the outcome of a single Dijkstra run.
//
//   - Dist: minimal distance from Source for every reached vertex.
//     Unreached vertices are absent; Dist[Source] is always 0.
//   - Prev: predecessor of every reached vertex except Source on one
//     shortest path.
//
// A Result is built fresh by every run and never touched by the package afterwards.
type Result[V comparable, W core.Weight] struct {
	Source V
	Dist   map[V]W
	Prev   map[V]V
}

// Distance returns the shortest distance to v and whether v was reached.
func (r *Result[V, W]) Distance(v V) (W, bool) {
	d, ok := r.Dist[v]

	return d, ok
}

// PathTo reconstructs one shortest path Source → ... → dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[V, W]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []V{dest}
	for cur := dest; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
