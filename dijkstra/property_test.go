package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEdge struct {
	u, v, w int
}

// randomEdges generates m directed edges over n vertices with weights in [0, maxW].
// Self-loops and parallel edges are allowed on purpose.
func randomEdges(r *rand.Rand, n, m, maxW int) []testEdge {
	edges := make([]testEdge, m)
	for i := range edges {
		edges[i] = testEdge{u: r.Intn(n), v: r.Intn(n), w: r.Intn(maxW + 1)}
	}

	return edges
}

func buildEngine(t *testing.T, edges []testEdge) *dijkstra.Engine[int, int] {
	t.Helper()
	eng := dijkstra.NewEngine[int, int]()
	for _, e := range edges {
		require.NoError(t, eng.AddEdge(e.u, e.v, e.w))
	}

	return eng
}

// bruteForce enumerates every simple path from source and keeps the cheapest
// total per vertex. With non-negative weights a shortest walk is never
// cheaper than the best simple path.
func bruteForce(edges []testEdge, source int) map[int]int {
	adj := make(map[int][]testEdge)
	for _, e := range edges {
		adj[e.u] = append(adj[e.u], e)
	}
	best := map[int]int{source: 0}
	onPath := map[int]bool{source: true}

	var walk func(u, cost int)
	walk = func(u, cost int) {
		for _, e := range adj[u] {
			if onPath[e.v] {
				continue
			}
			c := cost + e.w
			if cur, ok := best[e.v]; !ok || c < cur {
				best[e.v] = c
			}
			onPath[e.v] = true
			walk(e.v, c)
			onPath[e.v] = false
		}
	}
	walk(source, 0)

	return best
}

func TestProperty_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(6)
		edges := randomEdges(r, n, r.Intn(n*3+1), 9)
		source := r.Intn(n + 1) // n itself is an isolated, unknown vertex

		eng := buildEngine(t, edges)
		got, err := eng.ShortestPaths(source)
		require.NoError(t, err)
		require.Equal(t, bruteForce(edges, source), got, "round %d edges %v source %d", round, edges, source)
	}
}

func TestProperty_PathsAgreeWithDistances(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 100; round++ {
		n := 2 + r.Intn(8)
		edges := randomEdges(r, n, n*2, 20)
		eng := buildEngine(t, edges)

		res, err := eng.Solve(0)
		require.NoError(t, err)
		for v, d := range res.Dist {
			path, err := res.PathTo(v)
			require.NoError(t, err)
			require.Equal(t, 0, path[0])
			require.Equal(t, v, path[len(path)-1])

			// Each hop must use an edge, and hop costs must add up to d.
			total := 0
			for i := 0; i+1 < len(path); i++ {
				hop := -1
				for _, e := range eng.Graph().Neighbors(path[i]) {
					if e.To == path[i+1] && (hop < 0 || e.Weight < hop) {
						hop = e.Weight
					}
				}
				require.GreaterOrEqual(t, hop, 0)
				total += hop
			}
			assert.Equal(t, d, total, "round %d vertex %d path %v", round, v, path)
		}
	}
}

func TestProperty_Monotonicity(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for round := 0; round < 100; round++ {
		n := 2 + r.Intn(10)
		eng := buildEngine(t, randomEdges(r, n, n*2, 15))
		source := r.Intn(n)

		before, err := eng.ShortestPaths(source)
		require.NoError(t, err)

		extra := randomEdges(r, n, 1, 15)[0]
		require.NoError(t, eng.AddEdge(extra.u, extra.v, extra.w))

		after, err := eng.ShortestPaths(source)
		require.NoError(t, err)
		for v, d := range before {
			nd, ok := after[v]
			require.True(t, ok, "vertex %d became unreachable", v)
			assert.LessOrEqual(t, nd, d, "round %d vertex %d", round, v)
		}
	}
}

func TestProperty_Idempotence(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	eng := buildEngine(t, randomEdges(r, 50, 300, 100))

	first, err := eng.ShortestPaths(0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := eng.ShortestPaths(0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestProperty_SourceAlwaysZero(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 50; round++ {
		n := 1 + r.Intn(10)
		eng := buildEngine(t, randomEdges(r, n, n*3, 10))
		source := r.Intn(n)

		dist, err := eng.ShortestPaths(source)
		require.NoError(t, err)
		assert.Equal(t, 0, dist[source])
	}
}
