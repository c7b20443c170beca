package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/shortpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_AppendsDirectedEdge(t *testing.T) {
	g := core.NewGraph[int, int64]()
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 6))

	assert.Equal(t, []core.Edge[int, int64]{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 6},
	}, g.Neighbors(0))

	// Directed only: no mirror edge on the target.
	assert.Nil(t, g.Neighbors(1))
	assert.True(t, g.HasVertex(1))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_NegativeWeightLeavesGraphUnchanged(t *testing.T) {
	g := core.NewGraph[int, int]()
	require.NoError(t, g.AddEdge(7, 8, 1))

	err := g.AddEdge(1, 2, -3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidWeight))
	assert.Contains(t, err.Error(), "1→2")

	assert.False(t, g.HasVertex(1))
	assert.False(t, g.HasVertex(2))
	assert.Equal(t, []int{7, 8}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_NaNWeightRejected(t *testing.T) {
	g := core.NewGraph[string, float64]()
	err := g.AddEdge("a", "b", math.NaN())
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.Equal(t, 0, g.VertexCount())
}

func TestAddEdge_InfiniteWeightAccepted(t *testing.T) {
	g := core.NewGraph[string, float64]()
	require.NoError(t, g.AddEdge("a", "b", math.Inf(1)))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_SelfLoopsAndDuplicates(t *testing.T) {
	g := core.NewGraph[string, int]()
	require.NoError(t, g.AddEdge("x", "x", 0))
	require.NoError(t, g.AddEdge("x", "y", 2))
	require.NoError(t, g.AddEdge("x", "y", 2))

	assert.Len(t, g.Neighbors("x"), 3)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph[int, uint](core.WithCapacity(4))
	g.AddVertex(5)
	g.AddVertex(5)
	assert.Equal(t, []int{5}, g.Vertices())
	assert.Nil(t, g.Neighbors(5))

	// Registering an edge later must not duplicate the vertex.
	require.NoError(t, g.AddEdge(5, 6, 1))
	assert.Equal(t, []int{5, 6}, g.Vertices())
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph[int, int]()
	require.NoError(t, g.AddEdge(1, 2, 3))

	nb := g.Neighbors(1)
	nb[0].Weight = -100

	assert.Equal(t, 3, g.Neighbors(1)[0].Weight)
}

func TestVerticesAndEdges_FirstSeenOrder(t *testing.T) {
	g := core.NewGraph[string, int]()
	require.NoError(t, g.AddEdge("c", "a", 1))
	require.NoError(t, g.AddEdge("b", "c", 2))
	require.NoError(t, g.AddEdge("c", "b", 3))

	assert.Equal(t, []string{"c", "a", "b"}, g.Vertices())
	assert.Equal(t, []core.Edge[string, int]{
		{From: "c", To: "a", Weight: 1},
		{From: "c", To: "b", Weight: 3},
		{From: "b", To: "c", Weight: 2},
	}, g.Edges())
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph[int, float64]()
	require.NoError(t, g.AddEdge(0, 1, 1.5))
	g.AddVertex(9)

	c := g.Clone()
	require.NoError(t, c.AddEdge(0, 2, 2.5))
	require.NoError(t, g.AddEdge(1, 0, 0.5))

	assert.Equal(t, []int{0, 1, 9}, g.Vertices())
	assert.Equal(t, []int{0, 1, 9, 2}, c.Vertices())
	assert.Len(t, g.Neighbors(0), 1)
	assert.Len(t, c.Neighbors(0), 2)
	assert.Nil(t, c.Neighbors(1))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.True(t, c.HasVertex(9))
}

func TestClear(t *testing.T) {
	g := core.NewGraph[int, int]()
	require.NoError(t, g.AddEdge(0, 1, 1))
	g.Clear()

	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Edges())
	assert.False(t, g.HasVertex(0))

	require.NoError(t, g.AddEdge(2, 3, 1))
	assert.Equal(t, []int{2, 3}, g.Vertices())
}

func TestValidWeight(t *testing.T) {
	assert.True(t, core.ValidWeight(0))
	assert.True(t, core.ValidWeight(uint8(255)))
	assert.True(t, core.ValidWeight(math.Inf(1)))
	assert.False(t, core.ValidWeight(-1))
	assert.False(t, core.ValidWeight(math.Inf(-1)))
	assert.False(t, core.ValidWeight(float32(math.NaN())))
}
