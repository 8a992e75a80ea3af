package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RandyRDavila/GraphCalc/core"
)

func pathGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(vname(i), vname(i+1))
	}
	if n == 1 {
		_ = g.AddVertex(vname(0))
	}
	return g
}

func cycleGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(vname(i), vname((i+1)%n))
	}
	return g
}

func completeGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(vname(i), vname(j))
		}
	}
	return g
}

func starGraph(leaves int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= leaves; i++ {
		_ = g.AddEdge(vname(0), vname(i))
	}
	return g
}

func vname(i int) string {
	return string(rune('a' + i))
}

func TestAddEdgeIsIdempotentAndUndirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "a"))

	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())
	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := core.NewGraph()
	err := g.AddEdge("a", "a")
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestNeighborsAndDegree(t *testing.T) {
	g := pathGraph(4) // a-b-c-d
	nbrs, err := g.Neighbors("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, nbrs)

	d, err := g.Degree("b")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = g.Degree("z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDegreeSequenceP4(t *testing.T) {
	g := pathGraph(4)
	seq := g.DegreeSequence()
	assert.ElementsMatch(t, []int{1, 2, 2, 1}, seq)
	assert.Equal(t, 1, g.MinDegree())
	assert.Equal(t, 2, g.MaxDegree())
}

func TestInducedSubgraph(t *testing.T) {
	g := pathGraph(4) // a-b-c-d
	sub := g.Induced([]string{"a", "b", "d"})
	assert.Equal(t, 3, sub.Order())
	assert.Equal(t, 1, sub.Size())
	assert.True(t, sub.HasEdge("a", "b"))
	assert.False(t, sub.HasEdge("b", "d"))
}

func TestComplementOfK4IsEmpty(t *testing.T) {
	g := completeGraph(4)
	comp := g.Complement()
	assert.Equal(t, 4, comp.Order())
	assert.Equal(t, 0, comp.Size())
}

func TestComplementStripsNoExtraState(t *testing.T) {
	g := pathGraph(4)
	comp := g.Complement()
	// P4's complement is again P4 (self-complementary).
	assert.Equal(t, 4, comp.Order())
	assert.Equal(t, 3, comp.Size())
	assert.ElementsMatch(t, []int{1, 1, 2, 2}, comp.DegreeSequence())
}

func TestConnectedAndComponents(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("c", "d")
	assert.False(t, g.Connected())
	comps := g.Components()
	assert.Len(t, comps, 2)

	_ = g.AddEdge("b", "c")
	assert.True(t, g.Connected())
}

func TestLineGraphOfStarIsComplete(t *testing.T) {
	g := starGraph(4) // K_{1,4}: 4 edges, pairwise sharing the center
	lg := g.LineGraph()
	assert.Equal(t, 4, lg.Order())
	assert.Equal(t, 6, lg.Size()) // C(4,2) — a complete graph
}

func TestIndexRoundTrip(t *testing.T) {
	g := pathGraph(4)
	for _, v := range g.Vertices() {
		idx, ok := g.Index(v)
		require.True(t, ok)
		assert.Equal(t, v, g.VertexAt(idx))
	}
}
