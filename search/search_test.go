package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RandyRDavila/GraphCalc/bitset"
	"github.com/RandyRDavila/GraphCalc/core"
	"github.com/RandyRDavila/GraphCalc/search"
)

func path(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(string(rune('a'+i)), string(rune('a'+i+1)))
	}
	return g
}

func star(leaves int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= leaves; i++ {
		_ = g.AddEdge("center", string(rune('a'+i)))
	}
	return g
}

func TestMinimumSetZeroForcingP4(t *testing.T) {
	g := path(4)
	s, err := search.MinimumSet(g, search.IsZeroForcingSet, g.MinDegree())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count())
}

func TestMinimumSetZeroForcingStar(t *testing.T) {
	g := star(4)
	s, err := search.MinimumSet(g, search.IsZeroForcingSet, g.MinDegree())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count())
}

func TestTotalZeroForcingRejectsIsolatedWitness(t *testing.T) {
	g := path(4) // a-b-c-d
	s, err := search.MinimumSet(g, search.TotalZeroForcing, 1)
	require.NoError(t, err)
	// {a} zero-forces P4 but is isolated within the induced subgraph on
	// itself, so total-zero-forcing must reject it and find a larger
	// witness with an internal edge.
	assert.GreaterOrEqual(t, s.Count(), 2)
}

func TestConnectedKForcingRequiresConnectedWitness(t *testing.T) {
	g := path(4)
	pred := search.ConnectedKForcing(1)
	s, err := search.MinimumSet(g, pred, 1)
	require.NoError(t, err)
	assert.True(t, pred(g, s))
}

func TestKPowerDominatingStar(t *testing.T) {
	g := star(4)
	pred := search.KPowerDominating(1)
	s, err := search.MinimumSet(g, pred, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count())
}

func TestOuterConnectedDominatingPath(t *testing.T) {
	g := path(5)
	s, err := search.MinimumSet(g, search.OuterConnectedDominating, 1)
	require.NoError(t, err)
	assert.True(t, search.IsDominating(g, s))
}

func TestMinimumSetNoWitness(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("a")
	never := func(*core.Graph, *bitset.Set) bool { return false }
	_, err := search.MinimumSet(g, never, 0)
	assert.ErrorIs(t, err, search.ErrNoWitness)
}
