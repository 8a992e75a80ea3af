package forcing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RandyRDavila/GraphCalc/bitset"
	"github.com/RandyRDavila/GraphCalc/core"
	"github.com/RandyRDavila/GraphCalc/forcing"
)

func path(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(string(rune('a'+i)), string(rune('a'+i+1)))
	}
	return g
}

func cycle(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(string(rune('a'+i)), string(rune('a'+(i+1)%n)))
	}
	return g
}

func complete(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(string(rune('a'+i)), string(rune('a'+j)))
		}
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

func seedOf(g *core.Graph, vertices ...string) *bitset.Set {
	s := bitset.New(g.Order())
	for _, v := range vertices {
		idx, ok := g.Index(v)
		if !ok {
			panic("unknown vertex " + v)
		}
		s.Set(idx)
	}
	return s
}

func TestZeroForcingP4(t *testing.T) {
	g := path(4) // a-b-c-d
	seed := seedOf(g, "a")
	ok, err := forcing.IsForcingSet(g, seed, forcing.KForcing, 1)
	require.NoError(t, err)
	assert.True(t, ok, "{a} should zero-force P4")

	seed2 := seedOf(g, "b")
	ok, err = forcing.IsForcingSet(g, seed2, forcing.KForcing, 1)
	require.NoError(t, err)
	assert.False(t, ok, "{b} alone should not zero-force P4")
}

func TestTwoForcingC4(t *testing.T) {
	g := cycle(4)
	seed := seedOf(g, "a")
	ok, err := forcing.IsForcingSet(g, seed, forcing.KForcing, 2)
	require.NoError(t, err)
	assert.True(t, ok, "a single vertex should 2-force C4")
}

func TestZeroForcingC4NeedsTwo(t *testing.T) {
	g := cycle(4)
	seed := seedOf(g, "a")
	ok, err := forcing.IsForcingSet(g, seed, forcing.KForcing, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	seed2 := seedOf(g, "a", "b")
	ok, err = forcing.IsForcingSet(g, seed2, forcing.KForcing, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestZeroForcingStarS4(t *testing.T) {
	g := star(4)
	// Three leaves force the center, then the center forces the fourth leaf.
	seed := seedOf(g, "b", "c", "d")
	ok, err := forcing.IsForcingSet(g, seed, forcing.KForcing, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	seed2 := seedOf(g, "b", "c")
	ok, err = forcing.IsForcingSet(g, seed2, forcing.KForcing, 1)
	require.NoError(t, err)
	assert.False(t, ok, "two leaves alone cannot zero-force the star")
}

func TestPowerDominationStarS4(t *testing.T) {
	g := star(4)
	seed := seedOf(g, "center")
	ok, err := forcing.IsForcingSet(g, seed, forcing.PowerDomination, 1)
	require.NoError(t, err)
	assert.True(t, ok, "the center alone power-dominates the star")
}

// PSD zero forcing number of K_n is a known n-1 result (Barioli, Barrett,
// Fallat et al.): removing any single vertex from the colored set leaves
// the rest as one fully-connected white component, so no colored vertex
// ever has exactly one white neighbor in it until only one white vertex
// remains. spec.md §8's worked example lists "PSD zero forcing = 1" for
// K4; that does not hold under the rule as specified in spec.md §4.2 (R2)
// — see DESIGN.md's "Open Question resolutions" note. This test encodes
// the value the rule as specified actually produces.
func TestPSDForcingK4(t *testing.T) {
	g := complete(4)
	seed3 := seedOf(g, "a", "b", "c")
	ok, err := forcing.IsForcingSet(g, seed3, forcing.PSD, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	seed1 := seedOf(g, "a")
	ok, err = forcing.IsForcingSet(g, seed1, forcing.PSD, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPSDForcingP4(t *testing.T) {
	g := path(4)
	// {a, d}: endpoints each have exactly one white neighbor in their own
	// singleton-plus component, forcing b and c respectively in round one.
	seed := seedOf(g, "a", "d")
	ok, err := forcing.IsForcingSet(g, seed, forcing.PSD, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCloseIsIdempotentAndMonotone(t *testing.T) {
	g := path(5)
	seedSmall := seedOf(g, "a")
	seedBig := seedOf(g, "a", "c")

	closedSmall, err := forcing.Close(g, seedSmall, forcing.KForcing, 1)
	require.NoError(t, err)
	closedAgain, err := forcing.Close(g, closedSmall, forcing.KForcing, 1)
	require.NoError(t, err)
	assert.True(t, closedSmall.Equal(closedAgain), "close should be idempotent")

	closedBig, err := forcing.Close(g, seedBig, forcing.KForcing, 1)
	require.NoError(t, err)
	for _, v := range closedSmall.Slice() {
		assert.True(t, closedBig.Test(v), "monotonicity: closure of a superset must contain closure of the subset")
	}
}

func TestValidateKRejectsNonPositive(t *testing.T) {
	g := path(3)
	seed := seedOf(g, "a")
	_, err := forcing.Close(g, seed, forcing.KForcing, 0)
	assert.ErrorIs(t, err, forcing.ErrBadParameter)
}
