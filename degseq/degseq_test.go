package degseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RandyRDavila/GraphCalc/core"
	"github.com/RandyRDavila/GraphCalc/degseq"
)

func path(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(string(rune('a'+i)), string(rune('a'+i+1)))
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

func TestSlaterK4(t *testing.T) {
	g := complete(4)
	assert.Equal(t, 1, degseq.Slater(g))
}

func TestAnnihilationP4(t *testing.T) {
	g := path(4) // degrees [1,2,2,1], m=3
	assert.Equal(t, 2, degseq.Annihilation(g))
}

// Havel-Hakimi on P4's degree sequence [2,2,1,1]: remove 2, decrement the
// next 2 entries -> [1,0,1], re-sort -> [1,1,0]; remove 1, decrement next 1
// -> [0,0]; sequence is all zero, length 2. spec.md §8's worked-example
// table lists "P4 ... residue = 4", which does not match this or
// original_source's residue() — see DESIGN.md's "Open Question
// resolutions" note, the same resolution already applied to the PSD-K4
// forcing number case.
func TestResidueP4(t *testing.T) {
	g := path(4)
	assert.Equal(t, 2, degseq.Residue(g))
}

func TestHarmonicIndexK4(t *testing.T) {
	g := complete(4)
	// 6 edges, each endpoint has degree 3: 6 * 2/(3+3) = 2.0
	assert.InDelta(t, 2.0, degseq.HarmonicIndex(g), 1e-9)
}

func TestSubKDominationRejectsBadK(t *testing.T) {
	g := path(3)
	_, err := degseq.SubKDomination(g, 0)
	require.ErrorIs(t, err, degseq.ErrBadParameter)
}

func TestSubTotalDominationStar(t *testing.T) {
	g := core.NewGraph()
	for i := 1; i <= 4; i++ {
		_ = g.AddEdge("center", string(rune('a'+i)))
	}
	// degrees descending: [4,1,1,1,1], n=5; t=1 already sums to 4 < 5,
	// t=2 sums to 5 >= 5.
	assert.Equal(t, 2, degseq.SubTotalDomination(g))
}
