package invariants

import (
	"github.com/RandyRDavila/GraphCalc/core"
	"github.com/RandyRDavila/GraphCalc/degseq"
)

// SubKDomination re-exports degseq.SubKDomination (spec.md §4.5).
func SubKDomination(g *core.Graph, k int) (int, error) {
	return degseq.SubKDomination(g, k)
}

// SlaterNumber re-exports degseq.Slater.
func SlaterNumber(g *core.Graph) int {
	return degseq.Slater(g)
}

// SubTotalDomination re-exports degseq.SubTotalDomination.
func SubTotalDomination(g *core.Graph) int {
	return degseq.SubTotalDomination(g)
}

// AnnihilationNumber re-exports degseq.Annihilation.
func AnnihilationNumber(g *core.Graph) int {
	return degseq.Annihilation(g)
}

// ResidueNumber re-exports degseq.Residue.
func ResidueNumber(g *core.Graph) int {
	return degseq.Residue(g)
}

// HarmonicIndex re-exports degseq.HarmonicIndex.
func HarmonicIndex(g *core.Graph) float64 {
	return degseq.HarmonicIndex(g)
}
