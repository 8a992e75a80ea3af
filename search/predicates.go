package search

import (
	"github.com/RandyRDavila/GraphCalc/bitset"
	"github.com/RandyRDavila/GraphCalc/core"
	"github.com/RandyRDavila/GraphCalc/forcing"
)

func verticesOf(g *core.Graph, s *bitset.Set) []string {
	idxs := s.Slice()
	out := make([]string, len(idxs))
	for i, idx := range idxs {
		out[i] = g.VertexAt(idx)
	}
	return out
}

// closedNeighborhoodSet returns N[S] as a fresh bitset of the same width
// as s.
func closedNeighborhoodSet(g *core.Graph, s *bitset.Set) *bitset.Set {
	out := s.Clone()
	for _, idx := range s.Slice() {
		v := g.VertexAt(idx)
		nbrs, _ := g.Neighbors(v)
		for _, u := range nbrs {
			ui, _ := g.Index(u)
			out.Set(ui)
		}
	}
	return out
}

// IsZeroForcingSet reports whether s is a valid seed for classical (k=1)
// zero forcing.
func IsZeroForcingSet(g *core.Graph, s *bitset.Set) bool {
	ok, err := forcing.IsForcingSet(g, s, forcing.KForcing, 1)
	return err == nil && ok
}

// IsKForcingSet reports whether s is a valid seed for k-forcing.
func IsKForcingSet(g *core.Graph, s *bitset.Set, k int) bool {
	ok, err := forcing.IsForcingSet(g, s, forcing.KForcing, k)
	return err == nil && ok
}

// IsPSDForcingSet reports whether s is a valid seed for PSD forcing.
func IsPSDForcingSet(g *core.Graph, s *bitset.Set) bool {
	ok, err := forcing.IsForcingSet(g, s, forcing.PSD, 0)
	return err == nil && ok
}

// TotalZeroForcing is the predicate "is-forcing-set(G,S,KForcing,1) AND
// every v in S has at least one neighbor in S" (spec.md §4.3): no isolated
// vertex in the induced subgraph on S.
func TotalZeroForcing(g *core.Graph, s *bitset.Set) bool {
	if !IsZeroForcingSet(g, s) {
		return false
	}
	return noIsolatedVertex(g, s)
}

func noIsolatedVertex(g *core.Graph, s *bitset.Set) bool {
	verts := verticesOf(g, s)
	if len(verts) == 0 {
		return false
	}
	induced := g.Induced(verts)
	for _, v := range induced.Vertices() {
		d, err := induced.Degree(v)
		if err != nil || d == 0 {
			return false
		}
	}
	return true
}

// ConnectedKForcing is "is-k-forcing-set AND the induced subgraph on S is
// connected" (spec.md §4.3).
func ConnectedKForcing(k int) Predicate {
	return func(g *core.Graph, s *bitset.Set) bool {
		if !IsKForcingSet(g, s, k) {
			return false
		}
		verts := verticesOf(g, s)
		if len(verts) == 0 {
			return false
		}
		return g.Induced(verts).Connected()
	}
}

// KPowerDominating is "is-k-forcing-set(G, N[S], k)" (spec.md §4.3).
func KPowerDominating(k int) Predicate {
	return func(g *core.Graph, s *bitset.Set) bool {
		closed := closedNeighborhoodSet(g, s)
		ok, err := forcing.IsForcingSet(g, closed, forcing.KForcing, k)
		return err == nil && ok
	}
}

// IsDominating reports whether N[S] = V.
func IsDominating(g *core.Graph, s *bitset.Set) bool {
	return closedNeighborhoodSet(g, s).Count() == g.Order()
}

// OuterConnectedDominating is "dominating ∧ induced subgraph on V∖S is
// connected" (spec.md §4.4: outer-connected domination is S-solved, not
// LP). The empty-complement case (S = V) is vacuously connected.
func OuterConnectedDominating(g *core.Graph, s *bitset.Set) bool {
	if !IsDominating(g, s) {
		return false
	}
	inS := make(map[string]bool, s.Count())
	for _, v := range verticesOf(g, s) {
		inS[v] = true
	}
	var outside []string
	for _, v := range g.Vertices() {
		if !inS[v] {
			outside = append(outside, v)
		}
	}
	if len(outside) == 0 {
		return true
	}
	return g.Induced(outside).Connected()
}
