package invariants

import (
	"fmt"

	"github.com/RandyRDavila/GraphCalc/bitset"
	"github.com/RandyRDavila/GraphCalc/core"
	"github.com/RandyRDavila/GraphCalc/search"
)

// ZeroForcingSet returns a minimum zero forcing set (spec.md §4.3's
// lower bound δ(G), the minimum degree).
func ZeroForcingSet(g *core.Graph) ([]string, error) {
	s, err := search.MinimumSet(g, search.IsZeroForcingSet, g.MinDegree())
	if err != nil {
		return nil, err
	}
	return vertexNames(g, s), nil
}

// ZeroForcingNumber is Z(G).
func ZeroForcingNumber(g *core.Graph) (int, error) {
	s, err := ZeroForcingSet(g)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// KForcingSet returns a minimum k-forcing set, searching from cardinality
// 1 (a single vertex can already k-force a graph, e.g. C4 with k = 2).
func KForcingSet(g *core.Graph, k int) ([]string, error) {
	pred := func(gr *core.Graph, set *bitset.Set) bool {
		return search.IsKForcingSet(gr, set, k)
	}
	s, err := search.MinimumSet(g, pred, 1)
	if err != nil {
		return nil, err
	}
	return vertexNames(g, s), nil
}

// KForcingNumber is F_k(G).
func KForcingNumber(g *core.Graph, k int) (int, error) {
	s, err := KForcingSet(g, k)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// PSDForcingSet returns a minimum PSD zero forcing set.
func PSDForcingSet(g *core.Graph) ([]string, error) {
	s, err := search.MinimumSet(g, search.IsPSDForcingSet, 1)
	if err != nil {
		return nil, err
	}
	return vertexNames(g, s), nil
}

// PSDForcingNumber is Z_+(G).
func PSDForcingNumber(g *core.Graph) (int, error) {
	s, err := PSDForcingSet(g)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// PowerDominatingSet returns a minimum power dominating set for
// parameter k (k=1 is the classical power domination number).
func PowerDominatingSet(g *core.Graph, k int) ([]string, error) {
	s, err := search.MinimumSet(g, search.KPowerDominating(k), 1)
	if err != nil {
		return nil, err
	}
	return vertexNames(g, s), nil
}

// PowerDominationNumber is γ_P(G) (k=1).
func PowerDominationNumber(g *core.Graph) (int, error) {
	s, err := PowerDominatingSet(g, 1)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// TotalZeroForcingNumber is the minimum total zero forcing set's
// cardinality (spec.md §4.3).
func TotalZeroForcingNumber(g *core.Graph) (int, error) {
	s, err := search.MinimumSet(g, search.TotalZeroForcing, 1)
	if err != nil {
		return 0, err
	}
	return s.Count(), nil
}

// ConnectedForcingNumber is the minimum connected k-forcing set's
// cardinality. Fails with core.ErrNotConnected if g is disconnected,
// matching spec.md §4.3's "connected k-forcing requires G connected;
// otherwise returns not applicable" — the same contract
// distance.Diameter/Radius/AverageShortestPathLength use for their own
// connectedness requirement.
func ConnectedForcingNumber(g *core.Graph, k int) (int, error) {
	if !g.Connected() {
		return 0, fmt.Errorf("invariants: %w", core.ErrNotConnected)
	}
	s, err := search.MinimumSet(g, search.ConnectedKForcing(k), 1)
	if err != nil {
		return 0, err
	}
	return s.Count(), nil
}
