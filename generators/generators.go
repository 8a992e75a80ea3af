// Package generators builds common named graph families over
// core.Graph, re-expressing original_source/graphcalc/generators/general.py's
// constructors (Complete, Cycle, Path, Star, Wheel, Petersen, Erdős–Rényi)
// for the library's tests and examples.
package generators

import (
	"fmt"
	"math/rand"

	"github.com/RandyRDavila/GraphCalc/core"
)

func vertexName(i int) string {
	return fmt.Sprintf("v%d", i)
}

// Complete returns K_n.
func Complete(n int) *core.Graph {
	g := core.NewGraph(core.WithCapacityHint(n))
	for i := 0; i < n; i++ {
		_ = g.AddVertex(vertexName(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(vertexName(i), vertexName(j))
		}
	}
	return g
}

// Cycle returns C_n (n ≥ 3).
func Cycle(n int) *core.Graph {
	g := core.NewGraph(core.WithCapacityHint(n))
	for i := 0; i < n; i++ {
		_ = g.AddEdge(vertexName(i), vertexName((i+1)%n))
	}
	return g
}

// Path returns P_n.
func Path(n int) *core.Graph {
	g := core.NewGraph(core.WithCapacityHint(n))
	if n == 1 {
		_ = g.AddVertex(vertexName(0))
		return g
	}
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(vertexName(i), vertexName(i+1))
	}
	return g
}

// Star returns K_{1,leaves}: vertex 0 is the center.
func Star(leaves int) *core.Graph {
	g := core.NewGraph(core.WithCapacityHint(leaves + 1))
	_ = g.AddVertex(vertexName(0))
	for i := 1; i <= leaves; i++ {
		_ = g.AddEdge(vertexName(0), vertexName(i))
	}
	return g
}

// Wheel returns W_n: a hub (vertex n-1) joined to every vertex of C_{n-1}.
func Wheel(n int) *core.Graph {
	g := Cycle(n - 1)
	hub := vertexName(n - 1)
	_ = g.AddVertex(hub)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(hub, vertexName(i))
	}
	return g
}

// Petersen returns the Petersen graph: an outer 5-cycle, an inner
// 5-vertex pentagram (step 2), and five spokes connecting them.
func Petersen() *core.Graph {
	g := core.NewGraph(core.WithCapacityHint(10))
	outer := func(i int) string { return fmt.Sprintf("o%d", i%5) }
	inner := func(i int) string { return fmt.Sprintf("i%d", i%5) }
	for i := 0; i < 5; i++ {
		_ = g.AddEdge(outer(i), outer(i+1))
		_ = g.AddEdge(inner(i), inner(i+2))
		_ = g.AddEdge(outer(i), inner(i))
	}
	return g
}

// ErdosRenyi returns a G(n,p) random graph using rng for edge decisions.
// Callers own the rng for reproducibility; pass rand.New(rand.NewSource(seed))
// for deterministic tests.
func ErdosRenyi(n int, p float64, rng *rand.Rand) *core.Graph {
	g := core.NewGraph(core.WithCapacityHint(n))
	for i := 0; i < n; i++ {
		_ = g.AddVertex(vertexName(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = g.AddEdge(vertexName(i), vertexName(j))
			}
		}
	}
	return g
}
