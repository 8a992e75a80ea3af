// Package distance computes unweighted shortest-path quantities —
// eccentricity, diameter, radius, and average shortest path length — over
// a *core.Graph.
//
// spec.md §3 forbids weighted edges entirely, so every distance here is an
// edge count reachable by breadth-first search; there is no Dijkstra-style
// relaxation to perform. The package is modeled on the teacher's
// github.com/katalvlaran/lvlath/dijkstra package (doc-comment register,
// sentinel-error set) with the underlying algorithm swapped for BFS, since
// that teacher package's priority-queue machinery has nothing to do once
// every edge weighs exactly one.
package distance

import (
	"fmt"

	"github.com/RandyRDavila/GraphCalc/core"
)

// bfsDistances returns the distance from source to every reachable vertex,
// keyed by vertex ID. Unreached vertices are absent from the map.
func bfsDistances(g *core.Graph, source string) map[string]int {
	dist := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		nbrs, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		for _, u := range nbrs {
			if _, seen := dist[u]; !seen {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}
	return dist
}

// Eccentricities returns, for each vertex v, the greatest distance from v
// to any other vertex. Returns core.ErrNotConnected if g has more than one
// component (eccentricity is undefined across components).
func Eccentricities(g *core.Graph) (map[string]int, error) {
	if !g.Connected() {
		return nil, fmt.Errorf("distance: %w", core.ErrNotConnected)
	}
	verts := g.Vertices()
	ecc := make(map[string]int, len(verts))
	for _, v := range verts {
		dist := bfsDistances(g, v)
		max := 0
		for _, d := range dist {
			if d > max {
				max = d
			}
		}
		ecc[v] = max
	}
	return ecc, nil
}

// Diameter returns the maximum eccentricity over all vertices.
func Diameter(g *core.Graph) (int, error) {
	ecc, err := Eccentricities(g)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, e := range ecc {
		if e > max {
			max = e
		}
	}
	return max, nil
}

// Radius returns the minimum eccentricity over all vertices.
func Radius(g *core.Graph) (int, error) {
	ecc, err := Eccentricities(g)
	if err != nil {
		return 0, err
	}
	if len(ecc) == 0 {
		return 0, nil
	}
	min := -1
	for _, e := range ecc {
		if min == -1 || e < min {
			min = e
		}
	}
	return min, nil
}

// AverageShortestPathLength returns the mean distance over every ordered
// pair of distinct vertices.
func AverageShortestPathLength(g *core.Graph) (float64, error) {
	if !g.Connected() {
		return 0, fmt.Errorf("distance: %w", core.ErrNotConnected)
	}
	verts := g.Vertices()
	n := len(verts)
	if n < 2 {
		return 0, nil
	}
	total := 0
	for _, v := range verts {
		dist := bfsDistances(g, v)
		for _, d := range dist {
			total += d
		}
	}
	pairs := n * (n - 1)
	return float64(total) / float64(pairs), nil
}
