// Package graphcalc computes combinatorial graph invariants over small,
// simple, undirected graphs: zero forcing and its PSD and power-domination
// relatives, independence/clique/coloring/matching/vertex-cover numbers,
// the dominating-set family (total, independent, restrained, Roman,
// double Roman, k-rainbow, outer-connected), and degree-sequence
// invariants (Slater, annihilation, residue, harmonic index).
//
// 🚀 What is GraphCalc?
//
//	A small, synchronous library that brings together:
//
//	  • Core primitives: build graphs, query neighborhoods, views
//	    (induced subgraph, complement, line graph) under read/write locks
//	  • A closure engine: one monotone propagation operator parameterized
//	    by rule, covering k-forcing, PSD forcing, and power domination
//	  • A subset-search engine: brute-force minimum-witness search over a
//	    bitset-packed vertex universe
//	  • An ILP formulator: the classic 0/1 integer programs for
//	    independence, coloring, matching, and domination, solved by
//	    gonum's branch-and-bound solver
//	  • A degree-sequence engine: Slater, annihilation, residue,
//	    harmonic index
//
// ✨ Why choose GraphCalc?
//
//   - Exact            — every invariant is computed exactly, not
//     approximated; brute-force and ILP routines target small graphs
//     (n ≲ 25) by design, not by accident
//   - Rock-solid       — built-in R/W locks ensure thread-safe reads
//   - Pluggable solver — the ILP backend's tolerance is configurable
//     process-wide or per call
//   - Pure Go stdlib at the core, gonum at the solver boundary — no
//     external process, no CGo
//
// Under the hood, everything is organized under subpackages:
//
//	core/        — fundamental Graph type and thread-safe primitives
//	bitset/      — fixed-width vertex-subset representation
//	distance/    — BFS-based distance, diameter, radius
//	forcing/     — the closure engine (k-forcing, PSD, power domination)
//	search/      — brute-force minimum-witness subset search
//	ilp/         — the 0/1 integer-program solver wrapper
//	degseq/      — degree-sequence invariants
//	generators/  — named graph-family builders (complete, cycle, Petersen, ...)
//	ioformats/   — edge-list and adjacency-matrix readers
//	invariants/  — the public per-invariant API wiring everything together
//
// Quick example:
//
//	g := generators.Cycle(4)
//	z, err := invariants.ZeroForcingNumber(g)
//	// z == 2
package graphcalc
