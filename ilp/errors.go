package ilp

import "errors"

// NoOptimal is returned when the solver does not reach an Optimal status
// for a model (spec.md §4.4: "fails with NoOptimal").
var NoOptimal = errors.New("ilp: solver did not reach an optimal solution")

// Infeasible is returned by formulations that detect infeasibility before
// ever calling the solver — e.g. minimum edge cover on a graph with an
// isolated vertex, which no edge set can cover (spec.md §9 Gallai-identity
// design note).
var Infeasible = errors.New("ilp: problem has no feasible solution")
