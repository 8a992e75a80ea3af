package ilp

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// defaultTolerance matches the fixtures gonum's own branch_and_bound_test.go
// uses for its BNB examples.
const defaultTolerance = 1e-9

// SolverConfig is the process-wide default solver configuration (spec.md
// §6's "default solver is configurable"), guarded by configMu the way the
// teacher's FlowOptions defaults are guarded in lvlath/flow.
type SolverConfig struct {
	Tolerance float64
}

var (
	configMu sync.RWMutex
	config   = SolverConfig{Tolerance: defaultTolerance}
)

// Configure replaces the process-wide default SolverConfig.
func Configure(cfg SolverConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = defaultTolerance
	}
	config = cfg
}

// DefaultSolver returns the current process-wide SolverConfig.
func DefaultSolver() SolverConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return config
}

// SolveOptions carries per-call overrides of the process-wide default.
type SolveOptions struct {
	Verbose   bool
	Tolerance float64
}

// SolveOption mutates a SolveOptions during Solve.
type SolveOption func(*SolveOptions)

// Verbose enables a single log/slog line per solve describing the
// outcome. Silenced by default (spec.md §5).
func Verbose(v bool) SolveOption {
	return func(o *SolveOptions) { o.Verbose = v }
}

// WithTolerance overrides the solver's numeric tolerance for one call.
func WithTolerance(tol float64) SolveOption {
	return func(o *SolveOptions) { o.Tolerance = tol }
}

// Result is the outcome of a successful Solve: the objective value and
// the 0/1 assignment of every variable.
type Result struct {
	Objective float64
	X         []bool
}

// Solve lowers m onto lp.BNB and returns its optimal assignment. Any
// non-Optimal outcome — infeasibility or a solver error — surfaces as
// NoOptimal (spec.md §4.4).
func Solve(m *Model, opts ...SolveOption) (*Result, error) {
	o := SolveOptions{Tolerance: DefaultSolver().Tolerance}
	for _, fn := range opts {
		fn(&o)
	}

	var a mat.Matrix
	var b []float64
	if len(m.eqRows) > 0 {
		a = rowsToDense(m.eqRows)
		b = m.eqB
	} else {
		b = []float64{}
	}

	g := rowsToDense(m.leRows)
	h := m.leB

	c := make([]float64, m.NumVars)
	copy(c, m.C)
	if m.Sense == Maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}

	whole := make([]bool, m.NumVars)
	for i := range whole {
		whole[i] = true
	}

	fit, x, err := lp.BNB(c, a, b, g, h, whole, o.Tolerance)
	if o.Verbose {
		slog.Default().Info("ilp solve", "vars", m.NumVars, "objective", fit, "error", err)
	}
	if err != nil {
		// Every BNB error (infeasibility or an internal simplex failure)
		// maps onto the single NoOptimal contract spec.md §4.4 requires.
		return nil, NoOptimal
	}

	if m.Sense == Maximize {
		fit = -fit
	}

	selected := make([]bool, m.NumVars)
	for i, xi := range x {
		selected[i] = math.Round(xi) >= 0.5
	}

	return &Result{Objective: fit, X: selected}, nil
}

func rowsToDense(rows [][]float64) *mat.Dense {
	if len(rows) == 0 {
		return mat.NewDense(0, 0, nil)
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return mat.NewDense(len(rows), cols, flat)
}
