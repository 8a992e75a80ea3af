// Package ilp lowers the 0/1 integer programs from spec.md §4.4 onto
// gonum's branch-and-bound mixed-integer solver
// (gonum.org/v1/gonum/optimize/convex/lp.BNB). Model is a thin builder:
// callers (the per-family formulators in package invariants) add an
// objective and constraints by variable index; Solve does the rest.
package ilp

// Sense selects whether Solve minimizes or maximizes the objective.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// Model is a 0/1 integer linear program: every variable is constrained to
// {0,1} automatically at construction (NewModel adds the bound pair
// x_v ≤ 1, −x_v ≤ 0 for each variable), matching the binary decision
// variables every formulation in spec.md §4.4 uses.
type Model struct {
	NumVars int
	Sense   Sense
	C       []float64

	eqRows [][]float64
	eqB    []float64

	leRows [][]float64
	leB    []float64
}

// NewModel allocates a model over numVars binary variables.
func NewModel(numVars int, sense Sense) *Model {
	m := &Model{NumVars: numVars, Sense: sense, C: make([]float64, numVars)}
	for v := 0; v < numVars; v++ {
		m.addBound(v)
	}
	return m
}

func (m *Model) addBound(v int) {
	upper := make([]float64, m.NumVars)
	upper[v] = 1
	m.leRows = append(m.leRows, upper)
	m.leB = append(m.leB, 1)

	lower := make([]float64, m.NumVars)
	lower[v] = -1
	m.leRows = append(m.leRows, lower)
	m.leB = append(m.leB, 0)
}

// SetObjectiveCoeff sets the objective coefficient of variable v.
func (m *Model) SetObjectiveCoeff(v int, coeff float64) {
	m.C[v] = coeff
}

// AddEquality adds the constraint Σ coeffs[v]·x_v = rhs.
func (m *Model) AddEquality(coeffs map[int]float64, rhs float64) {
	row := make([]float64, m.NumVars)
	for v, c := range coeffs {
		row[v] = c
	}
	m.eqRows = append(m.eqRows, row)
	m.eqB = append(m.eqB, rhs)
}

// AddLessEqual adds the constraint Σ coeffs[v]·x_v ≤ rhs.
func (m *Model) AddLessEqual(coeffs map[int]float64, rhs float64) {
	row := make([]float64, m.NumVars)
	for v, c := range coeffs {
		row[v] = c
	}
	m.leRows = append(m.leRows, row)
	m.leB = append(m.leB, rhs)
}

// AddGreaterEqual adds the constraint Σ coeffs[v]·x_v ≥ rhs, expressed to
// the underlying ≤-only solver as −Σ coeffs[v]·x_v ≤ −rhs.
func (m *Model) AddGreaterEqual(coeffs map[int]float64, rhs float64) {
	negated := make(map[int]float64, len(coeffs))
	for v, c := range coeffs {
		negated[v] = -c
	}
	m.AddLessEqual(negated, -rhs)
}
