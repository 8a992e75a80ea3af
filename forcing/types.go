// Package forcing implements the C component: a single monotone
// propagation operator parameterized by a rule ID, covering k-forcing,
// positive-semidefinite (PSD) forcing, and power domination (spec.md
// §4.2). The three rules are not a subclass hierarchy — original_source's
// Python models them as three loosely related free functions
// (graphcalc/zero_forcing.py) — but variants of one Close entry point, per
// spec.md §9's "closure rules as a sum type" redesign note.
package forcing

import "errors"

// ErrBadParameter is returned when a rule's integer parameter k is less
// than 1. spec.md §9 calls out that the Python original coerces floats
// like 1.0 via float(k).is_integer(); this port takes k as a Go int and
// only ever rejects k < 1.
var ErrBadParameter = errors.New("forcing: k must be a positive integer")

// Rule identifies which color-change rule Close evaluates.
type Rule int

const (
	// KForcing is rule (R1): a colored vertex v is active iff
	// 1 ≤ |N(v) ∩ W| ≤ k, and forces every white neighbor to join the
	// colored set. K=1 is the classical zero forcing rule.
	KForcing Rule = iota

	// PSD is rule (R2): positive-semidefinite forcing. A colored vertex v
	// forces its unique white neighbor within a single component of the
	// white-induced subgraph.
	PSD

	// PowerDomination is rule (R3): the colored set is first replaced by
	// its closed neighborhood, then KForcing with parameter k is applied
	// to fixed point.
	PowerDomination
)

// ValidateK returns ErrBadParameter unless k is a positive integer.
// KForcing and PowerDomination both require a parameter; PSD ignores k.
func ValidateK(k int) error {
	if k < 1 {
		return ErrBadParameter
	}
	return nil
}
