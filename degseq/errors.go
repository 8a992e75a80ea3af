package degseq

import "errors"

// ErrBadParameter is returned when k < 1 (spec.md §4.5's "Fails with
// BadParameter if k < 1 or non-integer" — this port takes k as a Go int,
// so only the k < 1 half of that check applies).
var ErrBadParameter = errors.New("degseq: k must be a positive integer")

func validateK(k int) error {
	if k < 1 {
		return ErrBadParameter
	}
	return nil
}
