// Package ts encodes a finite Kripke structure as a set of BDDs: one
// node per atomic proposition (built on first use), a single transition
// relation, and the
// machinery (state_bdd, ap_bdd, pre, post) the checker package needs to
// evaluate CTL formulas over it.
package ts

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidTransitionSystem reports a malformed construction: an
// out-of-range state index, an empty initial set, or similar.
type ErrInvalidTransitionSystem struct {
	Reason string
}

func (e *ErrInvalidTransitionSystem) Error() string {
	return fmt.Sprintf("ts: invalid transition system: %s", e.Reason)
}

func invalid(format string, args ...interface{}) error {
	return errors.WithStack(&ErrInvalidTransitionSystem{Reason: fmt.Sprintf(format, args...)})
}

// ErrBadPermutation reports a var_order that is not a permutation of
// [0, k).
type ErrBadPermutation struct {
	Perm []int
	K    int
}

func (e *ErrBadPermutation) Error() string {
	return fmt.Sprintf("ts: var_order %v is not a permutation of [0,%d)", e.Perm, e.K)
}

func badPermutation(perm []int, k int) error {
	return errors.WithStack(&ErrBadPermutation{Perm: perm, K: k})
}
