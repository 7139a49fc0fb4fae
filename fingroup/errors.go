// SPDX-License-Identifier: MIT
// Package: GroupEnumerator/fingroup
//
// errors.go: sentinel errors and the structured construction error.
//
// Error policy:
//   - Every violated group axiom has exactly one sentinel.
//   - New returns *InvalidGroupError whose Reason is one of the sentinels, so
//     callers branch with errors.Is(err, ErrAssociativity) and read the
//     offending elements from the struct with errors.As.
//   - Validation order is fixed: shape → closure → identity → inverses →
//     associativity. The first violation wins.

package fingroup

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates an empty or non-square table.
	ErrBadShape = errors.New("fingroup: table is empty or not square")

	// ErrClosure indicates a table entry outside [0,order).
	ErrClosure = errors.New("fingroup: closure violated")

	// ErrIdentity indicates that element 0 is not a two-sided identity.
	ErrIdentity = errors.New("fingroup: element 0 is not the identity")

	// ErrInverse indicates a row without exactly one 0, or a one-sided inverse.
	ErrInverse = errors.New("fingroup: inverses violated")

	// ErrAssociativity indicates a triple with (ab)c ≠ a(bc).
	ErrAssociativity = errors.New("fingroup: associativity violated")

	// ErrParse indicates malformed textual table input.
	ErrParse = errors.New("fingroup: malformed table text")
)

// InvalidGroupError reports which axiom a table violates and where.
// Unused coordinates are -1.
type InvalidGroupError struct {
	Reason  error
	I, J, K int
}

func (e *InvalidGroupError) Error() string {
	switch {
	case e.K >= 0:
		return fmt.Sprintf("%v at (%d,%d,%d)", e.Reason, e.I, e.J, e.K)
	case e.J >= 0:
		return fmt.Sprintf("%v at (%d,%d)", e.Reason, e.I, e.J)
	case e.I >= 0:
		return fmt.Sprintf("%v at %d", e.Reason, e.I)
	default:
		return e.Reason.Error()
	}
}

// Unwrap exposes Reason to errors.Is.
func (e *InvalidGroupError) Unwrap() error { return e.Reason }

func invalid(reason error, idx ...int) *InvalidGroupError {
	e := &InvalidGroupError{Reason: reason, I: -1, J: -1, K: -1}
	if len(idx) > 0 {
		e.I = idx[0]
	}
	if len(idx) > 1 {
		e.J = idx[1]
	}
	if len(idx) > 2 {
		e.K = idx[2]
	}

	return e
}
