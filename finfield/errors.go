package finfield

import "errors"

var (
	// ErrBadModulus indicates a modulus below 2, or a non-prime modulus where
	// a prime is required.
	ErrBadModulus = errors.New("finfield: invalid modulus")

	// ErrModulusMismatch indicates an operation on polynomials over
	// different rings.
	ErrModulusMismatch = errors.New("finfield: modulus mismatch")

	// ErrBadDegree indicates a requested degree below 1.
	ErrBadDegree = errors.New("finfield: degree must be at least 1")

	// ErrNoSuchField indicates a cardinality that is not a prime power.
	ErrNoSuchField = errors.New("finfield: no field of this cardinality")

	// ErrTooLarge indicates a cardinality above MaxCardinality.
	ErrTooLarge = errors.New("finfield: cardinality too large")

	// ErrDivisionByZero is returned when dividing by the zero element or the
	// zero polynomial.
	ErrDivisionByZero = errors.New("finfield: division by zero")

	// ErrZeroDivisor indicates a modulus that is not irreducible.
	ErrZeroDivisor = errors.New("finfield: zero divisor found")
)
