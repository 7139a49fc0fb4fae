package perm

import "errors"

// Unset marks a position without value (forward) or a value without position (inverse).
const Unset = -1

var (
	// ErrPositionAssigned is the precondition violated by Set on an already mapped position.
	ErrPositionAssigned = errors.New("perm: position already assigned")

	// ErrValueAssigned is the precondition violated by Set on an already claimed value.
	ErrValueAssigned = errors.New("perm: value already assigned")

	// ErrOutOfRange indicates a position or value outside [0,n).
	ErrOutOfRange = errors.New("perm: index out of range")

	// ErrNotBijection is returned by FromSlice when the input repeats or skips values.
	ErrNotBijection = errors.New("perm: slice is not a bijection")

	// ErrLengthMismatch is returned by Compose for permutations of different size.
	ErrLengthMismatch = errors.New("perm: length mismatch")

	// ErrPartial is returned by operations that need every position assigned.
	ErrPartial = errors.New("perm: permutation is partial")
)
