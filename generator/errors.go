package generator

import "errors"

var (
	// ErrInvalidOrder is returned for an order below 1.
	ErrInvalidOrder = errors.New("generator: order must be at least 1")

	// ErrInconsistentLeaf indicates a complete grid that propagation accepted
	// but fingroup rejected.
	ErrInconsistentLeaf = errors.New("generator: complete table is not a group")
)
