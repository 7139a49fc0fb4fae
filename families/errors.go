package families

import "errors"

// ErrTooSmall indicates a family parameter below the allowed minimum.
var ErrTooSmall = errors.New("families: parameter too small")

// ErrTooLarge indicates a family parameter whose table would not be practical
// to materialize (Symmetric above MaxSymmetricDegree).
var ErrTooLarge = errors.New("families: parameter too large")
