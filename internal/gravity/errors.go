package gravity

import (
	"errors"
	"fmt"
)

// Domain errors for force evaluation.
var (
	// ErrSingular indicates two bodies closer than the softening length.
	ErrSingular = errors.New("gravity: separation below softening length")

	// ErrDimensionMismatch indicates positions and masses of unequal length.
	ErrDimensionMismatch = errors.New("gravity: positions and masses length mismatch")
)

// SeparationError reports the offending distance when a pair of bodies
// falls inside the softening length.
type SeparationError struct {
	Dist      float64
	Softening float64
}

func (e *SeparationError) Error() string {
	return fmt.Sprintf("gravity: separation %.6e below softening length %.6e", e.Dist, e.Softening)
}

func (e *SeparationError) Unwrap() error {
	return ErrSingular
}
