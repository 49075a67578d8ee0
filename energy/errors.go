package energy

import "errors"

// Sentinel errors for table construction, access, and the cohesive-energy
// calculator. All public entry points return these (possibly wrapped with
// fmt.Errorf("...: %w", ErrX)); callers match with errors.Is. No function
// in this package panics on user input.
var (
	// ErrBadShape is returned when a requested table shape is invalid
	// (numSpecies <= 0 or maxCoordination <= 0).
	ErrBadShape = errors.New("energy: invalid table shape")

	// ErrOutOfRange indicates that a species id, coordination number, or
	// bond endpoint derived from caller data falls outside valid bounds.
	ErrOutOfRange = errors.New("energy: index out of range")

	// ErrNilTable indicates a nil *Table was passed to a calculator.
	ErrNilTable = errors.New("energy: table is nil")

	// ErrNoAtoms indicates an empty species slice; the per-atom
	// normalization would divide by zero.
	ErrNoAtoms = errors.New("energy: system must contain at least one atom")

	// ErrLengthMismatch indicates coordination and species slices of
	// differing lengths (both are indexed by atom id).
	ErrLengthMismatch = errors.New("energy: coordination and species lengths differ")
)
