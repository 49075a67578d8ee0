// Package bond: core types and sentinel errors for bond-graph tallies.
package bond

import "errors"

// Sentinel errors for bond-table validation.
var (
	// ErrIndexOutOfRange indicates a bond endpoint outside [0, numAtoms).
	ErrIndexOutOfRange = errors.New("bond: atom index out of range")

	// ErrAtomCount indicates a negative atom count.
	ErrAtomCount = errors.New("bond: atom count must be non-negative")
)

// Bond is one entry of the adjacency table: a directed pair of atom
// indices into the caller's identity and coordination arrays.
type Bond struct {
	Source      int
	Destination int
}

// Table is the bond adjacency table. It is caller-owned and read-only
// to every function in this module; ordering carries no meaning for the
// tallies (they are commutative sums over bonds) but is preserved by the
// energy accumulation for bit-exact reproducibility.
type Table []Bond

// Mixing holds the homo/heteroatomic bond counts of a system.
//
// Both counters start at zero, so Homoatomic+Heteroatomic always equals
// the number of bonds counted. (An earlier C implementation of this model
// seeded the heteroatomic slot with 1; that off-by-one baseline was a bug
// and is deliberately not reproduced.)
type Mixing struct {
	Homoatomic   int
	Heteroatomic int
}

// validate checks that every bond endpoint indexes into [0, numAtoms).
// Returns ErrIndexOutOfRange on the first violation.
func (t Table) validate(numAtoms int) error {
	for i, b := range t {
		if b.Source < 0 || b.Source >= numAtoms {
			return indexErrorf(i, "source", b.Source, numAtoms)
		}
		if b.Destination < 0 || b.Destination >= numAtoms {
			return indexErrorf(i, "destination", b.Destination, numAtoms)
		}
	}

	return nil
}
