// Package energy: Table is a concrete, row-major implementation of the
// bond-energy lookup, storing elements in a flat slice for performance
// and cache friendliness.
package energy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Reference shape of the Bond-Centric Model parameterization: two
// species, coordination numbers 0..12. NewTable accepts any positive
// shape; these are defaults, not limits.
const (
	// DefaultNumSpecies is the species count of the reference tables.
	DefaultNumSpecies = 2

	// DefaultMaxCoordination bounds the coordination dimension; FCC
	// metals max out at 12 nearest neighbors, so valid CNs are 0..12.
	DefaultMaxCoordination = 13
)

// tableErrorf wraps an underlying error with Table method context.
func tableErrorf(method string, src, dst, cn int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d,%d): %w", method, src, dst, cn, err)
}

// Table is a dense [numSpecies][numSpecies][maxCoordination] bond-energy
// lookup. data holds numSpecies*numSpecies*maxCoordination elements in
// row-major order: offset = (src*numSpecies + dst)*maxCoordination + cn.
//
// A Table is populated once by the caller and read-only to the
// calculators; it carries its own shape, so loop bounds never depend on
// package-level constants.
type Table struct {
	species int       // species count per axis
	maxCN   int       // coordination slots per species pair
	data    []float64 // flat backing storage, length == species*species*maxCN
}

// NewTable creates a numSpecies×numSpecies×maxCoordination Table
// initialized to zeros.
// Stage 1 (Validate): ensure both dimensions > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Table or ErrBadShape.
// Complexity: O(numSpecies²·maxCoordination) time and memory.
func NewTable(numSpecies, maxCoordination int) (*Table, error) {
	if numSpecies <= 0 || maxCoordination <= 0 {
		return nil, fmt.Errorf("%w: %d species, %d coordination slots", ErrBadShape, numSpecies, maxCoordination)
	}
	data := make([]float64, numSpecies*numSpecies*maxCoordination)

	return &Table{species: numSpecies, maxCN: maxCoordination, data: data}, nil
}

// NumSpecies returns the species count per axis.
// Complexity: O(1).
func (t *Table) NumSpecies() int {
	return t.species
}

// MaxCoordination returns the size of the coordination dimension; valid
// coordination numbers are 0..MaxCoordination()-1.
// Complexity: O(1).
func (t *Table) MaxCoordination() int {
	return t.maxCN
}

// indexOf computes the flat index for (src, dst, cn) or returns
// ErrOutOfRange.
// Complexity: O(1).
func (t *Table) indexOf(method string, src, dst, cn int) (int, error) {
	if src < 0 || src >= t.species || dst < 0 || dst >= t.species {
		return 0, tableErrorf(method, src, dst, cn, ErrOutOfRange)
	}
	if cn < 0 || cn >= t.maxCN {
		return 0, tableErrorf(method, src, dst, cn, ErrOutOfRange)
	}

	return (src*t.species+dst)*t.maxCN + cn, nil
}

// At retrieves the energy of a src→dst bond at the source atom's
// coordination number cn.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (t *Table) At(src, dst, cn int) (float64, error) {
	idx, err := t.indexOf("At", src, dst, cn)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Set assigns energy v for a src→dst bond at coordination cn.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (t *Table) Set(src, dst, cn int, v float64) error {
	idx, err := t.indexOf("Set", src, dst, cn)
	if err != nil {
		return err
	}
	t.data[idx] = v

	return nil
}

// at reads without bounds checks. Callers must have validated indices;
// Cohesive does so for the whole bond list before its accumulation pass.
func (t *Table) at(src, dst, cn int) float64 {
	return t.data[(t.species*src+dst)*t.maxCN+cn]
}

// Clone returns a deep copy of the Table.
// Complexity: O(len(data)) time and memory.
func (t *Table) Clone() *Table {
	copyData := make([]float64, len(t.data))
	copy(copyData, t.data)

	return &Table{species: t.species, maxCN: t.maxCN, data: copyData}
}

// Scale multiplies every entry by k in place. Cohesive energy is linear
// in the table, so scaling the table by k scales every computed energy
// by k — handy for unit conversion (eV ↔ kJ/mol) and sensitivity sweeps.
// Complexity: O(len(data)).
func (t *Table) Scale(k float64) {
	floats.Scale(k, t.data)
}
