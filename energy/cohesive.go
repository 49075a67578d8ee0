package energy

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/bcmodel/bond"
)

// Cohesive — Bond-Centric Model cohesive energy.
//
// Description:
//
//	Sums per-bond energy contributions from the lookup table and
//	normalizes by atom count, yielding energy per atom (eV/atom with
//	the reference parameterization).
//
// Algorithm Outline:
//  1. Resolve options; numAtoms = len(species), numBonds = len(bonds).
//  2. Validate everything eagerly: table non-nil, numAtoms > 0,
//     len(coordination) == numAtoms, and for every bond — endpoints in
//     [0, numAtoms), both species in [0, tbl.NumSpecies()), source
//     coordination in [0, tbl.MaxCoordination()).
//  3. For each bond i in order:
//     contribution[i] = tbl[species[src]][species[dst]][coordination[src]]
//     (the destination atom's coordination is never consulted — the
//     model's lookup values are parameterized per directed pair).
//  4. Return sum(contribution) / numAtoms.
//
// Numeric semantics:
//
//	Contributions are buffered in bond order and reduced left-to-right
//	(floats.Sum), so results are bit-exact across runs and across
//	traced/untraced calls. No compensated summation.
//
// Errors:
//   - ErrNilTable       — tbl is nil.
//   - ErrNoAtoms        — len(species) == 0 (normalization would divide by zero).
//   - ErrLengthMismatch — len(coordination) != len(species).
//   - ErrOutOfRange     — any bond endpoint, species id, or coordination
//     outside table bounds; detected before any accumulation.
//
// Complexity:
//
//	Time   = O(numBonds)
//	Memory = O(numBonds)
func Cohesive(tbl *Table, coordination []int, species []int, bonds bond.Table, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if tbl == nil {
		return 0, ErrNilTable
	}
	numAtoms := len(species)
	if numAtoms == 0 {
		return 0, ErrNoAtoms
	}
	if len(coordination) != numAtoms {
		return 0, fmt.Errorf("%w: %d coordination numbers for %d atoms", ErrLengthMismatch, len(coordination), numAtoms)
	}
	if err := validateBonds(tbl, coordination, species, bonds); err != nil {
		return 0, err
	}

	if o.Trace != nil {
		traceHeader(o.Trace, tbl, coordination)
	}

	// Ordered contribution buffer; indices were validated above, so the
	// unchecked table read is safe.
	contributions := make([]float64, len(bonds))
	for i, b := range bonds {
		srcSpecies, dstSpecies := species[b.Source], species[b.Destination]
		cn := coordination[b.Source]
		contributions[i] = tbl.at(srcSpecies, dstSpecies, cn)

		o.OnBond(i, contributions[i])
		if o.Trace != nil {
			// best-effort: write errors never abort the computation
			fmt.Fprintf(o.Trace, "bond %d: species (%d,%d), cn %d, energy %f\n",
				i, srcSpecies, dstSpecies, cn, contributions[i])
		}
	}

	ce := floats.Sum(contributions) / float64(numAtoms)
	if o.Trace != nil {
		fmt.Fprintf(o.Trace, "dividing by %d atoms, resulting in %f\n", numAtoms, ce)
	}

	return ce, nil
}

// validateBonds checks every caller-derived index the accumulation pass
// will use. Returns ErrOutOfRange (wrapped with the bond position) on
// the first violation; on error no bond has been accumulated.
func validateBonds(tbl *Table, coordination []int, species []int, bonds bond.Table) error {
	numAtoms := len(species)
	for i, b := range bonds {
		if b.Source < 0 || b.Source >= numAtoms {
			return fmt.Errorf("%w: bond %d source atom %d, want [0,%d)", ErrOutOfRange, i, b.Source, numAtoms)
		}
		if b.Destination < 0 || b.Destination >= numAtoms {
			return fmt.Errorf("%w: bond %d destination atom %d, want [0,%d)", ErrOutOfRange, i, b.Destination, numAtoms)
		}
		if s := species[b.Source]; s < 0 || s >= tbl.species {
			return fmt.Errorf("%w: bond %d source species %d, want [0,%d)", ErrOutOfRange, i, s, tbl.species)
		}
		if s := species[b.Destination]; s < 0 || s >= tbl.species {
			return fmt.Errorf("%w: bond %d destination species %d, want [0,%d)", ErrOutOfRange, i, s, tbl.species)
		}
		if cn := coordination[b.Source]; cn < 0 || cn >= tbl.maxCN {
			return fmt.Errorf("%w: bond %d coordination %d, want [0,%d)", ErrOutOfRange, i, cn, tbl.maxCN)
		}
	}

	return nil
}

// traceHeader dumps the full bond-energy table and per-atom coordination
// numbers to w. Best-effort; write errors are ignored.
func traceHeader(w io.Writer, tbl *Table, coordination []int) {
	fmt.Fprintln(w, "bond-energy table:")
	for src := 0; src < tbl.species; src++ {
		for dst := 0; dst < tbl.species; dst++ {
			for cn := 0; cn < tbl.maxCN; cn++ {
				fmt.Fprintf(w, "  (%d,%d) cn %d: %f\n", src, dst, cn, tbl.at(src, dst, cn))
			}
		}
	}
	for i, cn := range coordination {
		fmt.Fprintf(w, "atom %d: coordination %d\n", i, cn)
	}
}
