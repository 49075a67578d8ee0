package bond

import "fmt"

// Coordination derives per-atom coordination numbers from the bond table
// by counting how many bonds originate at each atom (a bincount of bond
// sources). For the symmetric tables produced by neighbor-list builders —
// every bond listed in both directions — this equals the number of
// neighbors of each atom.
//
// The result indexes the third dimension of an energy.Table. Atoms with
// no bonds get coordination 0.
//
// Returns ErrAtomCount if numAtoms is negative, ErrIndexOutOfRange if a
// bond endpoint falls outside [0, numAtoms).
//
// Complexity: O(numAtoms + len(bonds)).
func Coordination(numAtoms int, bonds Table) ([]int, error) {
	if numAtoms < 0 {
		return nil, fmt.Errorf("%w: %d", ErrAtomCount, numAtoms)
	}
	if err := bonds.validate(numAtoms); err != nil {
		return nil, err
	}

	cn := make([]int, numAtoms)
	for _, b := range bonds {
		cn[b.Source]++
	}

	return cn, nil
}
