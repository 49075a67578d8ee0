package bond

import "fmt"

// indexErrorf wraps ErrIndexOutOfRange with the bond position, endpoint
// role, and valid range for diagnostics.
func indexErrorf(bondIdx int, role string, atomIdx, numAtoms int) error {
	return fmt.Errorf("%w: bond %d %s atom %d, want [0,%d)", ErrIndexOutOfRange, bondIdx, role, atomIdx, numAtoms)
}

// CountMixing counts homoatomic and heteroatomic bonds.
//
// For each bond the species of both endpoints are resolved through the
// species identity slice (index = atom id, value = species id); equal
// species increment Homoatomic, differing species increment Heteroatomic.
// The atom count is len(species) and the bond count len(bonds) — slice
// lengths replace the explicit size parameters of the C ancestor.
//
// Validation happens eagerly, before any counting: every bond endpoint
// must index into [0, len(species)), else ErrIndexOutOfRange is returned
// and the zero Mixing value with it. An empty table yields (0, 0).
//
// Complexity: O(len(bonds)) time, O(1) space.
func CountMixing(bonds Table, species []int) (Mixing, error) {
	if err := bonds.validate(len(species)); err != nil {
		return Mixing{}, err
	}

	var mix Mixing
	for _, b := range bonds {
		if species[b.Source] == species[b.Destination] {
			mix.Homoatomic++
		} else {
			mix.Heteroatomic++
		}
	}

	return mix, nil
}
