// Package energy computes the cohesive energy of a nanoparticle from a
// per-coordination-number bond-energy table.
//
// 🚀 What is cohesive energy?
//
//	The aggregate bond energy of the system normalized per atom — the
//	Bond-Centric Model's measure of structural stability. Each bond
//	contributes
//
//	    Table[species[src]][species[dst]][coordination[src]]
//
//	and the sum over all bonds is divided by the atom count. The
//	coordination number is taken from the bond's *source* atom only;
//	this directional convention comes from the model's parameterization
//	(the lookup value for a Cu@CN6–Ag bond differs from Ag@CN12–Cu) and
//	is preserved exactly.
//
// ✨ Key features:
//   - Table — validated dense [species][species][coordination] lookup,
//     row-major flat storage, configurable shape (2×2×13 by default)
//   - Cohesive — strict bond-order accumulation for bit-exact
//     reproducibility (no compensated summation, no parallel reduction)
//   - eager validation: every index derived from caller data is checked
//     before the first addition; no partial results on failure
//   - injectable trace sink (WithTrace) dumping the table, per-atom
//     coordinations and per-bond intermediates — observational only,
//     one numeric code path traced or not
//
// ⚙️ Usage:
//
//	tbl, _ := energy.NewTable(energy.DefaultNumSpecies, energy.DefaultMaxCoordination)
//	_ = tbl.Set(0, 0, 6, -0.44901280605345778) // Au–Au @ CN 6
//
//	ce, err := energy.Cohesive(tbl, coordination, species, bonds)
//	if err != nil {
//	  // handle ErrNilTable, ErrNoAtoms, ErrLengthMismatch, ErrOutOfRange
//	}
//
// Performance:
//
//   - Time:   O(len(bonds))
//   - Memory: O(len(bonds)) for the ordered contribution buffer
//
// See example_test.go for a full worked scenario.
package energy
