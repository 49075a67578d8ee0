// Package bond defines the caller-owned bond adjacency table and the
// integer tallies computed over it: homo/heteroatomic bond mixing and
// per-atom coordination numbers.
//
// 🚀 What is a bond table?
//
//	An explicit list of bonded atom-index pairs defining the bond graph
//	of a nanoparticle. The table is supplied by the caller (typically
//	from a neighbor-list builder upstream); this package never constructs
//	it and never mutates it.
//
// ✨ Key operations:
//   - CountMixing   — homoatomic vs heteroatomic bond counts
//   - Coordination  — per-atom bond counts (bincount of bond sources),
//     the index into the bond-energy table's third dimension
//
// ⚙️ Usage:
//
//	bonds := bond.Table{{0, 1}, {1, 2}}
//	mix, err := bond.CountMixing(bonds, []int{0, 0, 1})
//	if err != nil {
//	  // handle ErrIndexOutOfRange
//	}
//	// mix.Homoatomic == 1, mix.Heteroatomic == 1
//
// All indices derived from caller data are validated before any counting;
// malformed input surfaces as a sentinel error, never a panic or a silent
// out-of-bounds read.
//
// Complexity: every operation is a single O(len(bonds)) pass.
package bond
