// Package ident decodes chemical-species identity labels at the caller
// boundary.
//
// Drivers (Monte Carlo shufflers, genetic-algorithm optimizers) commonly
// marshal a chemical ordering as a string of decimal digits, one digit per
// atom ("0101…" for a two-species particle). ParseDigit converts a single
// label rune, ParseOrdering converts a whole ordering string into the
// identity slice consumed by bond and energy.
//
// ⚙️ Usage:
//
//	species, err := ident.ParseOrdering("0011")
//	if err != nil {
//	  // handle ErrNotDigit
//	}
//	// species == []int{0, 0, 1, 1}
//
// Non-digit input is rejected with ErrNotDigit; there is no undefined
// fast path.
package ident
