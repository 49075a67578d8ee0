package ident

import (
	"errors"
	"fmt"
)

// ErrNotDigit indicates a species label outside '0'..'9'.
var ErrNotDigit = errors.New("ident: label is not a decimal digit")

// ParseDigit converts a single decimal-digit rune to its integer value.
// Returns ErrNotDigit for any rune outside '0'..'9'.
//
// Complexity: O(1).
func ParseDigit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: %q", ErrNotDigit, r)
	}

	return int(r - '0'), nil
}

// ParseOrdering decodes a chemical-ordering string, one decimal digit per
// atom, into a species-identity slice (index = atom id, value = species id).
// An empty string yields an empty, non-nil slice.
// Returns ErrNotDigit (with the offending position) on the first bad rune.
//
// Complexity: O(len(s)).
func ParseOrdering(s string) ([]int, error) {
	species := make([]int, 0, len(s))
	for i, r := range s {
		v, err := ParseDigit(r)
		if err != nil {
			return nil, fmt.Errorf("ident: position %d: %w", i, err)
		}
		species = append(species, v)
	}

	return species, nil
}
