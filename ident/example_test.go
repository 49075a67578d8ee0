package ident_test

import (
	"fmt"

	"github.com/katalvlaran/bcmodel/ident"
)

// ExampleParseOrdering decodes the chemical ordering of a four-atom
// bimetallic particle from its string form.
func ExampleParseOrdering() {
	species, err := ident.ParseOrdering("0011")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(species)
	// Output:
	// [0 0 1 1]
}
