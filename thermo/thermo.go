package thermo

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bcmodel/bond"
	"github.com/katalvlaran/bcmodel/energy"
)

// Physical constants.
const (
	// Boltzmann is k_B in eV/K (CODATA, as used by the reference
	// parameterization's unit system).
	Boltzmann = 8.617333262e-5

	// RoomTemperature is the conventional default for MixingFreeEnergy,
	// in Kelvin.
	RoomTemperature = 298.15
)

// Sentinel errors for composition analysis.
var (
	// ErrNoAtoms indicates an empty species slice.
	ErrNoAtoms = errors.New("thermo: system must contain at least one atom")

	// ErrSpeciesOutOfRange indicates a negative species id; fractions
	// cannot be tallied for it.
	ErrSpeciesOutOfRange = errors.New("thermo: species id out of range")
)

// ExcessEnergy computes the excess energy (per atom) of a chemical
// ordering: the particle's cohesive energy minus the composition-weighted
// cohesive energies of the pure-element particles on the same bond graph
// and coordination environment.
//
// Species with zero population contribute nothing and their pure-element
// energy is skipped. Validation is delegated to energy.Cohesive; its
// sentinel errors propagate unchanged.
//
// Complexity: O(numSpecies · len(bonds)).
func ExcessEnergy(tbl *energy.Table, coordination []int, species []int, bonds bond.Table) (float64, error) {
	ee, err := energy.Cohesive(tbl, coordination, species, bonds)
	if err != nil {
		return 0, err
	}

	fractions, err := compositionFractions(species, tbl.NumSpecies())
	if err != nil {
		return 0, err
	}

	mono := make([]int, len(species))
	for s, x := range fractions {
		if x == 0 {
			continue
		}
		for i := range mono {
			mono[i] = s
		}
		ceMono, err := energy.Cohesive(tbl, coordination, mono, bonds)
		if err != nil {
			return 0, err
		}
		ee -= x * ceMono
	}

	return ee, nil
}

// MixingEntropy computes the ideal entropy of mixing, −k_B·Σ x·ln x, in
// eV/(K·atom). Zero-population species are skipped (lim x→0 of x·ln x
// is 0). Returns ErrNoAtoms for an empty system, ErrSpeciesOutOfRange
// for a negative species id.
//
// Complexity: O(len(species)).
func MixingEntropy(species []int) (float64, error) {
	numSpecies := 0
	for _, s := range species {
		if s >= numSpecies {
			numSpecies = s + 1
		}
	}
	fractions, err := compositionFractions(species, numSpecies)
	if err != nil {
		return 0, err
	}

	// stat.Entropy already treats x==0 as contributing nothing.
	return Boltzmann * stat.Entropy(fractions), nil
}

// MixingFreeEnergy computes ΔG_mix = ExcessEnergy − T·MixingEntropy at
// temperature T (Kelvin), in eV/atom.
//
// Complexity: O(numSpecies · len(bonds) + len(species)).
func MixingFreeEnergy(tbl *energy.Table, coordination []int, species []int, bonds bond.Table, temperature float64) (float64, error) {
	ee, err := ExcessEnergy(tbl, coordination, species, bonds)
	if err != nil {
		return 0, err
	}
	smix, err := MixingEntropy(species)
	if err != nil {
		return 0, err
	}

	return ee - temperature*smix, nil
}

// compositionFractions tallies the atom fraction of each species id in
// [0, numSpecies). Empty input is ErrNoAtoms; a negative id is
// ErrSpeciesOutOfRange. Ids at or above numSpecies are the caller's
// bounds problem and surface from energy.Cohesive before this runs.
func compositionFractions(species []int, numSpecies int) ([]float64, error) {
	if len(species) == 0 {
		return nil, ErrNoAtoms
	}

	counts := make([]int, numSpecies)
	for i, s := range species {
		if s < 0 || s >= numSpecies {
			return nil, fmt.Errorf("%w: atom %d has species %d, want [0,%d)", ErrSpeciesOutOfRange, i, s, numSpecies)
		}
		counts[s]++
	}

	fractions := make([]float64, numSpecies)
	total := float64(len(species))
	for s, c := range counts {
		fractions[s] = float64(c) / total
	}

	return fractions, nil
}
