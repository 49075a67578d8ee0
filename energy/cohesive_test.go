package energy_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/bcmodel/bond"
	"github.com/katalvlaran/bcmodel/energy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFilledTable returns a 2×2×13 table with distinct, reproducible
// entries so lookups at wrong indices cannot accidentally match.
func newFilledTable(t *testing.T) *energy.Table {
	t.Helper()
	tbl, err := energy.NewTable(energy.DefaultNumSpecies, energy.DefaultMaxCoordination)
	require.NoError(t, err)
	for src := 0; src < tbl.NumSpecies(); src++ {
		for dst := 0; dst < tbl.NumSpecies(); dst++ {
			for cn := 0; cn < tbl.MaxCoordination(); cn++ {
				v := -float64(src*100+dst*10+cn) / 7.0
				require.NoError(t, tbl.Set(src, dst, cn, v))
			}
		}
	}

	return tbl
}

// TestCohesive_ConcreteScenario pins the canonical three-atom system:
// identities [0,0,1], bonds (0,1) and (1,2), coordinations [1,2,1].
// Expected energy: (tbl[0][0][1] + tbl[0][1][2]) / 3.
func TestCohesive_ConcreteScenario(t *testing.T) {
	tbl := newFilledTable(t)
	species := []int{0, 0, 1}
	coordination := []int{1, 2, 1}
	bonds := bond.Table{{Source: 0, Destination: 1}, {Source: 1, Destination: 2}}

	e00c1, err := tbl.At(0, 0, 1)
	require.NoError(t, err)
	e01c2, err := tbl.At(0, 1, 2)
	require.NoError(t, err)

	ce, err := energy.Cohesive(tbl, coordination, species, bonds)
	require.NoError(t, err)
	assert.InDelta(t, (e00c1+e01c2)/3.0, ce, 1e-15)
}

// TestCohesive_NoBonds returns exactly zero for any positive atom count.
func TestCohesive_NoBonds(t *testing.T) {
	tbl := newFilledTable(t)

	ce, err := energy.Cohesive(tbl, []int{3, 4}, []int{0, 1}, bond.Table{})
	require.NoError(t, err)
	assert.Zero(t, ce)
}

// TestCohesive_SourceCoordinationOnly pins the model's directional
// convention: only the source atom's coordination indexes the table.
func TestCohesive_SourceCoordinationOnly(t *testing.T) {
	tbl := newFilledTable(t)
	species := []int{0, 1}
	bonds := bond.Table{{Source: 0, Destination: 1}}

	// Changing the destination's coordination must not move the result.
	ceA, err := energy.Cohesive(tbl, []int{5, 1}, species, bonds)
	require.NoError(t, err)
	ceB, err := energy.Cohesive(tbl, []int{5, 12}, species, bonds)
	require.NoError(t, err)
	assert.Equal(t, ceA, ceB, "destination coordination must be ignored")

	// Changing the source's coordination must.
	ceC, err := energy.Cohesive(tbl, []int{6, 1}, species, bonds)
	require.NoError(t, err)
	assert.NotEqual(t, ceA, ceC, "source coordination must select the table row")
}

// TestCohesive_LinearInTable verifies that scaling every table entry by
// k scales the result by k.
func TestCohesive_LinearInTable(t *testing.T) {
	tbl := newFilledTable(t)
	rng := rand.New(rand.NewSource(3))
	const numAtoms, numBonds = 40, 200

	species := make([]int, numAtoms)
	coordination := make([]int, numAtoms)
	for i := range species {
		species[i] = rng.Intn(2)
		coordination[i] = rng.Intn(13)
	}
	bonds := make(bond.Table, numBonds)
	for i := range bonds {
		bonds[i] = bond.Bond{Source: rng.Intn(numAtoms), Destination: rng.Intn(numAtoms)}
	}

	ce, err := energy.Cohesive(tbl, coordination, species, bonds)
	require.NoError(t, err)

	const k = 2.5
	scaled := tbl.Clone()
	scaled.Scale(k)
	ceScaled, err := energy.Cohesive(scaled, coordination, species, bonds)
	require.NoError(t, err)
	assert.InDelta(t, k*ce, ceScaled, 1e-12*absOf(ceScaled))
}

// absOf returns |x| with a floor of 1 so InDelta tolerances stay sane
// near zero.
func absOf(x float64) float64 {
	if x < 0 {
		x = -x
	}
	if x < 1 {
		return 1
	}

	return x
}

// TestCohesive_CoordinationBoundary accepts cn = MaxCoordination-1 and
// rejects cn = MaxCoordination with ErrOutOfRange.
func TestCohesive_CoordinationBoundary(t *testing.T) {
	tbl := newFilledTable(t)
	species := []int{0, 0}
	bonds := bond.Table{{Source: 0, Destination: 1}}

	want, err := tbl.At(0, 0, 12)
	require.NoError(t, err)

	ce, err := energy.Cohesive(tbl, []int{12, 0}, species, bonds)
	require.NoError(t, err, "cn = 12 is the last valid slot")
	assert.InDelta(t, want/2.0, ce, 1e-15)

	_, err = energy.Cohesive(tbl, []int{13, 0}, species, bonds)
	assert.ErrorIs(t, err, energy.ErrOutOfRange, "cn = 13 is past the table edge")
}

// TestCohesive_InputValidation covers the remaining error taxonomy.
func TestCohesive_InputValidation(t *testing.T) {
	tbl := newFilledTable(t)
	bonds := bond.Table{{Source: 0, Destination: 1}}

	_, err := energy.Cohesive(nil, []int{1, 1}, []int{0, 1}, bonds)
	assert.ErrorIs(t, err, energy.ErrNilTable)

	_, err = energy.Cohesive(tbl, []int{}, []int{}, bond.Table{})
	assert.ErrorIs(t, err, energy.ErrNoAtoms, "zero atoms would divide by zero")

	_, err = energy.Cohesive(tbl, []int{1}, []int{0, 1}, bonds)
	assert.ErrorIs(t, err, energy.ErrLengthMismatch)

	_, err = energy.Cohesive(tbl, []int{1, 1}, []int{0, 1}, bond.Table{{Source: 0, Destination: 2}})
	assert.ErrorIs(t, err, energy.ErrOutOfRange, "bond endpoint beyond atom count")

	_, err = energy.Cohesive(tbl, []int{1, 1}, []int{0, 2}, bonds)
	assert.ErrorIs(t, err, energy.ErrOutOfRange, "species id beyond table axis")

	_, err = energy.Cohesive(tbl, []int{1, 1}, []int{0, -1}, bonds)
	assert.ErrorIs(t, err, energy.ErrOutOfRange, "negative species id")
}

// TestCohesive_TraceDoesNotChangeResult runs the same system with and
// without a sink and demands bit-identical results, plus the expected
// sections in the trace output.
func TestCohesive_TraceDoesNotChangeResult(t *testing.T) {
	tbl := newFilledTable(t)
	species := []int{0, 0, 1}
	coordination := []int{1, 2, 1}
	bonds := bond.Table{{Source: 0, Destination: 1}, {Source: 1, Destination: 2}}

	plain, err := energy.Cohesive(tbl, coordination, species, bonds)
	require.NoError(t, err)

	var buf bytes.Buffer
	traced, err := energy.Cohesive(tbl, coordination, species, bonds, energy.WithTrace(&buf))
	require.NoError(t, err)
	assert.Equal(t, plain, traced, "tracing must be purely observational")

	out := buf.String()
	assert.Contains(t, out, "bond-energy table:")
	assert.Contains(t, out, "atom 0: coordination 1")
	assert.Contains(t, out, "bond 1: species (0,1), cn 2")
	assert.Equal(t, 1, strings.Count(out, "dividing by 3 atoms"))
}

// TestCohesive_OnBondHook sees every contribution in bond order.
func TestCohesive_OnBondHook(t *testing.T) {
	tbl := newFilledTable(t)
	species := []int{0, 0, 1}
	coordination := []int{1, 2, 1}
	bonds := bond.Table{{Source: 0, Destination: 1}, {Source: 1, Destination: 2}}

	var order []int
	var sum float64
	ce, err := energy.Cohesive(tbl, coordination, species, bonds,
		energy.WithOnBond(func(i int, contribution float64) {
			order = append(order, i)
			sum += contribution
		}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, order)
	assert.InDelta(t, sum/3.0, ce, 1e-15)
}
