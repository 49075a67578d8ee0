// Package thermo derives mixing thermodynamics from the Bond-Centric
// Model cohesive energy: excess energy, entropy of mixing, and free
// energy of mixing.
//
// 🚀 What do these quantities mean?
//
//	Excess energy compares a particle's cohesive energy against the
//	composition-weighted average of the pure-element particles with the
//	same geometry:
//
//	    EE = CE(ordering) − Σ_s x_s · CE(all atoms species s)
//
//	A negative EE means mixing is energetically favorable. Entropy of
//	mixing is the ideal-solution term −k_B·Σ x·ln x, and the free energy
//	of mixing combines both at a temperature T:
//
//	    ΔG_mix = EE − T·S_mix
//
// All quantities are per atom; with the reference parameterization the
// energies are in eV/atom and S_mix in eV/(K·atom).
//
// ⚙️ Usage:
//
//	ee, err := thermo.ExcessEnergy(tbl, coordination, species, bonds)
//	g, err := thermo.MixingFreeEnergy(tbl, coordination, species, bonds, thermo.RoomTemperature)
//
// Like the rest of the module, everything here is stateless and pure;
// validation errors from the underlying cohesive-energy calculator
// propagate unchanged and are matchable with errors.Is.
package thermo
