// Package bcmodel is a small, embeddable numeric kernel for the
// Bond-Centric Model (BCM) of nanoparticle energetics — counting bond
// mixing and computing cohesive energy over a caller-supplied bond graph.
//
// 🚀 What is bcmodel?
//
//	A stateless, thread-safe library meant to be driven by a larger
//	modeling tool (Monte Carlo shufflers, structure optimizers):
//	  • bond/   — adjacency table, homo/heteroatomic bond counting,
//	    per-atom coordination numbers
//	  • energy/ — validated [species][species][coordination] bond-energy
//	    table and the cohesive-energy calculator
//	  • thermo/ — excess energy, entropy of mixing, free energy of mixing
//	  • ident/  — species-label decoding at the caller boundary
//
// ✨ Why choose bcmodel?
//
//   - Pure computation – no I/O, no globals, no state between calls
//   - Rock-solid bounds – every caller-derived index is validated up
//     front and surfaced as a sentinel error, never a panic
//   - Deterministic – strict bond-order accumulation, bit-exact across runs
//   - Observable – injectable trace sink for per-bond intermediates,
//     with a single numeric code path traced or not
//
// Every invocation is independent: inputs are read-only to the kernel
// and outputs are caller-owned, so calls may be parallelized freely
// across atom systems without synchronization.
//
// Quick ASCII example:
//
//	    (0)───(1)───(2)        identities [0, 0, 1]
//	     Cu    Cu    Ag        bonds [(0,1), (1,2)]
//
//	yields 1 homoatomic and 1 heteroatomic bond.
//
//	go get github.com/katalvlaran/bcmodel
package bcmodel
