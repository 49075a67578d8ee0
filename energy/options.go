// Package energy provides tunable options for the cohesive-energy
// calculator.
package energy

import "io"

// Option configures Cohesive behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize a Cohesive call.
//
// Tracing never branches the numeric logic: contributions are computed
// identically with or without a sink, and trace write failures are
// ignored (best-effort diagnostics, independent of the result path).
type Options struct {
	// Trace, when non-nil, receives a dump of the bond-energy table,
	// the per-atom coordination numbers, and per-bond intermediate
	// values as the accumulation proceeds.
	Trace io.Writer

	// OnBond is called after each bond's contribution is computed,
	// with the bond position and its energy. Useful for hooking custom
	// instrumentation without parsing trace output.
	OnBond func(i int, contribution float64)
}

// DefaultOptions returns Options with sane defaults:
//   - no trace sink
//   - no-op OnBond hook
func DefaultOptions() Options {
	return Options{
		Trace:  nil,
		OnBond: func(int, float64) {},
	}
}

// WithTrace directs verbose diagnostics to w. A nil w leaves tracing off.
func WithTrace(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Trace = w
		}
	}
}

// WithOnBond registers a callback invoked per bond with its computed
// contribution, in bond order.
func WithOnBond(fn func(i int, contribution float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBond = fn
		}
	}
}
