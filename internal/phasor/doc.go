// Package phasor models a sinusoidal travelling wave as a phasor sampled
// over a fixed space and time grid.
//
// A [Signal] is built from four scalars:
//
//   - magnitude: peak amplitude of v(z,t)
//   - phase: phasor angle offset in radians
//   - beta: phase constant, wavelength = 2π/beta
//   - omega: angular frequency
//
// and derives the phasor p(z), the complex space-time field p(z)·e^(jωt)
// and its real part v(z,t). Setting magnitude or phase recomputes every
// derived field before the setter returns.
//
// # Example
//
//	sig, _ := phasor.New(1, 0, 2*math.Pi, 2*math.Pi)
//	_ = sig.SetCurrentTime(0.25)
//	row := sig.CurrentPhasor()
//
// # Thread Safety
//
// Signal is NOT safe for concurrent use. Callers must serialize setters
// and reads of derived fields.
package phasor
