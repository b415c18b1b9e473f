// Package design computes biquad coefficients for the parametric filter
// shapes used by the effect stages: RBJ-cookbook lowpass, highpass,
// peaking EQ, and low/high shelves.
//
// Degenerate inputs (non-finite values, frequencies outside (0, Nyquist))
// yield pass-through coefficients rather than an error, so automated
// parameter sweeps can never produce a broken filter.
package design
