// Package biquad implements second-order IIR filter sections (biquads)
// using the Direct Form II Transposed topology, with live coefficient
// updates for smoothly automated filters.
package biquad
