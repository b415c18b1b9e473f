// Package analyze computes magnitude spectra for UI visualization feeds:
// a Hann-windowed FFT over a sample window, reported in dBFS. The
// analyzer is deliberately small; it exists so the engine can hand a
// visualizer real data without owning any rendering.
package analyze
