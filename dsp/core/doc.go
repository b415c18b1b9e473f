// Package core provides small numeric and slice helpers shared by the DSP
// packages: range clamping, dB/linear conversion, and bounded slice
// copying. It has no dependencies.
package core
