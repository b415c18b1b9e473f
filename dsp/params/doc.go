// Package params translates normalized UI slider values (0-100) into the
// physical units the effect stages expect (dB, Hz, linear ratios).
//
// Mappings are declarative: a physical range plus a monotonic
// interpolation curve. Mapping is deterministic and never fails; inputs
// outside [0, 100] are clamped before interpolation.
package params
