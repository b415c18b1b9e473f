package params

import (
	"math"

	"github.com/cwbudde/algo-audioedit/dsp/core"
)

// NormalizedMin and NormalizedMax bound the UI-facing parameter scale.
const (
	NormalizedMin = 0.0
	NormalizedMax = 100.0
)

// Curve selects the interpolation shape between Min and Max.
// All curves are monotonic.
type Curve int

const (
	// CurveLinear interpolates proportionally.
	CurveLinear Curve = iota
	// CurveSquared emphasizes the lower range; suited to perceptual
	// gain amounts where early slider travel should act gently.
	CurveSquared
	// CurveExponential interpolates geometrically between Min and Max;
	// suited to frequency-like parameters. Requires Min > 0 and falls
	// back to linear otherwise.
	CurveExponential
)

// String returns the curve name.
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveSquared:
		return "squared"
	case CurveExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// Mapping declares how a normalized 0-100 value maps onto a physical range.
type Mapping struct {
	Min   float64
	Max   float64
	Curve Curve
}

// Map converts a normalized 0-100 value into the physical unit of the
// mapping. The input is clamped to [0, 100] first; Map(0) == Min and
// Map(100) == Max exactly. Non-finite inputs map to Min.
func (m Mapping) Map(value float64) float64 {
	if !core.IsFinite(value) {
		return m.Min
	}

	t := core.Clamp(value, NormalizedMin, NormalizedMax) / NormalizedMax

	switch {
	case t == 0:
		return m.Min
	case t == 1:
		return m.Max
	}

	switch m.Curve {
	case CurveSquared:
		t = t * t
	case CurveExponential:
		if m.Min > 0 && m.Max > 0 {
			return m.Min * math.Pow(m.Max/m.Min, t)
		}
	}

	return m.Min + (m.Max-m.Min)*t
}

// Normalize is the inverse of Map for linear mappings: it converts a
// physical value back to the 0-100 scale, clamped to the valid range.
// Degenerate mappings (Min == Max) normalize to 0.
func (m Mapping) Normalize(physical float64) float64 {
	if m.Max == m.Min {
		return NormalizedMin
	}

	t := (physical - m.Min) / (m.Max - m.Min)

	return core.Clamp(t*NormalizedMax, NormalizedMin, NormalizedMax)
}
