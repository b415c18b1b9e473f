package node

import (
	"math"

	"github.com/cwbudde/algo-audioedit/dsp/core"
)

const defaultSpatialRateHz = 0.125

// Spatializer creates the bilateral "8D" motion effect by sweeping the
// stereo image left and right with a slow LFO. Gains follow an
// equal-power law with center-unity compensation, so the summed power
// stays constant over the sweep. The amount maps onto pan depth (0..1);
// the tuning frequency axis sets the rotation rate (0.05..0.5 Hz).
//
// The stage requires stereo material; mono blocks pass through unchanged.
type Spatializer struct {
	sampleRate float64

	depth ramp
	rate  ramp

	phase    float64
	disposed bool
}

// NewSpatializer creates a neutral (zero-depth) spatializer.
// Construction never fails.
func NewSpatializer(sampleRate float64) *Spatializer {
	return &Spatializer{
		sampleRate: sanitizeSampleRate(sampleRate),
		depth:      newRamp(0),
		rate:       newRamp(defaultSpatialRateHz),
	}
}

// Name returns the stage name.
func (s *Spatializer) Name() string { return NameSpatialization }

// SetAmount ramps the pan depth toward the mapped target.
func (s *Spatializer) SetAmount(value, transitionSeconds float64) {
	if s.disposed {
		return
	}

	s.depth.setTarget(SpatialDepth.Map(value), sanitizeTransition(transitionSeconds), s.sampleRate)
}

// SetTuning ramps the rotation rate; the q axis is unused by this stage.
func (s *Spatializer) SetTuning(freq, _, transitionSeconds float64) {
	if s.disposed {
		return
	}

	if core.IsFinite(freq) && freq > 0 {
		target := core.Clamp(freq, SpatialRate.Min, SpatialRate.Max)
		s.rate.setTarget(target, sanitizeTransition(transitionSeconds), s.sampleRate)
	}
}

// ProcessBlock applies the pan sweep in-place. The LFO phase advances
// continuously so depth changes never snap the image position.
func (s *Spatializer) ProcessBlock(left, right []float64) {
	if s.disposed || len(left) == 0 || right == nil {
		return
	}

	n := min(len(left), len(right))

	for start := 0; start < n; start += controlInterval {
		end := min(start+controlInterval, n)

		depth := s.depth.advance(end - start)
		rate := s.rate.advance(end - start)
		step := 2 * math.Pi * rate / s.sampleRate

		if depth == 0 && !s.depth.active() {
			// Keep the LFO running so re-engaging resumes mid-sweep.
			s.phase += step * float64(end-start)
			continue
		}

		for i := start; i < end; i++ {
			pan := depth * math.Sin(s.phase)
			theta := (pan + 1) * math.Pi / 4
			sin, cos := math.Sincos(theta)

			left[i] *= math.Sqrt2 * cos
			right[i] *= math.Sqrt2 * sin

			s.phase += step
		}
	}

	if s.phase >= 2*math.Pi {
		s.phase = math.Mod(s.phase, 2*math.Pi)
	}
}

// Reset returns the LFO to phase zero without touching parameter targets.
func (s *Spatializer) Reset() {
	if s.disposed {
		return
	}

	s.phase = 0
}

// Dispose releases the stage. Idempotent.
func (s *Spatializer) Dispose() {
	s.disposed = true
}
