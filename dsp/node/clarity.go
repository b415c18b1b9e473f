package node

import (
	"github.com/cwbudde/algo-audioedit/dsp/core"
	"github.com/cwbudde/algo-audioedit/dsp/filter/biquad"
	"github.com/cwbudde/algo-audioedit/dsp/filter/design"
)

const (
	defaultClarityFreq = 3200.0
	defaultClarityQ    = 1.0
)

// Clarity lifts the presence band with a peaking EQ per channel. The
// amount maps onto peak gain (0..+6 dB); the tuning axis moves the center
// between 1 and 8 kHz.
type Clarity struct {
	sampleRate float64

	gainDB ramp
	freq   ramp
	q      ramp

	left  *biquad.Section
	right *biquad.Section

	dirty    bool
	disposed bool
}

// NewClarity creates a neutral clarity stage. Construction never fails.
func NewClarity(sampleRate float64) *Clarity {
	sr := sanitizeSampleRate(sampleRate)
	c := &Clarity{
		sampleRate: sr,
		gainDB:     newRamp(0),
		freq:       newRamp(defaultClarityFreq),
		q:          newRamp(defaultClarityQ),
	}

	coeffs := design.Peak(defaultClarityFreq, 0, defaultClarityQ, sr)
	c.left = biquad.NewSection(coeffs)
	c.right = biquad.NewSection(coeffs)

	return c
}

// Name returns the stage name.
func (c *Clarity) Name() string { return NameClarity }

// SetAmount ramps the peak gain toward the mapped target.
func (c *Clarity) SetAmount(value, transitionSeconds float64) {
	if c.disposed {
		return
	}

	c.gainDB.setTarget(ClarityGain.Map(value), sanitizeTransition(transitionSeconds), c.sampleRate)
	c.dirty = true
}

// SetTuning ramps the peak center frequency and quality factor.
func (c *Clarity) SetTuning(freq, q, transitionSeconds float64) {
	if c.disposed {
		return
	}

	t := sanitizeTransition(transitionSeconds)

	if core.IsFinite(freq) && freq > 0 {
		c.freq.setTarget(core.Clamp(freq, ClarityFreq.Min, ClarityFreq.Max), t, c.sampleRate)
		c.dirty = true
	}

	if core.IsFinite(q) && q > 0 {
		c.q.setTarget(core.Clamp(q, minFilterQ, maxFilterQ), t, c.sampleRate)
		c.dirty = true
	}
}

// ProcessBlock filters both channels in-place.
func (c *Clarity) ProcessBlock(left, right []float64) {
	if c.disposed || len(left) == 0 {
		return
	}

	for start := 0; start < len(left); start += controlInterval {
		end := min(start+controlInterval, len(left))
		n := end - start

		if c.dirty || c.gainDB.active() || c.freq.active() || c.q.active() {
			g := c.gainDB.advance(n)
			f := c.freq.advance(n)
			q := c.q.advance(n)

			coeffs := design.Peak(f, g, q, c.sampleRate)
			c.left.SetCoefficients(coeffs)
			c.right.SetCoefficients(coeffs)

			c.dirty = c.gainDB.active() || c.freq.active() || c.q.active()
		}

		c.left.ProcessBlock(left[start:end])
		if right != nil {
			c.right.ProcessBlock(right[start:end])
		}
	}
}

// Reset clears the filter state without touching parameter targets.
func (c *Clarity) Reset() {
	if c.disposed {
		return
	}

	c.left.Reset()
	c.right.Reset()
}

// Dispose releases the stage. Idempotent.
func (c *Clarity) Dispose() {
	c.disposed = true
}
