package node

import (
	"github.com/cwbudde/algo-audioedit/dsp/core"
	"github.com/cwbudde/algo-audioedit/dsp/filter/biquad"
	"github.com/cwbudde/algo-audioedit/dsp/filter/design"
)

const (
	defaultBassWarmthFreq = 200.0
	defaultBassWarmthQ    = 0.707

	minFilterQ = 0.1
	maxFilterQ = 4.0
)

// BassWarmth adds low-end weight with a low-shelf filter per channel.
// The amount maps onto shelf gain (0..+9 dB); the tuning axis moves the
// shelf corner between 80 and 320 Hz.
type BassWarmth struct {
	sampleRate float64

	gainDB ramp
	freq   ramp
	q      ramp

	left  *biquad.Section
	right *biquad.Section

	dirty    bool
	disposed bool
}

// NewBassWarmth creates a neutral bass warmth stage. Invalid sample rates
// fall back to DefaultSampleRate; construction never fails.
func NewBassWarmth(sampleRate float64) *BassWarmth {
	sr := sanitizeSampleRate(sampleRate)
	b := &BassWarmth{
		sampleRate: sr,
		gainDB:     newRamp(0),
		freq:       newRamp(defaultBassWarmthFreq),
		q:          newRamp(defaultBassWarmthQ),
	}

	c := design.LowShelf(defaultBassWarmthFreq, 0, defaultBassWarmthQ, sr)
	b.left = biquad.NewSection(c)
	b.right = biquad.NewSection(c)

	return b
}

// Name returns the stage name.
func (b *BassWarmth) Name() string { return NameBassWarmth }

// SetAmount ramps the shelf gain toward the mapped target.
func (b *BassWarmth) SetAmount(value, transitionSeconds float64) {
	if b.disposed {
		return
	}

	target := BassWarmthGain.Map(value)
	b.gainDB.setTarget(target, sanitizeTransition(transitionSeconds), b.sampleRate)
	b.dirty = true
}

// SetTuning ramps the shelf corner frequency and quality factor.
// Non-finite values leave the corresponding axis unchanged.
func (b *BassWarmth) SetTuning(freq, q, transitionSeconds float64) {
	if b.disposed {
		return
	}

	t := sanitizeTransition(transitionSeconds)

	if core.IsFinite(freq) && freq > 0 {
		target := core.Clamp(freq, BassWarmthFreq.Min, BassWarmthFreq.Max)
		b.freq.setTarget(target, t, b.sampleRate)
		b.dirty = true
	}

	if core.IsFinite(q) && q > 0 {
		b.q.setTarget(core.Clamp(q, minFilterQ, maxFilterQ), t, b.sampleRate)
		b.dirty = true
	}
}

// ProcessBlock filters both channels in-place, recomputing shelf
// coefficients at control rate while a ramp is in flight.
func (b *BassWarmth) ProcessBlock(left, right []float64) {
	if b.disposed || len(left) == 0 {
		return
	}

	for start := 0; start < len(left); start += controlInterval {
		end := min(start+controlInterval, len(left))
		n := end - start

		if b.dirty || b.gainDB.active() || b.freq.active() || b.q.active() {
			g := b.gainDB.advance(n)
			f := b.freq.advance(n)
			q := b.q.advance(n)

			c := design.LowShelf(f, g, q, b.sampleRate)
			b.left.SetCoefficients(c)
			b.right.SetCoefficients(c)

			b.dirty = b.gainDB.active() || b.freq.active() || b.q.active()
		}

		b.left.ProcessBlock(left[start:end])
		if right != nil {
			b.right.ProcessBlock(right[start:end])
		}
	}
}

// Reset clears the filter state without touching parameter targets.
func (b *BassWarmth) Reset() {
	if b.disposed {
		return
	}

	b.left.Reset()
	b.right.Reset()
}

// Dispose releases the stage. Safe to call multiple times; all later
// calls on the node are no-ops.
func (b *BassWarmth) Dispose() {
	b.disposed = true
}
