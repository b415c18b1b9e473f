package clip

import (
	"github.com/cwbudde/algo-audioedit/dsp/core"
)

// Clip is an immutable-by-convention multi-channel buffer of float64
// samples at a fixed sample rate. Channel data is stored non-interleaved.
type Clip struct {
	samples    [][]float64
	sampleRate float64
}

// New returns a zero-filled clip with the given channel count and frame
// count.
func New(channels, frames int, sampleRate float64) (*Clip, error) {
	if channels < 1 {
		return nil, ErrNoChannels
	}

	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, ErrInvalidSampleRate
	}

	if frames < 0 {
		frames = 0
	}

	samples := make([][]float64, channels)
	for ch := range samples {
		samples[ch] = make([]float64, frames)
	}

	return &Clip{samples: samples, sampleRate: sampleRate}, nil
}

// FromSamples wraps existing per-channel sample slices without copying.
// All channels must have equal length.
func FromSamples(samples [][]float64, sampleRate float64) (*Clip, error) {
	if len(samples) == 0 {
		return nil, ErrNoChannels
	}

	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, ErrInvalidSampleRate
	}

	frames := len(samples[0])
	for _, ch := range samples[1:] {
		if len(ch) != frames {
			return nil, ErrChannelMismatch
		}
	}

	return &Clip{samples: samples, sampleRate: sampleRate}, nil
}

// Channels returns the channel count.
func (c *Clip) Channels() int {
	return len(c.samples)
}

// Frames returns the per-channel sample count.
func (c *Clip) Frames() int {
	if len(c.samples) == 0 {
		return 0
	}

	return len(c.samples[0])
}

// SampleRate returns the sample rate in Hz.
func (c *Clip) SampleRate() float64 {
	return c.sampleRate
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	return float64(c.Frames()) / c.sampleRate
}

// Channel returns the sample slice for channel ch without copying.
func (c *Clip) Channel(ch int) []float64 {
	return c.samples[ch]
}

// Clone returns a deep copy of the clip.
func (c *Clip) Clone() *Clip {
	samples := make([][]float64, len(c.samples))
	for ch, src := range c.samples {
		samples[ch] = make([]float64, len(src))
		core.CopyInto(samples[ch], src)
	}

	return &Clip{samples: samples, sampleRate: c.sampleRate}
}
