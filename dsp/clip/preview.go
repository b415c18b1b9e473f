package clip

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-audioedit/dsp/core"
)

// DefaultPreviewSeconds is the preview window applied to non-entitled
// sessions.
const DefaultPreviewSeconds = 30.0

// DefaultFadeSeconds is the fade-out length appended to preview renders.
const DefaultFadeSeconds = 2.0

// Preview returns a new clip holding the leading min(seconds, duration)
// window of c.
func Preview(c *Clip, seconds float64) (*Clip, error) {
	if seconds <= 0 || !core.IsFinite(seconds) {
		return nil, ErrInvalidDuration
	}

	// Clamp before the frame conversion; float to int overflow is
	// implementation-defined for out-of-range values.
	frames := c.Frames()
	if seconds < c.Duration() {
		frames = int(seconds * c.sampleRate)
		if frames > c.Frames() {
			frames = c.Frames()
		}
	}

	if frames <= 0 {
		return nil, ErrEmptyClip
	}

	out, err := New(c.Channels(), frames, c.sampleRate)
	if err != nil {
		return nil, err
	}

	for ch := range c.samples {
		core.CopyInto(out.samples[ch], c.samples[ch][:frames])
	}

	return out, nil
}

// ApplyFadeOut returns a copy of c with a linear gain ramp from 1 to 0
// over the trailing fadeSeconds. Samples before the fade start are
// untouched; the fade length is capped at the clip length. A zero fade
// returns a plain copy.
func ApplyFadeOut(c *Clip, fadeSeconds float64) (*Clip, error) {
	if fadeSeconds < 0 || !core.IsFinite(fadeSeconds) {
		return nil, ErrInvalidDuration
	}

	out := c.Clone()

	fadeFrames := out.Frames()
	if fadeSeconds < c.Duration() {
		fadeFrames = int(fadeSeconds * c.sampleRate)
		if fadeFrames > out.Frames() {
			fadeFrames = out.Frames()
		}
	}

	if fadeFrames == 0 {
		return out, nil
	}

	ramp := make([]float64, fadeFrames)
	for i := range ramp {
		ramp[i] = 1 - float64(i+1)/float64(fadeFrames)
	}

	offset := out.Frames() - fadeFrames
	for ch := range out.samples {
		vecmath.MulBlockInPlace(out.samples[ch][offset:], ramp)
	}

	return out, nil
}

// PreviewWithFade composes Preview and ApplyFadeOut: the leading
// previewSeconds window of c with a trailing fade of fadeSeconds.
func PreviewWithFade(c *Clip, previewSeconds, fadeSeconds float64) (*Clip, error) {
	p, err := Preview(c, previewSeconds)
	if err != nil {
		return nil, err
	}

	return ApplyFadeOut(p, fadeSeconds)
}

// PreviewLimitReached reports whether playback at currentTime has reached
// the preview boundary. The entitlement decision itself is external; this
// is only the time check.
func PreviewLimitReached(currentTime, previewSeconds float64) bool {
	return currentTime >= previewSeconds
}
