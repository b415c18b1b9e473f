package clip

import (
	"math"

	"github.com/cwbudde/algo-audioedit/dsp/core"
)

// MinTrimSpan is the minimum trim length in seconds (1 ms).
const MinTrimSpan = 1e-3

// TrimRange selects a window of a clip in seconds.
type TrimRange struct {
	Start float64
	End   float64
}

// NormalizeTrimRange clamps both endpoints into [0, duration] and reorders
// them so Start <= End. It returns ErrInvalidDuration if duration is
// non-finite or not positive, and ErrRangeTooShort if the normalized span
// is below MinTrimSpan. Normalizing an already-normalized range returns
// the same range.
func NormalizeTrimRange(r TrimRange, duration float64) (TrimRange, error) {
	if duration <= 0 || !core.IsFinite(duration) {
		return TrimRange{}, ErrInvalidDuration
	}

	start := r.Start
	if math.IsNaN(start) {
		start = 0
	}

	end := r.End
	if math.IsNaN(end) {
		end = 0
	}

	start = core.Clamp(start, 0, duration)
	end = core.Clamp(end, 0, duration)

	if start > end {
		start, end = end, start
	}

	if end-start < MinTrimSpan {
		return TrimRange{}, ErrRangeTooShort
	}

	return TrimRange{Start: start, End: end}, nil
}

// Trim returns a new clip holding the sample window selected by r.
// The range is normalized against the source duration first, so callers
// may pass raw UI values. Frame indices are computed sample-accurately:
// the start rounds down, the end rounds up, capped at the source length.
// Returns ErrEmptyClip if the computed window holds no frames.
func Trim(c *Clip, r TrimRange) (*Clip, error) {
	norm, err := NormalizeTrimRange(r, c.Duration())
	if err != nil {
		return nil, err
	}

	startFrame := int(math.Floor(norm.Start * c.sampleRate))
	endFrame := int(math.Ceil(norm.End * c.sampleRate))

	if endFrame > c.Frames() {
		endFrame = c.Frames()
	}

	if startFrame < 0 {
		startFrame = 0
	}

	frames := endFrame - startFrame
	if frames <= 0 {
		return nil, ErrEmptyClip
	}

	out, err := New(c.Channels(), frames, c.sampleRate)
	if err != nil {
		return nil, err
	}

	for ch := range c.samples {
		core.CopyInto(out.samples[ch], c.samples[ch][startFrame:endFrame])
	}

	return out, nil
}
