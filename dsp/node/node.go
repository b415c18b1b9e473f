package node

const (
	// DefaultSampleRate is used when a constructor receives an invalid
	// sample rate, so that construction can never fail.
	DefaultSampleRate = 44100.0

	// DefaultTransitionSeconds is the ramp time applied when a caller
	// passes a non-positive transition.
	DefaultTransitionSeconds = 0.05

	// controlInterval is the number of samples between parameter-ramp
	// updates. Filter coefficients are recomputed at this rate while a
	// ramp is active.
	controlInterval = 32
)

// Stage names, matching the settings fields they are driven by.
const (
	NameBassWarmth     = "bassWarmth"
	NameClarity        = "clarity"
	NameSpatialization = "spatialization"
	NameBinaural       = "binaural"
)

// Node is one stage of the effect chain.
//
// SetAmount maps a normalized 0-100 value onto the stage's physical
// parameter and ramps it over transitionSeconds (DefaultTransitionSeconds
// when non-positive). SetTuning adjusts the stage's secondary axis
// (corner/center frequency and Q, or their stage-specific equivalent),
// also smoothed. ProcessBlock filters one block in-place; right may be
// nil for mono material, in which case stereo-only stages pass the block
// through unchanged.
//
// Dispose releases the stage and is idempotent; any call after Dispose
// is a no-op rather than an error, since transport callbacks may race
// with teardown.
type Node interface {
	Name() string
	SetAmount(value, transitionSeconds float64)
	SetTuning(freq, q, transitionSeconds float64)
	ProcessBlock(left, right []float64)
	Reset()
	Dispose()
}

func sanitizeSampleRate(sampleRate float64) float64 {
	if sampleRate <= 0 || sampleRate != sampleRate {
		return DefaultSampleRate
	}

	return sampleRate
}

func sanitizeTransition(transitionSeconds float64) float64 {
	if transitionSeconds <= 0 || transitionSeconds != transitionSeconds {
		return DefaultTransitionSeconds
	}

	return transitionSeconds
}
