package node

import (
	"math"

	"github.com/cwbudde/algo-audioedit/dsp/core"
)

const (
	defaultBinauralCarrierHz = 220.0
	defaultBinauralBeatHz    = 6.0
)

// Binaural injects a low-level beating tone pair: the left ear receives
// carrier - beat/2, the right ear carrier + beat/2, so the perceived beat
// equals the offset frequency. The amount maps onto the tone level
// (0..0.08 linear); the tuning axes carry the carrier frequency and, in
// place of Q, the beat offset in Hz.
//
// The stage requires stereo material; mono blocks pass through unchanged.
type Binaural struct {
	sampleRate float64

	mix     ramp
	carrier ramp
	beat    ramp

	phaseL   float64
	phaseR   float64
	disposed bool
}

// NewBinaural creates a neutral (silent) binaural stage.
// Construction never fails.
func NewBinaural(sampleRate float64) *Binaural {
	return &Binaural{
		sampleRate: sanitizeSampleRate(sampleRate),
		mix:        newRamp(0),
		carrier:    newRamp(defaultBinauralCarrierHz),
		beat:       newRamp(defaultBinauralBeatHz),
	}
}

// Name returns the stage name.
func (b *Binaural) Name() string { return NameBinaural }

// SetAmount ramps the tone level toward the mapped target.
func (b *Binaural) SetAmount(value, transitionSeconds float64) {
	if b.disposed {
		return
	}

	b.mix.setTarget(BinauralMix.Map(value), sanitizeTransition(transitionSeconds), b.sampleRate)
}

// SetTuning ramps the carrier frequency; the q axis carries the beat
// offset in Hz for this stage.
func (b *Binaural) SetTuning(freq, q, transitionSeconds float64) {
	if b.disposed {
		return
	}

	t := sanitizeTransition(transitionSeconds)

	if core.IsFinite(freq) && freq > 0 {
		b.carrier.setTarget(core.Clamp(freq, BinauralCarrier.Min, BinauralCarrier.Max), t, b.sampleRate)
	}

	if core.IsFinite(q) && q > 0 {
		b.beat.setTarget(core.Clamp(q, BinauralBeat.Min, BinauralBeat.Max), t, b.sampleRate)
	}
}

// ProcessBlock mixes the beat tones into both channels in-place.
func (b *Binaural) ProcessBlock(left, right []float64) {
	if b.disposed || len(left) == 0 || right == nil {
		return
	}

	n := min(len(left), len(right))

	for start := 0; start < n; start += controlInterval {
		end := min(start+controlInterval, n)

		mix := b.mix.advance(end - start)
		carrier := b.carrier.advance(end - start)
		beat := b.beat.advance(end - start)

		stepL := 2 * math.Pi * (carrier - beat/2) / b.sampleRate
		stepR := 2 * math.Pi * (carrier + beat/2) / b.sampleRate

		if mix == 0 && !b.mix.active() {
			// Keep the oscillators running so re-engaging continues the
			// beat instead of restarting it.
			b.phaseL += stepL * float64(end-start)
			b.phaseR += stepR * float64(end-start)
			continue
		}

		for i := start; i < end; i++ {
			left[i] += mix * math.Sin(b.phaseL)
			right[i] += mix * math.Sin(b.phaseR)

			b.phaseL += stepL
			b.phaseR += stepR
		}
	}

	if b.phaseL >= 2*math.Pi {
		b.phaseL = math.Mod(b.phaseL, 2*math.Pi)
	}
	if b.phaseR >= 2*math.Pi {
		b.phaseR = math.Mod(b.phaseR, 2*math.Pi)
	}
}

// Reset returns both oscillators to phase zero.
func (b *Binaural) Reset() {
	if b.disposed {
		return
	}

	b.phaseL = 0
	b.phaseR = 0
}

// Dispose releases the stage. Idempotent.
func (b *Binaural) Dispose() {
	b.disposed = true
}
