package node

import "github.com/cwbudde/algo-audioedit/dsp/params"

// Declarative parameter tables: one mapping per tunable axis. The squared
// curve keeps early slider travel gentle on gain amounts; frequency-like
// axes interpolate geometrically.
var (
	// BassWarmthGain maps amount onto low-shelf gain in dB.
	BassWarmthGain = params.Mapping{Min: 0, Max: 9, Curve: params.CurveSquared}
	// BassWarmthFreq bounds the low-shelf corner frequency in Hz.
	BassWarmthFreq = params.Mapping{Min: 80, Max: 320, Curve: params.CurveExponential}

	// ClarityGain maps amount onto peaking gain in dB.
	ClarityGain = params.Mapping{Min: 0, Max: 6, Curve: params.CurveSquared}
	// ClarityFreq bounds the presence-band center frequency in Hz.
	ClarityFreq = params.Mapping{Min: 1000, Max: 8000, Curve: params.CurveExponential}

	// SpatialDepth maps amount onto pan-excursion depth.
	SpatialDepth = params.Mapping{Min: 0, Max: 1, Curve: params.CurveLinear}
	// SpatialRate bounds the pan rotation rate in Hz.
	SpatialRate = params.Mapping{Min: 0.05, Max: 0.5, Curve: params.CurveExponential}

	// BinauralMix maps amount onto the beat-tone level (linear amplitude).
	BinauralMix = params.Mapping{Min: 0, Max: 0.08, Curve: params.CurveSquared}
	// BinauralCarrier bounds the beat carrier frequency in Hz.
	BinauralCarrier = params.Mapping{Min: 80, Max: 500, Curve: params.CurveExponential}
	// BinauralBeat bounds the left/right beat offset in Hz.
	BinauralBeat = params.Mapping{Min: 0.5, Max: 12, Curve: params.CurveLinear}
)
