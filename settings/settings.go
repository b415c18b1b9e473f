package settings

import "github.com/cwbudde/algo-audioedit/dsp/core"

// ValueMin and ValueMax bound every normalized parameter field.
const (
	ValueMin = 0.0
	ValueMax = 100.0
)

// EffectMode tags a settings snapshot with the profile that produced it.
type EffectMode string

// Known effect modes. ModeNone means manually tuned parameters.
const (
	ModeNone   EffectMode = "none"
	ModeFocus  EffectMode = "focus"
	ModeRelax  EffectMode = "relax"
	ModeEnergy EffectMode = "energy"
	ModeStudy  EffectMode = "study"
)

// Valid reports whether m is a known mode.
func (m EffectMode) Valid() bool {
	switch m {
	case ModeNone, ModeFocus, ModeRelax, ModeEnergy, ModeStudy:
		return true
	default:
		return false
	}
}

// Settings is one immutable snapshot of every user-tunable parameter.
// All numeric fields are normalized to [0, 100].
type Settings struct {
	BassWarmth     float64    `json:"bassWarmth"`
	Clarity        float64    `json:"clarity"`
	Spatialization float64    `json:"spatialization"`
	Binaural       float64    `json:"binaural"`
	Mode           EffectMode `json:"effectMode"`
}

// Default returns the neutral baseline settings.
func Default() Settings {
	return Settings{Mode: ModeNone}
}

// Clamped returns a copy with every numeric field forced into its valid
// range and unknown modes replaced by ModeNone. Out-of-range values are
// clamped, never rejected, so replaying persisted or historical snapshots
// is always safe.
func (s Settings) Clamped() Settings {
	s.BassWarmth = core.Clamp(s.BassWarmth, ValueMin, ValueMax)
	s.Clarity = core.Clamp(s.Clarity, ValueMin, ValueMax)
	s.Spatialization = core.Clamp(s.Spatialization, ValueMin, ValueMax)
	s.Binaural = core.Clamp(s.Binaural, ValueMin, ValueMax)

	if !s.Mode.Valid() {
		s.Mode = ModeNone
	}

	return s
}

// Equal reports whether two snapshots hold the same values.
func (s Settings) Equal(o Settings) bool {
	return s == o
}
