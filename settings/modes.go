package settings

// Mode bundles are configuration data, not logic: each mode pre-selects a
// full parameter profile applied as one atomic settings update. The
// numbers are product tuning and intentionally trivial to edit.
var modeBundles = map[EffectMode]Settings{
	ModeFocus: {
		BassWarmth:     25,
		Clarity:        70,
		Spatialization: 20,
		Binaural:       60,
		Mode:           ModeFocus,
	},
	ModeRelax: {
		BassWarmth:     60,
		Clarity:        20,
		Spatialization: 45,
		Binaural:       35,
		Mode:           ModeRelax,
	},
	ModeEnergy: {
		BassWarmth:     75,
		Clarity:        55,
		Spatialization: 65,
		Binaural:       20,
		Mode:           ModeEnergy,
	},
	ModeStudy: {
		BassWarmth:     30,
		Clarity:        50,
		Spatialization: 10,
		Binaural:       75,
		Mode:           ModeStudy,
	},
}

// ModeBundle returns the parameter profile for mode. The second return
// is false for ModeNone and unknown modes, which carry no bundle.
// Bundles are returned by value, so callers can never alias the table.
func ModeBundle(mode EffectMode) (Settings, bool) {
	s, ok := modeBundles[mode]
	return s, ok
}

// Modes lists every mode that carries a bundle, in a stable order.
func Modes() []EffectMode {
	return []EffectMode{ModeFocus, ModeRelax, ModeEnergy, ModeStudy}
}
