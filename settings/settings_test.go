package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsNeutral(t *testing.T) {
	d := Default()
	assert.Zero(t, d.BassWarmth)
	assert.Zero(t, d.Clarity)
	assert.Zero(t, d.Spatialization)
	assert.Zero(t, d.Binaural)
	assert.Equal(t, ModeNone, d.Mode)
}

func TestClampedForcesRanges(t *testing.T) {
	s := Settings{
		BassWarmth:     150,
		Clarity:        -20,
		Spatialization: 100,
		Binaural:       50,
		Mode:           EffectMode("bogus"),
	}

	c := s.Clamped()
	assert.Equal(t, 100.0, c.BassWarmth)
	assert.Equal(t, 0.0, c.Clarity)
	assert.Equal(t, 100.0, c.Spatialization)
	assert.Equal(t, 50.0, c.Binaural)
	assert.Equal(t, ModeNone, c.Mode)
}

func TestClampedDoesNotMutateReceiver(t *testing.T) {
	s := Settings{BassWarmth: 150}
	_ = s.Clamped()
	assert.Equal(t, 150.0, s.BassWarmth, "value semantics: receiver untouched")
}

func TestModeBundles(t *testing.T) {
	for _, mode := range Modes() {
		b, ok := ModeBundle(mode)
		require.True(t, ok, "mode %s must carry a bundle", mode)
		assert.Equal(t, mode, b.Mode)
		assert.Equal(t, b, b.Clamped(), "bundle %s must already be in range", mode)
	}

	_, ok := ModeBundle(ModeNone)
	assert.False(t, ok)
	_, ok = ModeBundle(EffectMode("bogus"))
	assert.False(t, ok)
}

func TestModeBundleReturnsCopy(t *testing.T) {
	a, _ := ModeBundle(ModeFocus)
	a.BassWarmth = 1
	b, _ := ModeBundle(ModeFocus)
	assert.NotEqual(t, a.BassWarmth, b.BassWarmth, "mutating a bundle must not affect the table")
}

func TestJSONShape(t *testing.T) {
	s := Settings{BassWarmth: 40, Clarity: 55, Spatialization: 30, Binaural: 10, Mode: ModeFocus}
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"bassWarmth", "clarity", "spatialization", "binaural", "effectMode"} {
		assert.Contains(t, m, key)
	}
}
