package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-audioedit/settings"
)

func TestRenderWithoutClip(t *testing.T) {
	e := New(settings.Default())
	defer e.Dispose()

	_, err := e.Render()
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, err = e.RenderPreview(10, 1)
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, err = e.Spectrum(0, 1024)
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestRenderNeutralIsPassthrough(t *testing.T) {
	e := New(settings.Default())
	defer e.Dispose()

	src := toneClip(t, 0.5, 48000)
	require.NoError(t, e.LoadClip(src))

	out, err := e.Render()
	require.NoError(t, err)
	require.Equal(t, src.Frames(), out.Frames())

	assert.Equal(t, src.Channel(0), out.Channel(0))
	assert.Equal(t, src.Channel(1), out.Channel(1))
}

func TestRenderAppliesEffects(t *testing.T) {
	e := New(settings.Default())
	defer e.Dispose()

	require.NoError(t, e.LoadClip(toneClip(t, 0.5, 48000)))
	require.NoError(t, e.UpdateParameter("spatialization", 100))

	out, err := e.Render()
	require.NoError(t, err)

	// A full-depth pan sweep makes the channels diverge.
	var maxDiff float64
	left, right := out.Channel(0), out.Channel(1)
	for i := range left {
		if d := math.Abs(left[i] - right[i]); d > maxDiff {
			maxDiff = d
		}
	}
	assert.Greater(t, maxDiff, 0.1)
}

func TestRenderLeavesSourceUntouched(t *testing.T) {
	e := New(settings.Default())
	defer e.Dispose()

	src := toneClip(t, 0.2, 48000)
	before := append([]float64(nil), src.Channel(0)...)

	require.NoError(t, e.LoadClip(src))
	require.NoError(t, e.UpdateParameter("bassWarmth", 100))
	_, err := e.Render()
	require.NoError(t, err)

	assert.Equal(t, before, src.Channel(0))
}

func TestRenderPreviewTrimsAndFades(t *testing.T) {
	e := New(settings.Default())
	defer e.Dispose()

	require.NoError(t, e.LoadClip(toneClip(t, 10.0, 48000)))

	out, err := e.RenderPreview(2.0, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out.Duration(), 1e-3)

	// Tail must have faded to (near) silence.
	left := out.Channel(0)
	tail := left[len(left)-10:]
	for _, v := range tail {
		assert.Less(t, math.Abs(v), 0.01)
	}
}

func TestSpectrumFindsTone(t *testing.T) {
	const fftSize = 4096
	e := New(settings.Default())
	defer e.Dispose()

	require.NoError(t, e.LoadClip(toneClip(t, 1.0, 48000)))

	mags, err := e.Spectrum(0, fftSize)
	require.NoError(t, err)
	require.Len(t, mags, fftSize/2+1)

	peak := 0
	for k, v := range mags {
		if v > mags[peak] {
			peak = k
		}
	}
	wantBin := 440.0 / (48000.0 / fftSize)
	assert.InDelta(t, wantBin, float64(peak), 1.5)
}

func TestSpectrumBadSize(t *testing.T) {
	e := New(settings.Default())
	defer e.Dispose()

	require.NoError(t, e.LoadClip(toneClip(t, 1.0, 48000)))
	_, err := e.Spectrum(0, 1000)
	assert.Error(t, err)
}
