package engine

import (
	"fmt"

	"github.com/cwbudde/algo-audioedit/dsp/analyze"
	"github.com/cwbudde/algo-audioedit/dsp/clip"
	"github.com/cwbudde/algo-audioedit/dsp/core"
	"github.com/cwbudde/algo-audioedit/dsp/node"
	"github.com/cwbudde/algo-audioedit/settings"
)

// renderBlockSize is the block length used for offline processing.
const renderBlockSize = 4096

// Render processes the loaded clip through a fresh effect chain with the
// current settings and returns the result. The live playback chain and
// its ramp state are untouched.
func (e *Engine) Render() (*clip.Clip, error) {
	e.mu.Lock()
	src := e.clp
	s := e.settings
	e.mu.Unlock()

	if src == nil {
		return nil, ErrNotLoaded
	}
	return renderClip(src, s)
}

// RenderPreview trims the clip to its first previewSeconds, processes it
// and fades the tail out over fadeSeconds. Non-positive arguments fall
// back to the clip package defaults.
func (e *Engine) RenderPreview(previewSeconds, fadeSeconds float64) (*clip.Clip, error) {
	e.mu.Lock()
	src := e.clp
	s := e.settings
	e.mu.Unlock()

	if src == nil {
		return nil, ErrNotLoaded
	}
	if previewSeconds <= 0 {
		previewSeconds = clip.DefaultPreviewSeconds
	}
	if fadeSeconds <= 0 {
		fadeSeconds = clip.DefaultFadeSeconds
	}

	head, err := clip.Preview(src, previewSeconds)
	if err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	out, err := renderClip(head, s)
	if err != nil {
		return nil, err
	}
	return clip.ApplyFadeOut(out, fadeSeconds)
}

// Spectrum returns magnitudes in dBFS for an fftSize window of the first
// channel starting at `at` seconds. fftSize must be a power of two.
func (e *Engine) Spectrum(at float64, fftSize int) ([]float64, error) {
	e.mu.Lock()
	src := e.clp
	e.mu.Unlock()

	if src == nil {
		return nil, ErrNotLoaded
	}

	a, err := e.analyzerFor(fftSize, src.SampleRate())
	if err != nil {
		return nil, err
	}

	ch := src.Channel(0)
	start := int(core.Clamp(at, 0, src.Duration()) * src.SampleRate())
	if start > len(ch) {
		start = len(ch)
	}
	end := start + fftSize
	if end > len(ch) {
		end = len(ch)
	}
	return a.MagnitudesDB(ch[start:end])
}

// analyzerFor returns a cached analyzer, rebuilding it when the size or
// sample rate changed since the last call.
func (e *Engine) analyzerFor(fftSize int, sampleRate float64) (*analyze.Analyzer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.analyzer != nil && e.analyzer.FFTSize() == fftSize && e.analyzerRate == sampleRate {
		return e.analyzer, nil
	}
	a, err := analyze.NewAnalyzer(fftSize, sampleRate)
	if err != nil {
		return nil, err
	}
	e.analyzer = a
	e.analyzerRate = sampleRate
	return a, nil
}

// renderClip runs a clone of src through a freshly built chain so the
// filters start from silence, with the settings installed without ramps.
func renderClip(src *clip.Clip, s settings.Settings) (*clip.Clip, error) {
	out := src.Clone()
	ch := buildChain(out.SampleRate())
	defer ch.Dispose()
	installImmediate(ch, s)

	left := out.Channel(0)
	var right []float64
	if out.Channels() > 1 {
		right = out.Channel(1)
	}

	for off := 0; off < len(left); off += renderBlockSize {
		end := off + renderBlockSize
		if end > len(left) {
			end = len(left)
		}
		if right != nil {
			ch.ProcessBlock(left[off:end], right[off:end])
		} else {
			ch.ProcessBlock(left[off:end], nil)
		}
	}
	return out, nil
}

// installImmediate sets every amount with a sub-sample transition, which
// the ramps treat as an immediate jump.
func installImmediate(ch *node.Chain, s settings.Settings) {
	const instant = 1e-9
	if n := ch.Lookup(node.NameBassWarmth); n != nil {
		n.SetAmount(s.BassWarmth, instant)
	}
	if n := ch.Lookup(node.NameClarity); n != nil {
		n.SetAmount(s.Clarity, instant)
	}
	if n := ch.Lookup(node.NameSpatialization); n != nil {
		n.SetAmount(s.Spatialization, instant)
	}
	if n := ch.Lookup(node.NameBinaural); n != nil {
		n.SetAmount(s.Binaural, instant)
	}
}
