package clip

import (
	"errors"
	"math"
	"testing"
)

func constantClip(t *testing.T, channels, frames int, sampleRate, value float64) *Clip {
	t.Helper()
	c, err := New(channels, frames, sampleRate)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for ch := 0; ch < channels; ch++ {
		for i := range c.Channel(ch) {
			c.Channel(ch)[i] = value
		}
	}
	return c
}

func TestPreviewShorterThanClip(t *testing.T) {
	c := constantClip(t, 2, 60*1000, 1000, 0.5) // 60 s at 1 kHz
	p, err := Preview(c, 30)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.Frames() != 30*1000 {
		t.Fatalf("Frames() = %d, want 30000", p.Frames())
	}
	if p.Channel(0)[0] != 0.5 {
		t.Fatalf("sample = %v, want 0.5", p.Channel(0)[0])
	}
}

func TestPreviewLongerThanClip(t *testing.T) {
	c := constantClip(t, 1, 1000, 1000, 1)
	p, err := Preview(c, 30)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.Frames() != c.Frames() {
		t.Fatalf("Frames() = %d, want %d", p.Frames(), c.Frames())
	}
}

func TestPreviewHugeDurationReturnsFullClip(t *testing.T) {
	c := constantClip(t, 1, 1000, 1000, 1)
	p, err := Preview(c, 1e300)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.Frames() != c.Frames() {
		t.Fatalf("Frames() = %d, want %d", p.Frames(), c.Frames())
	}
}

func TestPreviewInvalidDuration(t *testing.T) {
	c := constantClip(t, 1, 100, 1000, 1)
	for _, d := range []float64{0, -3, math.NaN()} {
		if _, err := Preview(c, d); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("duration %v: err = %v, want ErrInvalidDuration", d, err)
		}
	}
}

func TestApplyFadeOutRampsToZero(t *testing.T) {
	c := constantClip(t, 2, 10*1000, 1000, 1) // 10 s
	out, err := ApplyFadeOut(c, 2)
	if err != nil {
		t.Fatalf("ApplyFadeOut: %v", err)
	}

	fadeStart := out.Frames() - 2*1000
	// Samples before the fade are untouched.
	for i := 0; i < fadeStart; i++ {
		if out.Channel(0)[i] != 1 {
			t.Fatalf("pre-fade sample %d = %v, want 1", i, out.Channel(0)[i])
		}
	}
	// Fade strictly decreases toward zero on every channel.
	for ch := 0; ch < out.Channels(); ch++ {
		prev := 1.0
		for i := fadeStart; i < out.Frames(); i++ {
			v := out.Channel(ch)[i]
			if v >= prev {
				t.Fatalf("channel %d sample %d = %v, not strictly decreasing", ch, i, v)
			}
			prev = v
		}
		if last := out.Channel(ch)[out.Frames()-1]; last != 0 {
			t.Fatalf("channel %d final sample = %v, want 0", ch, last)
		}
	}
	// Source is untouched.
	if c.Channel(0)[c.Frames()-1] != 1 {
		t.Fatal("ApplyFadeOut must not mutate its input")
	}
}

func TestApplyFadeOutCapsAtClipLength(t *testing.T) {
	c := constantClip(t, 1, 500, 1000, 1) // 0.5 s
	out, err := ApplyFadeOut(c, 10)
	if err != nil {
		t.Fatalf("ApplyFadeOut: %v", err)
	}
	if out.Channel(0)[0] >= 1 {
		t.Fatal("full-length fade should start attenuating immediately")
	}
}

func TestApplyFadeOutHugeDurationFadesWholeClip(t *testing.T) {
	c := constantClip(t, 1, 1000, 1000, 1)
	out, err := ApplyFadeOut(c, 1e300)
	if err != nil {
		t.Fatalf("ApplyFadeOut: %v", err)
	}
	if out.Channel(0)[0] >= 1 {
		t.Fatal("full-length fade should start attenuating immediately")
	}
	if last := out.Channel(0)[out.Frames()-1]; last != 0 {
		t.Fatalf("final sample = %v, want 0", last)
	}
}

func TestApplyFadeOutZeroIsCopy(t *testing.T) {
	c := constantClip(t, 1, 100, 1000, 0.25)
	out, err := ApplyFadeOut(c, 0)
	if err != nil {
		t.Fatalf("ApplyFadeOut: %v", err)
	}
	for i, v := range out.Channel(0) {
		if v != 0.25 {
			t.Fatalf("sample %d = %v, want 0.25", i, v)
		}
	}
}

func TestPreviewWithFade(t *testing.T) {
	c := constantClip(t, 2, 60*1000, 1000, 0.8) // 60 s
	out, err := PreviewWithFade(c, 30, 2)
	if err != nil {
		t.Fatalf("PreviewWithFade: %v", err)
	}
	if out.Frames() != 30*1000 {
		t.Fatalf("Frames() = %d, want 30000", out.Frames())
	}

	fadeStart := out.Frames() - 2*1000
	prev := math.Inf(1)
	for i := fadeStart; i < out.Frames(); i++ {
		v := math.Abs(out.Channel(0)[i])
		if v >= prev {
			t.Fatalf("fade magnitude not strictly decreasing at %d", i)
		}
		prev = v
	}
	if prev != 0 {
		t.Fatalf("fade must end at zero, got %v", prev)
	}
}

func TestPreviewLimitReached(t *testing.T) {
	if PreviewLimitReached(29.9, 30) {
		t.Fatal("29.9 < 30 should not reach the limit")
	}
	if !PreviewLimitReached(30, 30) {
		t.Fatal("30 >= 30 should reach the limit")
	}
	if !PreviewLimitReached(31, 30) {
		t.Fatal("31 >= 30 should reach the limit")
	}
}
