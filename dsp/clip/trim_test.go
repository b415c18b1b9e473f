package clip

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeTrimRangeClampsAndReorders(t *testing.T) {
	r, err := NormalizeTrimRange(TrimRange{Start: 8, End: -2}, 10)
	if err != nil {
		t.Fatalf("NormalizeTrimRange: %v", err)
	}
	if r.Start != 0 || r.End != 8 {
		t.Fatalf("got %+v, want {0 8}", r)
	}

	r, err = NormalizeTrimRange(TrimRange{Start: 2, End: 50}, 10)
	if err != nil {
		t.Fatalf("NormalizeTrimRange: %v", err)
	}
	if r.Start != 2 || r.End != 10 {
		t.Fatalf("got %+v, want {2 10}", r)
	}
}

func TestNormalizeTrimRangeIdempotent(t *testing.T) {
	r1, err := NormalizeTrimRange(TrimRange{Start: 1.5, End: 7.25}, 10)
	if err != nil {
		t.Fatalf("NormalizeTrimRange: %v", err)
	}
	r2, err := NormalizeTrimRange(r1, 10)
	if err != nil {
		t.Fatalf("NormalizeTrimRange: %v", err)
	}
	if r1 != r2 {
		t.Fatalf("not idempotent: %+v != %+v", r1, r2)
	}
}

func TestNormalizeTrimRangeInvalidDuration(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NormalizeTrimRange(TrimRange{End: 1}, d); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("duration %v: err = %v, want ErrInvalidDuration", d, err)
		}
	}
}

func TestNormalizeTrimRangeTooShort(t *testing.T) {
	_, err := NormalizeTrimRange(TrimRange{Start: 5, End: 5.0005}, 10)
	if !errors.Is(err, ErrRangeTooShort) {
		t.Fatalf("err = %v, want ErrRangeTooShort", err)
	}
}

func TestTrimSampleAccurate(t *testing.T) {
	c, _ := New(2, 48000, 48000) // 1 second
	for ch := 0; ch < 2; ch++ {
		for i := range c.Channel(ch) {
			c.Channel(ch)[i] = float64(i)
		}
	}

	out, err := Trim(c, TrimRange{Start: 0.25, End: 0.5})
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}
	if out.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", out.Channels())
	}
	if out.Frames() != 12000 {
		t.Fatalf("Frames() = %d, want 12000", out.Frames())
	}
	if out.Channel(0)[0] != 12000 {
		t.Fatalf("first sample = %v, want 12000", out.Channel(0)[0])
	}
	if out.Channel(1)[out.Frames()-1] != 23999 {
		t.Fatalf("last sample = %v, want 23999", out.Channel(1)[out.Frames()-1])
	}
}

func TestTrimNeverExceedsSource(t *testing.T) {
	c, _ := New(1, 1000, 1000) // 1 second at 1 kHz
	out, err := Trim(c, TrimRange{Start: 0.5, End: 99})
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}
	if out.Frames() > c.Frames() {
		t.Fatalf("trimmed %d frames from %d-frame source", out.Frames(), c.Frames())
	}
}

func TestTrimNormalizedRangeNeverFails(t *testing.T) {
	c, _ := New(2, 4410, 44100)
	ranges := []TrimRange{
		{Start: -5, End: 50},
		{Start: 0.09, End: 0.01},
		{Start: 0, End: c.Duration()},
	}
	for _, r := range ranges {
		norm, err := NormalizeTrimRange(r, c.Duration())
		if err != nil {
			t.Fatalf("normalize %+v: %v", r, err)
		}
		out, err := Trim(c, norm)
		if err != nil {
			t.Fatalf("trim %+v: %v", norm, err)
		}
		if out.Frames() <= 0 || out.Frames() > c.Frames() {
			t.Fatalf("trim %+v: %d frames", norm, out.Frames())
		}
		if out.Channels() != c.Channels() {
			t.Fatalf("trim %+v: channel count changed", norm)
		}
	}
}
