package clip

import (
	"errors"
	"testing"
)

func TestNewZeroFilled(t *testing.T) {
	c, err := New(2, 16, 48000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Channels() != 2 || c.Frames() != 16 {
		t.Fatalf("got %dx%d, want 2x16", c.Channels(), c.Frames())
	}
	for ch := 0; ch < c.Channels(); ch++ {
		for i, v := range c.Channel(ch) {
			if v != 0 {
				t.Fatalf("channel %d sample %d = %v, want 0", ch, i, v)
			}
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 16, 48000); !errors.Is(err, ErrNoChannels) {
		t.Fatalf("err = %v, want ErrNoChannels", err)
	}
	if _, err := New(1, 16, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("err = %v, want ErrInvalidSampleRate", err)
	}
}

func TestFromSamplesSharesMemory(t *testing.T) {
	left := []float64{1, 2, 3}
	right := []float64{4, 5, 6}
	c, err := FromSamples([][]float64{left, right}, 44100)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	c.Channel(0)[0] = 99
	if left[0] != 99 {
		t.Fatal("FromSamples should share underlying memory")
	}
}

func TestFromSamplesChannelMismatch(t *testing.T) {
	_, err := FromSamples([][]float64{{1, 2}, {1}}, 44100)
	if !errors.Is(err, ErrChannelMismatch) {
		t.Fatalf("err = %v, want ErrChannelMismatch", err)
	}
}

func TestDuration(t *testing.T) {
	c, _ := New(1, 48000, 48000)
	if c.Duration() != 1 {
		t.Fatalf("Duration() = %v, want 1", c.Duration())
	}
}

func TestCloneIsDeep(t *testing.T) {
	c, _ := New(1, 4, 48000)
	c.Channel(0)[0] = 7
	d := c.Clone()
	d.Channel(0)[0] = 8
	if c.Channel(0)[0] != 7 {
		t.Fatal("Clone must not alias source samples")
	}
}
