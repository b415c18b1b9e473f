package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-audioedit/dsp/clip"
	"github.com/cwbudde/algo-audioedit/dsp/core"
)

// ErrDecode indicates the input is not decodable WAV audio.
var ErrDecode = errors.New("invalid WAV data")

var log = logrus.StandardLogger().WithFields(logrus.Fields{"component": "wavio"})

// LoadReader decodes WAV audio from r into a clip. The full PCM payload
// is read into memory; samples are normalized to [-1, 1] per the source
// bit depth and deinterleaved into channels.
func LoadReader(r io.ReadSeeker) (*clip.Clip, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrDecode
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: missing format", ErrDecode)
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrDecode)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	c, err := clip.New(channels, frames, float64(buf.Format.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	for ch := 0; ch < channels; ch++ {
		dst := c.Channel(ch)
		for i := 0; i < frames; i++ {
			dst[i] = float64(buf.Data[i*channels+ch]) * scale
		}
	}

	log.WithFields(logrus.Fields{
		"channels":   channels,
		"frames":     frames,
		"sampleRate": buf.Format.SampleRate,
		"bitDepth":   bitDepth,
	}).Debug("Decoded WAV data")

	return c, nil
}

// LoadFile decodes the WAV file at path.
func LoadFile(path string) (*clip.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// SaveFile writes the clip to path as 16-bit PCM WAV. Samples outside
// [-1, 1] are clamped.
func SaveFile(path string, c *clip.Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	const bitDepth = 16
	channels := c.Channels()
	frames := c.Frames()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  int(c.SampleRate()),
		},
		Data:           make([]int, frames*channels),
		SourceBitDepth: bitDepth,
	}
	const peak = 1<<(bitDepth-1) - 1
	for ch := 0; ch < channels; ch++ {
		src := c.Channel(ch)
		for i, v := range src {
			buf.Data[i*channels+ch] = int(core.Clamp(v, -1, 1) * peak)
		}
	}

	enc := wav.NewEncoder(f, int(c.SampleRate()), bitDepth, channels, 1)
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"path":   path,
		"frames": frames,
	}).Debug("Wrote WAV file")

	return nil
}
