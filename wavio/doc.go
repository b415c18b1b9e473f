// Package wavio decodes and encodes WAV audio as clips. It wraps the
// go-audio decoder/encoder pair, converts between interleaved integer
// PCM and the per-channel float64 layout used by the processing chain,
// and provides the source loader used for file and URL loading.
package wavio
