package engine

import (
	"context"

	"github.com/cwbudde/algo-audioedit/dsp/clip"
)

// Loader turns a source reference (file path or URL) into a decoded clip.
// Implementations live outside this package; wavio provides the default.
type Loader interface {
	Load(ctx context.Context, src string) (*clip.Clip, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, src string) (*clip.Clip, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, src string) (*clip.Clip, error) {
	return f(ctx, src)
}
