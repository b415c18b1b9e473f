package engine

import "errors"

var (
	// ErrDecode indicates a source could not be turned into a playable
	// clip. The engine reverts to StateIdle and surfaces the error on
	// the error channel.
	ErrDecode = errors.New("audio source could not be decoded")

	// ErrNotLoaded indicates an operation that needs a loaded clip.
	ErrNotLoaded = errors.New("no audio loaded")

	// ErrUnknownParameter indicates a parameter name with no owning node.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrUnknownMode indicates an effect mode without a bundle.
	ErrUnknownMode = errors.New("unknown effect mode")
)
