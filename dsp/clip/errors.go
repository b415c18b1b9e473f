package clip

import "errors"

var (
	// ErrInvalidDuration indicates a non-finite or non-positive duration.
	ErrInvalidDuration = errors.New("clip duration must be positive and finite")

	// ErrRangeTooShort indicates a trim span below the minimum length.
	ErrRangeTooShort = errors.New("trim range shorter than minimum span")

	// ErrEmptyClip indicates a transformation that would yield zero frames.
	ErrEmptyClip = errors.New("resulting clip would be empty")

	// ErrInvalidSampleRate indicates a non-finite or non-positive sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive and finite")

	// ErrChannelMismatch indicates per-channel slices of unequal length.
	ErrChannelMismatch = errors.New("channels must have equal length")

	// ErrNoChannels indicates a clip without any channels.
	ErrNoChannels = errors.New("clip must have at least one channel")
)
