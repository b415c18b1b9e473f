package history

import "github.com/cwbudde/algo-audioedit/settings"

// DefaultMaxEntries caps the ledger length unless overridden.
const DefaultMaxEntries = 50

// ResetLabel names the baseline entry.
const ResetLabel = "Reset"

// Entry pairs a settings snapshot with the user-facing action label that
// produced it.
type Entry struct {
	Settings settings.Settings
	Label    string
}

// Option configures a History.
type Option func(*History)

// WithMaxEntries overrides the ledger capacity. Values below 1 are
// ignored.
func WithMaxEntries(n int) Option {
	return func(h *History) {
		if n >= 1 {
			h.maxEntries = n
		}
	}
}

// History is a bounded linear undo/redo ledger. It is not safe for
// concurrent use; the owning session serializes access.
type History struct {
	defaults   settings.Settings
	entries    []Entry
	pos        int
	maxEntries int
}

// New creates a history seeded with a single baseline entry holding the
// given default settings.
func New(defaults settings.Settings, opts ...Option) *History {
	h := &History{
		defaults:   defaults.Clamped(),
		maxEntries: DefaultMaxEntries,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	h.entries = []Entry{{Settings: h.defaults, Label: ResetLabel}}

	return h
}

// Push records a new snapshot. If the position is not at the tail, the
// redo tail is discarded first. When the ledger exceeds its capacity the
// oldest entry is evicted and the position shifts down with it; the
// position never goes negative.
func (h *History) Push(s settings.Settings, label string) {
	if h.pos < len(h.entries)-1 {
		h.entries = h.entries[:h.pos+1]
	}

	h.entries = append(h.entries, Entry{Settings: s.Clamped(), Label: label})
	h.pos = len(h.entries) - 1

	if len(h.entries) > h.maxEntries {
		overflow := len(h.entries) - h.maxEntries
		h.entries = append(h.entries[:0], h.entries[overflow:]...)
		h.pos -= overflow
		if h.pos < 0 {
			h.pos = 0
		}
	}
}

// Undo steps back one entry and returns its settings. The second return
// is false when already at the oldest entry.
func (h *History) Undo() (settings.Settings, bool) {
	if h.pos <= 0 {
		return settings.Settings{}, false
	}

	h.pos--

	return h.entries[h.pos].Settings, true
}

// Redo steps forward one entry and returns its settings. The second
// return is false when already at the tail.
func (h *History) Redo() (settings.Settings, bool) {
	if h.pos >= len(h.entries)-1 {
		return settings.Settings{}, false
	}

	h.pos++

	return h.entries[h.pos].Settings, true
}

// Reset clears the ledger back to a single baseline entry holding the
// original defaults, regardless of any eviction that happened since, and
// returns those defaults.
func (h *History) Reset() settings.Settings {
	h.entries = []Entry{{Settings: h.defaults, Label: ResetLabel}}
	h.pos = 0

	return h.defaults
}

// CanUndo reports whether Undo would step back.
func (h *History) CanUndo() bool {
	return h.pos > 0
}

// CanRedo reports whether Redo would step forward.
func (h *History) CanRedo() bool {
	return h.pos < len(h.entries)-1
}

// Current returns the settings at the current position.
func (h *History) Current() settings.Settings {
	return h.entries[h.pos].Settings
}

// Len returns the number of entries in the ledger.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the current position, for diagnostics.
func (h *History) Index() int {
	return h.pos
}
