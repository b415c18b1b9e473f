package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-audioedit/dsp/node"
	"github.com/cwbudde/algo-audioedit/settings"
)

// UpdateParameter routes a single 0-100 value to its effect stage with
// the default ramp. The change is live immediately but is not recorded
// in the history; callers push a snapshot via ApplySettings once a
// gesture (such as a slider drag) ends.
func (e *Engine) UpdateParameter(name string, value float64) error {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return nil
	}

	switch name {
	case node.NameBassWarmth:
		e.settings.BassWarmth = value
	case node.NameClarity:
		e.settings.Clarity = value
	case node.NameSpatialization:
		e.settings.Spatialization = value
	case node.NameBinaural:
		e.settings.Binaural = value
	default:
		e.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	e.settings = e.settings.Clamped()
	e.routeParameterLocked(name, e.settings, node.DefaultTransitionSeconds)
	snapshot := e.settings
	e.mu.Unlock()

	e.log.WithFields(logrus.Fields{"parameter": name, "value": value}).Debug("Parameter updated")
	e.notifySettings(snapshot)
	return nil
}

// SetMode applies an effect mode. Modes with a bundle replace all four
// amounts as one atomic update recorded as a single history entry;
// ModeNone keeps the current amounts and only clears the mode tag.
func (e *Engine) SetMode(mode settings.EffectMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	next, ok := settings.ModeBundle(mode)
	if !ok {
		e.mu.Lock()
		next = e.settings
		next.Mode = settings.ModeNone
		e.mu.Unlock()
	}
	return e.applySettings(next, true, "Mode: "+string(mode))
}

// ApplySettings installs a full settings snapshot, ramping every stage.
// With recordHistory true the snapshot becomes a new history entry.
func (e *Engine) ApplySettings(s settings.Settings, recordHistory bool) error {
	return e.applySettings(s, recordHistory, "Adjust settings")
}

func (e *Engine) applySettings(s settings.Settings, recordHistory bool, label string) error {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return nil
	}
	s = s.Clamped()
	e.settings = s
	e.routeSettingsLocked(s, node.DefaultTransitionSeconds)
	if recordHistory {
		e.hist.Push(s, label)
	}
	e.mu.Unlock()

	e.log.WithFields(logrus.Fields{
		"label":    label,
		"recorded": recordHistory,
	}).Debug("Settings applied")
	e.notifySettings(s)
	return nil
}

// Undo steps back one history entry and re-applies it without creating
// a new entry. The second return is false when nothing can be undone.
func (e *Engine) Undo() (settings.Settings, bool) {
	return e.restore(func() (settings.Settings, bool) { return e.hist.Undo() })
}

// Redo steps forward one history entry.
func (e *Engine) Redo() (settings.Settings, bool) {
	return e.restore(func() (settings.Settings, bool) { return e.hist.Redo() })
}

// ResetSettings restores the baseline defaults and clears the history
// back to its single baseline entry.
func (e *Engine) ResetSettings() settings.Settings {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return e.settings
	}
	s := e.hist.Reset()
	e.settings = s
	e.routeSettingsLocked(s, node.DefaultTransitionSeconds)
	e.mu.Unlock()

	e.log.Debug("Settings reset to defaults")
	e.notifySettings(s)
	return s
}

func (e *Engine) restore(step func() (settings.Settings, bool)) (settings.Settings, bool) {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return e.settings, false
	}
	s, ok := step()
	if !ok {
		cur := e.settings
		e.mu.Unlock()
		return cur, false
	}
	e.settings = s
	e.routeSettingsLocked(s, node.DefaultTransitionSeconds)
	e.mu.Unlock()

	e.notifySettings(s)
	return s, true
}

// CanUndo reports whether a history step back is available.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanUndo()
}

// CanRedo reports whether a history step forward is available.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanRedo()
}

// HistoryLen returns the number of recorded history entries.
func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.Len()
}

// HistoryIndex returns the position of the current entry.
func (e *Engine) HistoryIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.Index()
}

// routeSettingsLocked pushes all four amounts into the chain.
func (e *Engine) routeSettingsLocked(s settings.Settings, transition float64) {
	for _, name := range []string{
		node.NameBassWarmth,
		node.NameClarity,
		node.NameSpatialization,
		node.NameBinaural,
	} {
		e.routeParameterLocked(name, s, transition)
	}
}

func (e *Engine) routeParameterLocked(name string, s settings.Settings, transition float64) {
	if e.chain == nil {
		return
	}
	n := e.chain.Lookup(name)
	if n == nil {
		return
	}
	switch name {
	case node.NameBassWarmth:
		n.SetAmount(s.BassWarmth, transition)
	case node.NameClarity:
		n.SetAmount(s.Clarity, transition)
	case node.NameSpatialization:
		n.SetAmount(s.Spatialization, transition)
	case node.NameBinaural:
		n.SetAmount(s.Binaural, transition)
	}
}
