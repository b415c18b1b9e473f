package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-audioedit/settings"
)

// subscriptions holds the registered observer callbacks. Access is
// guarded by the engine mutex; snapshots are taken so callbacks run
// outside the lock.
type subscriptions struct {
	nextID   int
	state    map[int]func(State)
	time     map[int]func(float64)
	settings map[int]func(settings.Settings)
	errs     map[int]func(error)
}

func (s *subscriptions) clear() {
	s.state = nil
	s.time = nil
	s.settings = nil
	s.errs = nil
}

// OnStateChange registers fn for lifecycle transitions. The returned
// function removes the subscription; calling it twice is harmless.
func (e *Engine) OnStateChange(fn func(State)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return func() {}
	}
	if e.subs.state == nil {
		e.subs.state = make(map[int]func(State))
	}
	id := e.subs.nextID
	e.subs.nextID++
	e.subs.state[id] = fn
	return func() {
		e.mu.Lock()
		delete(e.subs.state, id)
		e.mu.Unlock()
	}
}

// OnTimeUpdate registers fn for playback position updates, emitted on
// the tick interval while playing and after seeks.
func (e *Engine) OnTimeUpdate(fn func(float64)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return func() {}
	}
	if e.subs.time == nil {
		e.subs.time = make(map[int]func(float64))
	}
	id := e.subs.nextID
	e.subs.nextID++
	e.subs.time[id] = fn
	return func() {
		e.mu.Lock()
		delete(e.subs.time, id)
		e.mu.Unlock()
	}
}

// OnSettingsChange registers fn for settings snapshots, emitted after
// every applied change, including undo, redo and reset.
func (e *Engine) OnSettingsChange(fn func(settings.Settings)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return func() {}
	}
	if e.subs.settings == nil {
		e.subs.settings = make(map[int]func(settings.Settings))
	}
	id := e.subs.nextID
	e.subs.nextID++
	e.subs.settings[id] = fn
	return func() {
		e.mu.Lock()
		delete(e.subs.settings, id)
		e.mu.Unlock()
	}
}

// OnError registers fn for asynchronous failures such as decode errors.
func (e *Engine) OnError(fn func(error)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return func() {}
	}
	if e.subs.errs == nil {
		e.subs.errs = make(map[int]func(error))
	}
	id := e.subs.nextID
	e.subs.nextID++
	e.subs.errs[id] = fn
	return func() {
		e.mu.Lock()
		delete(e.subs.errs, id)
		e.mu.Unlock()
	}
}

// setStateLocked changes the state and returns a closure that delivers
// the notification. The caller invokes it after releasing the lock.
func (e *Engine) setStateLocked(s State) func() {
	if s == e.state {
		return func() {}
	}
	prev := e.state
	e.state = s
	fns := make([]func(State), 0, len(e.subs.state))
	for _, fn := range e.subs.state {
		fns = append(fns, fn)
	}
	log := e.log
	return func() {
		log.WithFields(logrus.Fields{"from": prev.String(), "to": s.String()}).Debug("State changed")
		for _, fn := range fns {
			fn(s)
		}
	}
}

func (e *Engine) notifyTime(pos float64) {
	e.mu.Lock()
	fns := make([]func(float64), 0, len(e.subs.time))
	for _, fn := range e.subs.time {
		fns = append(fns, fn)
	}
	e.mu.Unlock()
	for _, fn := range fns {
		fn(pos)
	}
}

func (e *Engine) notifySettings(s settings.Settings) {
	e.mu.Lock()
	fns := make([]func(settings.Settings), 0, len(e.subs.settings))
	for _, fn := range e.subs.settings {
		fns = append(fns, fn)
	}
	e.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}

func (e *Engine) notifyError(err error) {
	e.mu.Lock()
	fns := make([]func(error), 0, len(e.subs.errs))
	for _, fn := range e.subs.errs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()
	e.log.WithFields(logrus.Fields{"error": err}).Warn("Engine error")
	for _, fn := range fns {
		fn(err)
	}
}
