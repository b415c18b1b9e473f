package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-audioedit/dsp/analyze"
	"github.com/cwbudde/algo-audioedit/dsp/clip"
	"github.com/cwbudde/algo-audioedit/dsp/core"
	"github.com/cwbudde/algo-audioedit/dsp/node"
	"github.com/cwbudde/algo-audioedit/history"
	"github.com/cwbudde/algo-audioedit/settings"
)

// DefaultTickInterval is the cadence of time-update notifications while
// playing.
const DefaultTickInterval = 100 * time.Millisecond

// Engine is a single editing session. All methods are safe for concurrent
// use. Subscription callbacks are invoked outside the engine lock, so a
// callback may call back into the engine.
type Engine struct {
	mu sync.Mutex

	log   *logrus.Entry
	state State

	clp   *clip.Clip
	chain *node.Chain

	settings settings.Settings
	hist     *history.History

	loader Loader
	tick   time.Duration

	// generation counts load requests; a completion whose generation is
	// stale has been superseded and is dropped.
	generation uint64

	// position is the transport offset in seconds. While playing it is
	// the offset at playStart and the live value is derived from the
	// wall clock.
	position  float64
	playStart time.Time
	stopTick  chan struct{}

	// analyzer is reused across Spectrum calls of the same size.
	analyzer     *analyze.Analyzer
	analyzerRate float64

	subs     subscriptions
	disposed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine logging to the given logger.
func WithLogger(l *logrus.Logger) Option {
	return func(e *Engine) {
		e.log = l.WithFields(logrus.Fields{"component": "engine"})
	}
}

// WithLoader sets the source loader used by LoadFile and LoadURL.
func WithLoader(l Loader) Option {
	return func(e *Engine) { e.loader = l }
}

// WithTickInterval overrides the time-update cadence.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.tick = d
		}
	}
}

// WithHistoryCapacity bounds the undo history.
func WithHistoryCapacity(n int) Option {
	return func(e *Engine) {
		e.hist = history.New(e.settings, history.WithMaxEntries(n))
	}
}

// New creates an idle engine seeded with the given settings. The seed is
// clamped and becomes the undo baseline.
func New(defaults settings.Settings, opts ...Option) *Engine {
	e := &Engine{
		log:      logrus.StandardLogger().WithFields(logrus.Fields{"component": "engine"}),
		state:    StateIdle,
		settings: defaults.Clamped(),
		tick:     DefaultTickInterval,
	}
	e.hist = history.New(e.settings)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Settings returns the current settings snapshot.
func (e *Engine) Settings() settings.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// Clip returns the loaded clip, or nil.
func (e *Engine) Clip() *clip.Clip {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clp
}

// Duration returns the clip duration in seconds, or -1 while no decoded
// clip is available (idle or loading).
func (e *Engine) Duration() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.clp == nil || e.state == StateLoading {
		return -1
	}
	return e.clp.Duration()
}

// Position returns the transport offset in seconds.
func (e *Engine) Position() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.positionLocked()
}

func (e *Engine) positionLocked() float64 {
	if e.state != StatePlaying {
		return e.position
	}
	pos := e.position + time.Since(e.playStart).Seconds()
	if e.clp != nil {
		pos = core.Clamp(pos, 0, e.clp.Duration())
	}
	return pos
}

// LoadClip installs an already decoded clip synchronously. Any in-flight
// LoadFile or LoadURL is superseded. Settings survive the reload.
func (e *Engine) LoadClip(c *clip.Clip) error {
	if c == nil {
		return fmt.Errorf("%w: nil clip", ErrDecode)
	}

	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return nil
	}
	e.generation++
	e.attachClipLocked(c)
	notify := e.setStateLocked(StateReady)
	e.mu.Unlock()

	notify()
	return nil
}

// LoadFile decodes the file at path asynchronously. Completion is
// observed through the state and error subscriptions.
func (e *Engine) LoadFile(path string) { e.startLoad(path) }

// LoadURL fetches and decodes the resource at url asynchronously.
func (e *Engine) LoadURL(url string) { e.startLoad(url) }

func (e *Engine) startLoad(src string) {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	if e.loader == nil {
		e.mu.Unlock()
		e.notifyError(fmt.Errorf("%w: no loader configured", ErrDecode))
		return
	}
	e.generation++
	gen := e.generation
	e.stopTickerLocked()
	notify := e.setStateLocked(StateLoading)
	loader := e.loader
	e.mu.Unlock()

	notify()
	e.log.WithFields(logrus.Fields{"source": src}).Info("Loading audio source")

	go func() {
		c, err := loader.Load(context.Background(), src)
		e.finishLoad(gen, src, c, err)
	}()
}

func (e *Engine) finishLoad(gen uint64, src string, c *clip.Clip, err error) {
	e.mu.Lock()
	if e.disposed || gen != e.generation {
		e.mu.Unlock()
		e.log.WithFields(logrus.Fields{"source": src}).Debug("Dropping superseded load result")
		return
	}

	if err != nil {
		notify := e.setStateLocked(StateIdle)
		e.mu.Unlock()
		notify()
		e.notifyError(fmt.Errorf("%w: %s: %v", ErrDecode, src, err))
		return
	}

	e.attachClipLocked(c)
	notify := e.setStateLocked(StateReady)
	dur := c.Duration()
	e.mu.Unlock()

	notify()
	e.log.WithFields(logrus.Fields{
		"source":   src,
		"duration": dur,
	}).Info("Audio source loaded")
}

// attachClipLocked replaces the clip and rebuilds the node chain at the
// clip's sample rate, carrying the current settings over.
func (e *Engine) attachClipLocked(c *clip.Clip) {
	if e.chain != nil {
		e.chain.Dispose()
	}
	e.clp = c
	e.chain = buildChain(c.SampleRate())
	e.routeSettingsLocked(e.settings, 0)
	e.position = 0
}

func buildChain(sampleRate float64) *node.Chain {
	ch := node.NewChain()
	ch.Append(node.NewBassWarmth(sampleRate))
	ch.Append(node.NewClarity(sampleRate))
	ch.Append(node.NewSpatializer(sampleRate))
	ch.Append(node.NewBinaural(sampleRate))
	return ch
}

// Play starts or resumes playback from the current position. No-op
// unless ready or paused.
func (e *Engine) Play() {
	e.playFrom(nil)
}

// PlayFrom starts playback from offset seconds. No-op unless ready or
// paused.
func (e *Engine) PlayFrom(offset float64) {
	e.playFrom(&offset)
}

func (e *Engine) playFrom(offset *float64) {
	e.mu.Lock()
	if e.disposed || e.clp == nil || (e.state != StateReady && e.state != StatePaused) {
		e.mu.Unlock()
		return
	}
	if offset != nil {
		e.position = core.Clamp(*offset, 0, e.clp.Duration())
	}
	e.playStart = time.Now()
	e.startTickerLocked()
	notify := e.setStateLocked(StatePlaying)
	e.mu.Unlock()

	notify()
}

// Pause suspends playback, keeping the position. No-op unless playing.
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.disposed || e.state != StatePlaying {
		e.mu.Unlock()
		return
	}
	e.position = e.positionLocked()
	e.stopTickerLocked()
	notify := e.setStateLocked(StatePaused)
	e.mu.Unlock()

	notify()
}

// Stop halts playback and rewinds to zero. No-op unless playing or
// paused.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.disposed || (e.state != StatePlaying && e.state != StatePaused) {
		e.mu.Unlock()
		return
	}
	e.stopTickerLocked()
	e.position = 0
	notify := e.setStateLocked(StateReady)
	e.mu.Unlock()

	notify()
}

// Seek moves the transport to t seconds, clamped to the clip. Works in
// any state with a loaded clip; playback continues from the new offset.
func (e *Engine) Seek(t float64) {
	e.mu.Lock()
	if e.disposed || e.clp == nil {
		e.mu.Unlock()
		return
	}
	e.position = core.Clamp(t, 0, e.clp.Duration())
	if e.state == StatePlaying {
		e.playStart = time.Now()
	}
	pos := e.position
	e.mu.Unlock()

	e.notifyTime(pos)
}

func (e *Engine) startTickerLocked() {
	e.stopTickerLocked()
	stop := make(chan struct{})
	e.stopTick = stop
	go e.tickLoop(stop)
}

func (e *Engine) stopTickerLocked() {
	if e.stopTick != nil {
		close(e.stopTick)
		e.stopTick = nil
	}
}

func (e *Engine) tickLoop(stop chan struct{}) {
	t := time.NewTicker(e.tick)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			e.mu.Lock()
			// A stale loop can win the select against its closed stop
			// channel; only the current owner may touch transport state.
			if e.stopTick != stop || e.state != StatePlaying || e.clp == nil {
				e.mu.Unlock()
				return
			}
			pos := e.positionLocked()
			dur := e.clp.Duration()
			if pos >= dur {
				// Natural end of clip.
				e.stopTick = nil
				e.position = 0
				notify := e.setStateLocked(StateReady)
				e.mu.Unlock()
				e.notifyTime(dur)
				notify()
				return
			}
			e.mu.Unlock()
			e.notifyTime(pos)
		}
	}
}

// Trim replaces the loaded clip with the span between startSec and
// endSec, frame-accurately. Playback is stopped first; the effect chain
// and its settings are kept since the sample rate does not change.
func (e *Engine) Trim(startSec, endSec float64) error {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return nil
	}
	if e.clp == nil {
		e.mu.Unlock()
		return ErrNotLoaded
	}

	trimmed, err := clip.Trim(e.clp, clip.TrimRange{Start: startSec, End: endSec})
	if err != nil {
		e.mu.Unlock()
		return err
	}
	e.stopTickerLocked()
	e.clp = trimmed
	e.position = 0
	if e.chain != nil {
		e.chain.Reset()
	}
	notify := e.setStateLocked(StateReady)
	dur := trimmed.Duration()
	e.mu.Unlock()

	notify()
	e.log.WithFields(logrus.Fields{"duration": dur}).Info("Clip trimmed")
	return nil
}

// Dispose tears the session down: playback stops, nodes are released and
// all subscriptions are dropped. Every later call is a no-op. Safe to
// call more than once.
func (e *Engine) Dispose() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	e.disposed = true
	e.generation++
	e.stopTickerLocked()
	if e.chain != nil {
		e.chain.Dispose()
		e.chain = nil
	}
	e.clp = nil
	e.state = StateIdle
	e.subs.clear()
	e.mu.Unlock()

	e.log.Info("Engine disposed")
}
