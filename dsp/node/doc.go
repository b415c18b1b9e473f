// Package node implements the tunable stages of the stereo effect chain:
// bass warmth (low shelf), presence/clarity (peaking EQ), bilateral "8D"
// spatialization (equal-power auto-pan), and binaural-beat injection.
//
// Every stage satisfies the same Node contract: a normalized 0-100 amount
// mapped to physical units via dsp/params, a secondary tuning axis, and
// smoothed parameter ramps so rapid changes never produce audible clicks.
// Constructors never fail, nodes start in a neutral state, and every call
// on a disposed node is a no-op.
//
// Nodes are real-time safe and not thread-safe; the owning engine
// serializes access.
package node
