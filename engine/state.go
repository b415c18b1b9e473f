package engine

// State is the engine lifecycle state.
type State int

const (
	// StateIdle means no audio is loaded. Decode failures return here.
	StateIdle State = iota
	// StateLoading means a source is being decoded. Re-entered when a
	// new source replaces the current one mid-session.
	StateLoading
	// StateReady means audio is loaded and transport is stopped.
	StateReady
	// StatePlaying means the position is advancing.
	StatePlaying
	// StatePaused means playback is suspended at a captured position.
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
