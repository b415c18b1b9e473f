// Package engine orchestrates one editing session: loading decoded audio,
// the live effect-node chain, transport (play/pause/seek/stop), parameter
// routing, and the undo/redo wiring between settings snapshots and the
// chain.
//
// Each Engine instance is independent; there is no global registry. The
// engine is the only writer of the node graph, the decoded clip, and the
// playback position. External layers observe it exclusively through the
// subscription callbacks (state, time, settings, error) and the read
// accessors.
//
// The engine owns no audio output device. Playback advances a wall-clock
// position and emits time updates for a UI transport; audible rendering
// is the host platform's concern, fed by Render and RenderPreview.
package engine
