// Package clip provides a multi-channel audio clip type plus the
// non-destructive edit transformations the editor core needs:
// sample-accurate trimming, leading-window previews, and fade-outs.
//
// All transformations are pure: they allocate and return new clips and
// never mutate their input. Errors are surfaced synchronously; no
// partial clip is ever returned alongside an error.
package clip
