// Package settings defines the user-tunable audio parameter snapshot and
// the effect-mode bundles that pre-select parameter profiles.
//
// Settings is a small flat value object: every mutation produces a new
// value, so snapshots stored in the edit history can never alias each
// other. The JSON field names are the persistence contract consumed
// verbatim by external preference stores.
package settings
