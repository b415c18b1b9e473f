// Package history implements the bounded undo/redo ledger over settings
// snapshots: a strictly linear, command-less log of immutable values with
// standard editor-history semantics. Pushing while undone truncates the
// redo tail; exceeding the capacity evicts the oldest entry. The true
// default settings are kept outside the log, so Reset restores them even
// after the baseline entry has been evicted.
package history
