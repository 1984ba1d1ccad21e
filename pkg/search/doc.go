// Package search is the driver that turns an initial puzzle.State into a
// SolverResult: it repeatedly calls pkg/gen.Expand, dedupes by
// pkg/cache.Fingerprint, tracks the best (maximum tracks_remaining) solved
// state found so far, and prunes any branch that can no longer beat it.
//
// The orchestration shape is validate input, derive deterministic working
// state, run stages in order, wrap every stage error with fmt.Errorf("...:
// %w", err) — adapted here from a linear run into an iterative worklist
// pump that runs Expand until no candidate state remains or a dominance
// bound closes every open branch.
package search
