// Package sim advances a single, fully-committed State by exactly one tick.
// It never decides what track to place in an empty cell ahead of a cart —
// that is pkg/gen's job. Given a board whose every cell already holds a
// definite track, Step resolves switches, gates, semaphores, heat
// bookkeeping, tunnels, stations, and the two crash rules, in the fixed two-phase
// order spec.md §4.2 requires: Phase A (switch/gate/semaphore bookkeeping)
// completes for every live cart before Phase B (movement) begins for any of
// them.
//
// Grounded on original_source/algo/main.py's generate_tracks, which
// interleaves this bookkeeping with track placement; this package keeps only
// the movement-physics half.
package sim
