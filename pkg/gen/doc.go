// Package gen enumerates the candidate track and semaphore placements a
// tick could commit to, builds the resulting committed boards, and advances
// each one with pkg/sim.Step to produce the successor states pkg/search
// explores. It decides WHAT to place; pkg/sim decides what happens once a
// board is fully committed, so Expand calls sim.Step once per candidate
// combination rather than reimplementing movement.
//
// Grounded on original_source/algo/main.py's POST-GENERATION and branch
// creation sections (the generable_tracks/generable3_ways tables and the
// itertools.product combination loop), split from the movement logic that
// lives in pkg/sim.
package gen
