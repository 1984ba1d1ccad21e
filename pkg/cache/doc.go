// Package cache holds the two pruning mechanisms of the search: a bound on
// how hot a cell may get before a branch is abandoned as looping (checked by
// pkg/gen after every pkg/sim.Step), and a deterministic fingerprint pkg/search
// uses to recognize a state it has already visited.
//
// Like pkg/sim, this package depends only on the domain model (spec.md §2);
// it never imports pkg/sim or pkg/gen.
package cache
