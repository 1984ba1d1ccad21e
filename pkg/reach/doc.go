// Package reach is a supplemental, sound pruning filter with no precedent
// in the original solver: a BFS over board cells that a cart could
// conceivably still occupy, used to reject a branch before pkg/gen spends
// any effort enumerating track placements for it.
//
// Reachable is a pure over-approximation. It never simulates a cart, never
// consults heat, and never accounts for gates or semaphores closing a path
// later — it only asks "is there any sequence of adjacent, non-permanently-
// blocked cells from here to there at all". Because it only adds cells a
// real run could use, dropping a state for which Reachable is false can
// never discard a feasible solution: pkg/gen calls it purely to cut
// search effort, and removing the call entirely (always returning true)
// changes performance, never Solve's result set.
//
// Grounded on the BFS-over-adjacency idiom shared by pkg/graph.GetReachable
// and pkg/validation.Agent's exploration walk, retargeted from a room graph
// to a puzzle.Board grid.
package reach
