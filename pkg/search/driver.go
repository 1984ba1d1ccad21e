package search

import (
	"fmt"

	"github.com/trainline-solver/railcore/pkg/cache"
	"github.com/trainline-solver/railcore/pkg/gen"
	"github.com/trainline-solver/railcore/pkg/puzzle"
)

// Mode selects a traversal strategy. Both are documented to find the same
// set of solutions (spec.md §4.4); they differ only in discovery order and
// memory footprint. It is an explicit Solve argument rather than a package
// constant so a caller can pick per call without a second entry point.
type Mode int

const (
	// ModeDFS pushes every successor onto a stack and explores the deepest,
	// most-recent branch first, comparing every solved state it reaches
	// against the current incumbent.
	ModeDFS Mode = iota
	// ModeBFS buckets states by tracks_remaining and drains buckets from
	// the highest budget down, returning the first solution found: any
	// later bucket can only hold states of equal or lower budget, so the
	// first solution at the highest nonempty bucket is already optimal.
	ModeBFS
)

func (m Mode) String() string {
	switch m {
	case ModeDFS:
		return "DFS"
	case ModeBFS:
		return "BFS"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SolverResult is the outcome of Solve (spec.md §6). A zero-value
// SolverResult with Solved == false means the driver exhausted every
// reachable branch without recording a solution (Infeasible-puzzle,
// spec.md §7); State, TracksRemaining, and SemaphoresRemaining are only
// meaningful when Solved is true.
type SolverResult struct {
	Solved              bool
	State               *puzzle.State
	TracksRemaining     int
	SemaphoresRemaining int
	Iterations          int
}

// Solve builds the initial State from p and runs the requested traversal
// mode to completion, returning the best (maximum tracks_remaining) solved
// state found, or a SolverResult with Solved == false if none exists.
//
// Malformed-input is reported by p.Build returning a *puzzle.ValidationError
// (spec.md §7); Internal-invariant-violation surfaces as the error a
// pkg/sim.Step call inside pkg/gen.Expand returns, already unwrapped from its
// PanicInvariant recovery point.
func Solve(p *puzzle.Puzzle, mode Mode) (*SolverResult, error) {
	start, err := p.Build()
	if err != nil {
		return nil, fmt.Errorf("search: building initial state: %w", err)
	}

	switch mode {
	case ModeDFS:
		return solveDFS(start)
	case ModeBFS:
		return solveBFS(start)
	default:
		return nil, fmt.Errorf("search: unknown mode %v", mode)
	}
}

// isSolved reports whether s is a terminal, acceptable state (spec.md
// §4.4): either every live cart is a decoy and none remain at all, or every
// NORMAL/NUMERAL cart has arrived and at least two ticks have elapsed since
// the last one did (s.TicksSinceAllSolved is read directly off the state
// spec.md §4.4 hands the driver, not recomputed from a carried-in tick
// count — see DESIGN.md's note on this interpretation).
func isSolved(s *puzzle.State) bool {
	if len(s.Live) == 0 {
		return true
	}
	return s.AllNonDecoysSolved() && s.TicksSinceAllSolved >= 2
}

func newResult(s *puzzle.State, iterations int) *SolverResult {
	return &SolverResult{
		Solved:              true,
		State:               s,
		TracksRemaining:     s.TracksRemaining,
		SemaphoresRemaining: s.SemaphoresRemaining,
		Iterations:          iterations,
	}
}

// solveDFS is the recursion-free stack traversal (spec.md §5 forbids a
// recursive driver; depths routinely exceed thousands of ticks). It keeps
// exploring after a first solution to look for one with a higher
// tracks_remaining, pruning any branch dominance rules out first.
//
// Grounded on _examples/dshills-dungo/pkg/dungeon/dungeon.go's Generate
// orchestration, adapted from a fixed five-stage pipeline to a worklist
// drained until empty.
func solveDFS(start *puzzle.State) (*SolverResult, error) {
	stack := []*puzzle.State{start}
	visited := map[cache.Fingerprint]bool{}
	iterations := 0
	var best *SolverResult

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fp := cache.Compute(s)
		if visited[fp] {
			continue
		}
		visited[fp] = true

		bestTracksRemaining := -1
		if best != nil {
			bestTracksRemaining = best.TracksRemaining
		}
		if s.TracksRemaining <= bestTracksRemaining {
			continue
		}

		if isSolved(s) {
			if best == nil || s.TracksRemaining > best.TracksRemaining {
				best = newResult(s, iterations)
			}
			continue
		}

		children, err := gen.Expand(s, bestTracksRemaining)
		iterations++
		if err != nil {
			return nil, fmt.Errorf("search: expanding state: %w", err)
		}
		stack = append(stack, children...)
	}

	if best == nil {
		return &SolverResult{Iterations: iterations}, nil
	}
	best.Iterations = iterations
	return best, nil
}

// solveBFS buckets states by tracks_remaining and drains buckets from the
// highest budget down, returning the first solved state it finds: any state
// still queued in a lower bucket can only ever reach a lower-or-equal
// budget (spec.md §4.3's placements only ever consume budget), so that
// first solution is already optimal.
func solveBFS(start *puzzle.State) (*SolverResult, error) {
	maxBudget := start.TracksRemaining
	buckets := make([][]*puzzle.State, maxBudget+1)
	buckets[maxBudget] = append(buckets[maxBudget], start)

	visited := map[cache.Fingerprint]bool{}
	iterations := 0

	for budget := maxBudget; budget >= 0; budget-- {
		for len(buckets[budget]) > 0 {
			s := buckets[budget][0]
			buckets[budget] = buckets[budget][1:]

			fp := cache.Compute(s)
			if visited[fp] {
				continue
			}
			visited[fp] = true

			if isSolved(s) {
				return newResult(s, iterations), nil
			}

			children, err := gen.Expand(s, -1)
			iterations++
			if err != nil {
				return nil, fmt.Errorf("search: expanding state: %w", err)
			}
			for _, c := range children {
				if c.TracksRemaining < 0 || c.TracksRemaining > maxBudget {
					continue
				}
				buckets[c.TracksRemaining] = append(buckets[c.TracksRemaining], c)
			}
		}
	}
	return &SolverResult{Iterations: iterations}, nil
}
