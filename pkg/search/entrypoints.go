package search

import (
	"github.com/trainline-solver/railcore/pkg/gen"
	"github.com/trainline-solver/railcore/pkg/puzzle"
	"github.com/trainline-solver/railcore/pkg/sim"
)

// SimulateTick advances s by one tick (spec.md §6's simulate_tick entry
// point), exposing pkg/sim.Step directly so callers can drive or inspect
// individual ticks without going through the full search.
func SimulateTick(s *puzzle.State) (*puzzle.State, error) {
	return sim.Step(s)
}

// Expand enumerates every successor of s with no incumbent bound (spec.md
// §6's expand entry point), exposing pkg/gen.Expand for testability: every
// candidate this tick could produce is returned, none pruned by dominance.
func Expand(s *puzzle.State) ([]*puzzle.State, error) {
	return gen.Expand(s, -1)
}
