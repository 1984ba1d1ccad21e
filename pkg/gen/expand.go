package gen

import (
	"github.com/trainline-solver/railcore/pkg/cache"
	"github.com/trainline-solver/railcore/pkg/puzzle"
	"github.com/trainline-solver/railcore/pkg/reach"
	"github.com/trainline-solver/railcore/pkg/sim"
)

// Expand enumerates every track/semaphore placement combination available
// this tick, commits each to its own board, and advances it one tick with
// sim.Step. bestTracksRemaining is the search driver's current incumbent
// (spec.md §9's budget-dominance bound); pass -1 when no solution has been
// found yet. The returned states have already been filtered through
// pkg/cache's heat-limit check and pkg/reach's reachability prefilter, so
// every state Expand returns is a live candidate for pkg/search to enqueue.
//
// Grounded on original_source/algo/main.py's POST-GENERATION loop (building
// cars_generated/usable_tracks) and its itertools.product branch-creation
// step; movement itself is delegated to pkg/sim rather than reimplemented.
func Expand(s *puzzle.State, bestTracksRemaining int) ([]*puzzle.State, error) {
	if allStalled(s) {
		return nil, nil
	}

	n := len(s.Live)
	optionsPerCart := make([][]placement, n)
	for i := range s.Live {
		opts := cartPlacements(s, i, bestTracksRemaining)
		if opts == nil {
			return nil, nil
		}
		optionsPerCart[i] = opts
	}

	var successors []*puzzle.State
	combo := make([]int, n)
	for {
		st, ok, err := commitCombo(s, optionsPerCart, combo)
		if err != nil {
			return nil, err
		}
		if ok && st != nil {
			successors = append(successors, st)
		}
		if !advance(combo, optionsPerCart) {
			break
		}
	}
	return successors, nil
}

func allStalled(s *puzzle.State) bool {
	if len(s.Live) == 0 {
		return false
	}
	for _, stalled := range s.Stalled {
		if !stalled {
			return false
		}
	}
	return true
}

func advance(combo []int, options [][]placement) bool {
	for i := len(combo) - 1; i >= 0; i-- {
		combo[i]++
		if combo[i] < len(options[i]) {
			return true
		}
		combo[i] = 0
	}
	return false
}

func commitCombo(s *puzzle.State, options [][]placement, combo []int) (*puzzle.State, bool, error) {
	cb := s.Clone()
	committed := map[puzzle.Pos]puzzle.TrackKind{}

	for i, cart := range cb.Live {
		p := options[i][combo[i]]
		if !p.commit {
			continue
		}
		dr, dc := cart.Dir.Delta()
		ahead := puzzle.Pos{Row: cart.Row + dr, Col: cart.Col + dc}

		if existing, ok := committed[ahead]; ok && existing != p.track {
			return nil, false, nil
		}
		committed[ahead] = p.track

		cb.Board.SetTrack(ahead.Row, ahead.Col, p.track)
		cb.TracksRemaining--
		if p.semaphore {
			cb.SemaphoresRemaining--
			if cb.SemaphoresRemaining < 0 {
				return nil, false, nil
			}
			cb.Board.SetMod(ahead.Row, ahead.Col, puzzle.ModSemaphore)
			cb.Stalled[i] = true
		}
	}

	ns, err := sim.Step(cb)
	if err != nil {
		return nil, false, err
	}
	if ns == nil {
		return nil, false, nil
	}

	for i, cart := range ns.Live {
		mod := ns.Board.ModAt(cart.Row, cart.Col)
		if mod != puzzle.ModSwappingTrack && mod != puzzle.ModSwitchRail {
			continue
		}
		if !cache.BumpSwapHeatLimits(ns, cart, ns.Stalled[i]) {
			return nil, false, nil
		}
	}

	if cache.AnyOverLimit(ns) {
		return nil, false, nil
	}
	if len(reach.BlockedCarts(ns)) > 0 {
		return nil, false, nil
	}
	return ns, true, nil
}
