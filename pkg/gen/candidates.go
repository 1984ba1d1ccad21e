package gen

import (
	"github.com/trainline-solver/railcore/pkg/puzzle"
	"github.com/trainline-solver/railcore/pkg/sim"
)

// placement is one way a cart's empty-cell decision could be committed.
// A zero-value placement (commit == false) means "nothing to decide here":
// the cell ahead is already committed, out of bounds, or the cart is
// blocked this tick, so Expand passes the board through unchanged for this
// cart.
type placement struct {
	commit    bool
	track     puzzle.TrackKind
	semaphore bool
	decoyStop bool
}

func totalHeatAt(s *puzzle.State, pos puzzle.Pos) int {
	total := 0
	for k, v := range s.Heat {
		if k.Row == pos.Row && k.Col == pos.Col {
			total += v
		}
	}
	return total
}

// cartPlacements returns every placement cart idx could commit to this
// tick. A single no-op placement means no decision is needed.
func cartPlacements(s *puzzle.State, idx int, bestTracksRemaining int) []placement {
	cart := s.Live[idx]
	if s.Stalled[idx] {
		return []placement{{}}
	}
	dr, dc := cart.Dir.Delta()
	ahead := puzzle.Pos{Row: cart.Row + dr, Col: cart.Col + dc}
	if !s.Board.InBounds(ahead.Row, ahead.Col) {
		return []placement{{}}
	}

	tileAhead := s.Board.TrackAt(ahead.Row, ahead.Col)
	if tileAhead != puzzle.Empty {
		return existingTrackPlacements(s, cart, ahead, tileAhead)
	}
	return emptyCellPlacements(s, cart, ahead, bestTracksRemaining)
}

func existingTrackPlacements(s *puzzle.State, cart puzzle.Cart, ahead puzzle.Pos, tileAhead puzzle.TrackKind) []placement {
	if s.Board.IsPermanent(ahead.Row, ahead.Col) {
		return []placement{{}}
	}
	if sim.Outgoing(tileAhead, cart.Dir) != puzzle.Crash {
		if !tileAhead.IsStraight() {
			return []placement{{}}
		}
		if totalHeatAt(s, ahead) > 1 {
			return []placement{{}}
		}
		opts := []placement{{}}
		for _, up := range generable3Ways[cart.Dir][tileAhead] {
			opts = append(opts, placement{commit: true, track: up})
		}
		return opts
	}

	upgrades := generable3Ways[cart.Dir][tileAhead]
	if len(upgrades) == 0 {
		return []placement{{}}
	}
	opts := make([]placement, 0, len(upgrades))
	for _, up := range upgrades {
		opts = append(opts, placement{commit: true, track: up})
	}
	return opts
}

func emptyCellPlacements(s *puzzle.State, cart puzzle.Cart, ahead puzzle.Pos, bestTracksRemaining int) []placement {
	base := generableTracks[cart.Dir]

	var opts []placement
	if cart.Type == puzzle.Decoy {
		opts = append(opts, placement{decoyStop: true})
		if s.TracksRemaining-1 <= bestTracksRemaining {
			return opts
		}
	} else if s.TracksRemaining-1 <= bestTracksRemaining {
		return nil
	}

	for _, t := range base {
		opts = append(opts, placement{commit: true, track: t})
		if semaphoreWorthwhile(s, cart, ahead, t) {
			opts = append(opts, placement{commit: true, track: t, semaphore: true})
		}
	}
	return opts
}

// semaphoreWorthwhile transcribes original_source/algo/main.py's semaphore
// candidate check (spec.md §4.3) literally: pos_ahead itself must be
// untouched (EMPTY-mod, zero total heat), and the two semaphore-entry
// neighbours must sum to exactly one prior occupancy once starting-tile
// presence is reconciled — heatmaps never record a cart that is still
// parked on its own starting tile (heat only counts entries reached by
// moving), so starting_tile_heat below restores that missing count for c's
// own current cell while startingOccupancy discounts any neighbour that is
// *some* cart's starting tile, matching the Python's pos0_starting/
// pos1_starting terms exactly.
func semaphoreWorthwhile(s *puzzle.State, cart puzzle.Cart, ahead puzzle.Pos, track puzzle.TrackKind) bool {
	if s.SemaphoresRemaining <= 0 {
		return false
	}
	dirs, ok := sim.SemaphorePass[track]
	if !ok {
		return false
	}
	if s.Board.ModAt(ahead.Row, ahead.Col) != puzzle.ModEmpty {
		return false
	}
	if totalHeatAt(s, ahead) != 0 {
		return false
	}

	startingOccupancy := func(pos puzzle.Pos) int {
		if !s.Board.InBounds(pos.Row, pos.Col) {
			return 0
		}
		if s.Board.ModAt(pos.Row, pos.Col) == puzzle.ModStartingCarTile {
			return 1
		}
		return 0
	}

	dr0, dc0 := dirs[0].Delta()
	dr1, dc1 := dirs[1].Delta()
	n0 := puzzle.Pos{Row: ahead.Row + dr0, Col: ahead.Col + dc0}
	n1 := puzzle.Pos{Row: ahead.Row + dr1, Col: ahead.Col + dc1}

	startingTileHeat := 0
	if s.Board.ModAt(cart.Row, cart.Col) == puzzle.ModStartingCarTile {
		startingTileHeat = 1
	}

	total := totalHeatAt(s, n0) + totalHeatAt(s, n1) -
		startingOccupancy(n0) - startingOccupancy(n1) + startingTileHeat
	return total == 1
}
