package cache

import "github.com/trainline-solver/railcore/pkg/puzzle"

// HeatLimitCap bounds how many times pkg/gen may raise a single heat-limit
// entry when a cart sits on a SWAPPING_TRACK/SWITCH_RAIL cell. DecoyHeatCap
// is the flat revisit budget given to DECOY carts, which have no per-cell
// limit of their own since they are allowed to loop.
//
// Transcribed from original_source/algo/main.py's module-level
// heatmap_limit_limit (9) and decoy_heatmap_limit (15).
const (
	HeatLimitCap  = 9
	DecoyHeatCap  = 15
)

// AnyOverLimit reports whether any cart in s has exceeded its heat budget
// for the cell/direction pkg/sim.Step just recorded. pkg/gen calls this
// immediately after each sim.Step to decide whether to keep a branch; it is
// the pruning counterpart to the bookkeeping Step itself performs (spec.md
// §4.5 keeps the cap policy out of the simulator so pkg/sim depends only on
// the domain model, never on pkg/cache).
func AnyOverLimit(s *puzzle.State) bool {
	for key, heat := range s.Heat {
		i := s.LiveIndexByID(key.CartID)
		if i == -1 {
			continue
		}
		if s.Live[i].Type == puzzle.Decoy {
			if heat > DecoyHeatCap {
				return true
			}
			continue
		}
		if heat > s.HeatLimit[key] {
			return true
		}
	}
	return false
}

// BumpSwapHeatLimits raises every nonzero heat-limit entry belonging to cart
// by one, capped at HeatLimitCap. It reports false (the branch is
// infeasible and must be dropped) if the entry at cart's current cell and
// direction is already at the cap. Call this once per tick for any cart
// standing on a SWAPPING_TRACK or SWITCH_RAIL cell (pkg/gen, when
// committing a branch), skipping the bump entirely while the cart is
// stalled (spec.md §4.1: a stalled cart hasn't actually looped back yet).
func BumpSwapHeatLimits(s *puzzle.State, cart puzzle.Cart, stalled bool) bool {
	current := puzzle.HeatKey{CartID: cart.ID, Dir: cart.Dir, Row: cart.Row, Col: cart.Col}
	if s.HeatLimit[current] >= HeatLimitCap {
		return false
	}
	if stalled {
		return true
	}
	for key, limit := range s.HeatLimit {
		if key.CartID != cart.ID || limit == 0 {
			continue
		}
		if limit < HeatLimitCap {
			s.HeatLimit[key] = limit + 1
		}
	}
	return true
}
