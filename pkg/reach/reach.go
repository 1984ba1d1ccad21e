package reach

import "github.com/trainline-solver/railcore/pkg/puzzle"

// Reachable returns every cell on board that can be reached from from by a
// 4-connected walk that never crosses a permanent ROADBLOCK. Every other
// cell — empty, a non-permanent piece, or any other permanent track kind —
// is treated as passable, since pkg/gen could still place or already has
// placed a track through it; the over-approximation is what keeps this
// filter sound (see package doc).
func Reachable(board *puzzle.Board, from puzzle.Pos) map[puzzle.Pos]bool {
	seen := map[puzzle.Pos]bool{from: true}
	queue := []puzzle.Pos{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range []puzzle.Direction{puzzle.Left, puzzle.Right, puzzle.Down, puzzle.Up} {
			dr, dc := d.Delta()
			next := puzzle.Pos{Row: cur.Row + dr, Col: cur.Col + dc}
			if !board.InBounds(next.Row, next.Col) || seen[next] {
				continue
			}
			if board.IsPermanent(next.Row, next.Col) && board.TrackAt(next.Row, next.Col) == puzzle.Roadblock {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return seen
}

// CanReach reports whether to is in Reachable(board, from).
func CanReach(board *puzzle.Board, from, to puzzle.Pos) bool {
	return Reachable(board, from)[to]
}

// hasMatchingEnding reports whether pos already holds a committed ending
// track that cart could use: a CarEndingTrack* for a NORMAL cart or
// NCarEndingTrack* for a NUMERAL cart.
func hasMatchingEnding(board *puzzle.Board, pos puzzle.Pos, cart puzzle.Cart) bool {
	t := board.TrackAt(pos.Row, pos.Col)
	switch cart.Type {
	case puzzle.Normal:
		return t.IsCarEnding()
	case puzzle.Numeral:
		return t.IsNumeralEnding()
	default:
		return false
	}
}

// BlockedCarts returns the Live indices of every NORMAL/NUMERAL cart whose
// reachable region (from its current cell) contains neither an existing
// matching ending track nor any non-permanent cell, other than the cell the
// cart stands on, that pkg/gen could still place track on. Such a cart can never finish, so the caller (pkg/gen, on each
// successor it builds) drops the whole state before it is ever expanded. DECOY carts are
// never reported: they have no destination to fail to reach.
func BlockedCarts(s *puzzle.State) []int {
	var blocked []int
	for i, cart := range s.Live {
		if cart.Type != puzzle.Normal && cart.Type != puzzle.Numeral {
			continue
		}
		region := Reachable(s.Board, cart.Pos())

		canFinish := false
		for pos := range region {
			if hasMatchingEnding(s.Board, pos, cart) {
				canFinish = true
				break
			}
			if pos != cart.Pos() && !s.Board.IsPermanent(pos.Row, pos.Col) {
				canFinish = true
				break
			}
		}
		if !canFinish {
			blocked = append(blocked, i)
		}
	}
	return blocked
}
