package sim

import "github.com/trainline-solver/railcore/pkg/puzzle"

// isGateOrSem reports whether a cell currently blocks entry: a CLOSED gate
// or an active semaphore. An OPEN gate is passable, so it is deliberately
// excluded here.
func isGateOrSem(m puzzle.ModKind) bool {
	return m == puzzle.ModClosedGate || m == puzzle.ModSemaphore
}

func posAhead(c puzzle.Cart) puzzle.Pos {
	dr, dc := c.Dir.Delta()
	return puzzle.Pos{Row: c.Row + dr, Col: c.Col + dc}
}

func TunnelExitDir(t puzzle.TrackKind) puzzle.Direction {
	switch t {
	case puzzle.LeftFacingTunnel:
		return puzzle.Left
	case puzzle.RightFacingTunnel:
		return puzzle.Right
	case puzzle.DownFacingTunnel:
		return puzzle.Down
	case puzzle.UpFacingTunnel:
		return puzzle.Up
	default:
		puzzle.PanicInvariant("sim: tunnelExitDir called on non-tunnel kind %d", t)
		return puzzle.Crash
	}
}

// Step advances s by one tick and returns the resulting State. A nil, nil
// result means the branch is infeasible (a non-decoy crashed, left the
// board, or reached an ending it may not take yet) and should simply be
// dropped by the caller, never treated as an error. Step records heat but
// does not compare it against heat limits; pkg/gen does that afterwards via
// pkg/cache. A non-nil error is an *puzzle.InvariantError: Step recovers any
// PanicInvariant raised while it runs and returns it here.
//
// Grounded on original_source/algo/main.py's generate_tracks PRE-GENERATION
// and POST-GENERATION sections, split here into Phase A (switches, gates,
// semaphores, heat bookkeeping) and Phase B (station/gate stalls, movement,
// tunnels, arrivals, crashes) with Phase A completing in full for every cart
// before Phase B starts for any cart (spec.md §4.2's ordering requirement).
func Step(s *puzzle.State) (st *puzzle.State, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*puzzle.InvariantError); ok {
				st, err = nil, ie
				return
			}
			panic(r)
		}
	}()

	ns := s.Clone()
	if pruned := phaseA(ns); pruned {
		return nil, nil
	}
	return phaseB(ns)
}

func phaseA(ns *puzzle.State) (pruned bool) {
	board := ns.Board

	for i, cart := range ns.Live {
		if ns.QueuedGate[i] != (puzzle.Pos{Row: -1, Col: -1}) && cart.Pos() != ns.QueuedGate[i] {
			board.SetMod(ns.QueuedGate[i].Row, ns.QueuedGate[i].Col, puzzle.ModClosedGate)
			ns.QueuedGate[i] = puzzle.Pos{Row: -1, Col: -1}
		}

		mod := board.ModAt(cart.Row, cart.Col)
		group := board.ModNumAt(cart.Row, cart.Col)

		switch {
		case !ns.Stalled[i] && mod == puzzle.ModSwitch:
			for _, gp := range board.Topo.GateGroups[group] {
				if board.ModAt(gp.Row, gp.Col) == puzzle.ModOpenGate {
					if owner := cartIndexAt(ns, gp); owner != -1 {
						ns.QueuedGate[owner] = gp
					} else {
						board.SetMod(gp.Row, gp.Col, puzzle.ModClosedGate)
					}
				} else {
					board.SetMod(gp.Row, gp.Col, puzzle.ModOpenGate)
				}
			}
			for _, sp := range board.Topo.SwapGroups[group] {
				board.SwapTrackAt(sp.Row, sp.Col)
			}
		case !ns.Stalled[i] && mod == puzzle.ModSwitchRail:
			board.SwapTrackAt(cart.Row, cart.Col)
		}
	}

	for i, cart := range ns.Live {
		ahead := posAhead(cart)
		if !board.InBounds(ahead.Row, ahead.Col) {
			continue
		}

		onStation := cart.Type != puzzle.Decoy &&
			board.ModAt(cart.Row, cart.Col) == puzzle.ModStation &&
			board.ModNumAt(cart.Row, cart.Col) == cart.Ordinal+1
		if !(onStation || ns.StationStalled[i]) && !isGateOrSem(board.ModAt(ahead.Row, ahead.Col)) {
			key := puzzle.HeatKey{CartID: cart.ID, Dir: cart.Dir, Row: cart.Row, Col: cart.Col}
			if ns.HeatLimit[key] == 0 {
				ns.HeatLimit[key] = 1
			}
			ns.Heat[key]++
		}

		if board.ModAt(ahead.Row, ahead.Col) == puzzle.ModSemaphore {
			resolveSemaphore(ns, cart, ahead)
		}
	}
	return false
}

func cartIndexAt(ns *puzzle.State, pos puzzle.Pos) int {
	for i, c := range ns.Live {
		if c.Pos() == pos {
			return i
		}
	}
	return -1
}

func resolveSemaphore(ns *puzzle.State, cart puzzle.Cart, semPos puzzle.Pos) {
	board := ns.Board
	underlying := board.TrackAt(semPos.Row, semPos.Col).Underlying()
	dirs, ok := SemaphorePass[underlying]
	if !ok {
		return
	}
	for _, semDir := range dirs {
		dr, dc := semDir.Delta()
		release := puzzle.Pos{Row: semPos.Row + dr, Col: semPos.Col + dc}
		if !board.InBounds(release.Row, release.Col) {
			continue
		}
		for _, p := range ns.Live {
			if p.ID == cart.ID {
				continue
			}
			if p.Pos() == release && p.Dir != semDir.Reverse() {
				board.SetMod(semPos.Row, semPos.Col, puzzle.ModDeactivated)
				return
			}
		}
	}
}

type moveResult struct {
	stationary bool
	crashed    bool
	solved     bool
	pos        puzzle.Pos
	dir        puzzle.Direction
}

func phaseB(ns *puzzle.State) (*puzzle.State, error) {
	board := ns.Board
	n := len(ns.Live)
	results := make([]moveResult, n)

	for i, cart := range ns.Live {
		ahead := posAhead(cart)

		if !board.InBounds(ahead.Row, ahead.Col) {
			if cart.Type == puzzle.Decoy {
				results[i] = moveResult{crashed: true}
				continue
			}
			return nil, nil
		}

		if cart.Type != puzzle.Decoy {
			onStation := board.ModAt(cart.Row, cart.Col) == puzzle.ModStation &&
				board.ModNumAt(cart.Row, cart.Col) == cart.Ordinal+1
			if onStation && !ns.StationStalled[i] {
				ns.StationStalled[i] = true
				board.SetMod(cart.Row, cart.Col, puzzle.ModDeactivated)
				results[i] = moveResult{stationary: true}
				continue
			}
			if ns.StationStalled[i] {
				ns.StationStalled[i] = false
				results[i] = moveResult{stationary: true}
				continue
			}
		}

		if isGateOrSem(board.ModAt(ahead.Row, ahead.Col)) {
			ns.Stalled[i] = true
			results[i] = moveResult{stationary: true}
			continue
		}
		ns.Stalled[i] = false

		tileAhead := board.TrackAt(ahead.Row, ahead.Col)
		redirect := Outgoing(tileAhead, cart.Dir)
		if redirect == puzzle.Crash {
			if cart.Type == puzzle.Decoy {
				results[i] = moveResult{crashed: true}
				continue
			}
			return nil, nil
		}

		newPos, newDir := ahead, redirect
		if tileAhead.IsTunnel() {
			pair, ok := board.TunnelPair(ahead)
			if !ok {
				puzzle.PanicInvariant("sim: tunnel cell %v has no paired exit", ahead)
			}
			newPos = pair
			newDir = TunnelExitDir(board.TrackAt(pair.Row, pair.Col))
		} else if tileAhead.IsCarEnding() || tileAhead.IsNumeralEnding() {
			wantNumeral := tileAhead.IsNumeralEnding()
			if (cart.Type == puzzle.Numeral) != wantNumeral {
				return nil, nil
			}
			order := ns.SolvedNormals
			if wantNumeral {
				order = ns.SolvedNumerals
			}
			if cart.Ordinal != len(order) {
				return nil, nil
			}
			group := cart.Ordinal + 1
			stations := board.Topo.StationGroups[group]
			if wantNumeral {
				stations = board.Topo.PostGroups[group]
			}
			for _, sp := range stations {
				if board.ModAt(sp.Row, sp.Col) != puzzle.ModDeactivated {
					return nil, nil
				}
			}
			results[i] = moveResult{solved: true, pos: newPos, dir: newDir}
			continue
		}

		results[i] = moveResult{pos: newPos, dir: newDir}
	}

	if pruned := applyCrossCartCrashes(ns, results); pruned {
		return nil, nil
	}

	return commit(ns, results), nil
}

// applyCrossCartCrashes resolves same-tile and head-on collisions among the
// carts that moved this tick. Any collision touching a NORMAL/NUMERAL cart
// makes the branch infeasible; a collision among only DECOYs crashes them.
func applyCrossCartCrashes(ns *puzzle.State, results []moveResult) (pruned bool) {
	dest := map[puzzle.Pos][]int{}
	for i, r := range results {
		if r.stationary || r.crashed || r.solved {
			continue
		}
		dest[r.pos] = append(dest[r.pos], i)
	}

	crashGroup := func(idxs []int) bool {
		for _, i := range idxs {
			if ns.Live[i].Type != puzzle.Decoy {
				return true
			}
		}
		return false
	}

	for _, idxs := range dest {
		if len(idxs) < 2 {
			continue
		}
		if crashGroup(idxs) {
			return true
		}
		for _, i := range idxs {
			results[i] = moveResult{crashed: true}
		}
	}

	for i, ri := range results {
		if ri.stationary || ri.crashed || ri.solved {
			continue
		}
		for j := i + 1; j < len(results); j++ {
			rj := results[j]
			if rj.stationary || rj.crashed || rj.solved {
				continue
			}
			if ri.pos == ns.Live[j].Pos() && rj.pos == ns.Live[i].Pos() {
				if ns.Live[i].Type != puzzle.Decoy || ns.Live[j].Type != puzzle.Decoy {
					return true
				}
				results[i] = moveResult{crashed: true}
				results[j] = moveResult{crashed: true}
			}
		}
	}
	return false
}

func commit(ns *puzzle.State, results []moveResult) *puzzle.State {
	var live []puzzle.Cart
	var stalled, stationStalled []bool
	var queued []puzzle.Pos
	var crashed []puzzle.Cart

	for i, cart := range ns.Live {
		r := results[i]
		switch {
		case r.crashed:
			if cart.Type == puzzle.Decoy {
				crashed = append(crashed, cart)
			}
		case r.solved:
			if cart.Type == puzzle.Normal {
				ns.SolvedNormals = append(ns.SolvedNormals, cart.Ordinal)
			} else {
				ns.SolvedNumerals = append(ns.SolvedNumerals, cart.Ordinal)
			}
		case r.stationary:
			live = append(live, cart)
			stalled = append(stalled, ns.Stalled[i])
			stationStalled = append(stationStalled, ns.StationStalled[i])
			queued = append(queued, ns.QueuedGate[i])
		default:
			cart.Row, cart.Col, cart.Dir = r.pos.Row, r.pos.Col, r.dir
			live = append(live, cart)
			stalled = append(stalled, ns.Stalled[i])
			stationStalled = append(stationStalled, ns.StationStalled[i])
			queued = append(queued, ns.QueuedGate[i])
		}
	}

	ns.Live = live
	ns.Stalled = stalled
	ns.StationStalled = stationStalled
	ns.QueuedGate = queued
	ns.Crashed = append(ns.Crashed, crashed...)

	if ns.AllNonDecoysSolved() {
		ns.TicksSinceAllSolved++
	} else {
		ns.TicksSinceAllSolved = 0
	}
	return ns
}
