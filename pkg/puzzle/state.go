package puzzle

// HeatKey identifies one (cart, direction, cell) slot of the heat tensor.
type HeatKey struct {
	CartID int
	Dir    Direction
	Row    int
	Col    int
}

// HeatTensor counts how many times each cart has entered each cell while
// facing each direction. Absent keys count as zero.
type HeatTensor map[HeatKey]int

// HeatLimitTensor caps how high the corresponding HeatTensor entry may
// climb before a state is pruned as infeasible. Absent keys default to 0
// ("never visited"); a first traversal bumps the limit to 1.
type HeatLimitTensor map[HeatKey]int

func (h HeatTensor) clone() HeatTensor {
	nh := make(HeatTensor, len(h))
	for k, v := range h {
		nh[k] = v
	}
	return nh
}

func (h HeatLimitTensor) clone() HeatLimitTensor {
	nh := make(HeatLimitTensor, len(h))
	for k, v := range h {
		nh[k] = v
	}
	return nh
}

// State is the complete mutable search state. States are created by
// pkg/gen per branch, consumed by pkg/search, and never mutated again once
// enqueued — each successor is built from a Clone of its parent.
type State struct {
	Board *Board

	// Live holds every non-crashed cart in the stable interleaving order:
	// all NORMAL carts by ascending ordinal, then all DECOY carts by
	// ascending ordinal, then all NUMERAL carts by ascending ordinal.
	Live []Cart

	// Crashed holds crashed-decoy records (frozen, treated as static
	// obstacles). Other cart types never appear here: a non-decoy crash
	// makes pkg/sim.Step drop the branch as infeasible instead of being
	// recorded as a terminal state.
	Crashed []Cart

	TracksRemaining     int
	SemaphoresRemaining int

	// Stalled, StationStalled, and QueuedGate are parallel to Live.
	Stalled        []bool
	StationStalled []bool
	QueuedGate     []Pos // noPos means "nothing queued"

	Heat      HeatTensor
	HeatLimit HeatLimitTensor

	SolvedNormals  []int // ordinals of NORMAL carts that have finished, in arrival order
	SolvedNumerals []int // ordinals of NUMERAL carts that have finished, in arrival order

	TicksSinceAllSolved int
}

// SolvedOrder returns the solved-ordinal list for NORMAL or NUMERAL carts.
// It panics for DECOY/CRASHED, which have no solved-order concept.
func (s *State) SolvedOrder(t CartType) []int {
	switch t {
	case Normal:
		return s.SolvedNormals
	case Numeral:
		return s.SolvedNumerals
	default:
		panic("puzzle: SolvedOrder is only defined for NORMAL and NUMERAL")
	}
}

// LiveIndexByID returns the index into Live of the cart with the given ID,
// or -1 if no live cart has that ID (it may have crashed).
func (s *State) LiveIndexByID(id int) int {
	for i, c := range s.Live {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// AllNonDecoysSolved reports whether every NORMAL and NUMERAL cart has
// reached its destination (i.e. no live NORMAL/NUMERAL carts remain).
func (s *State) AllNonDecoysSolved() bool {
	for _, c := range s.Live {
		if c.Type == Normal || c.Type == Numeral {
			return false
		}
	}
	return true
}

// Clone deep-copies every mutable field so the returned State shares no
// backing storage with s. Board.Topo is the one deliberate exception (see
// Board.Clone) since it never changes after construction.
func (s *State) Clone() *State {
	ns := &State{
		Board:               s.Board.Clone(),
		Live:                append([]Cart(nil), s.Live...),
		Crashed:             append([]Cart(nil), s.Crashed...),
		TracksRemaining:     s.TracksRemaining,
		SemaphoresRemaining: s.SemaphoresRemaining,
		Stalled:             append([]bool(nil), s.Stalled...),
		StationStalled:      append([]bool(nil), s.StationStalled...),
		QueuedGate:          append([]Pos(nil), s.QueuedGate...),
		Heat:                s.Heat.clone(),
		HeatLimit:           s.HeatLimit.clone(),
		SolvedNormals:       append([]int(nil), s.SolvedNormals...),
		SolvedNumerals:      append([]int(nil), s.SolvedNumerals...),
		TicksSinceAllSolved: s.TicksSinceAllSolved,
	}
	return ns
}
