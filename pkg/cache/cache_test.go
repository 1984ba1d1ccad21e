package cache

import (
	"testing"

	"github.com/trainline-solver/railcore/pkg/puzzle"
)

func baseState() *puzzle.State {
	b := puzzle.NewBoard(2, 2)
	b.Permanent = make([]bool, 4)
	b.Topo = &puzzle.Topology{
		SwitchGroups: map[int][]puzzle.Pos{}, GateGroups: map[int][]puzzle.Pos{},
		SwapGroups: map[int][]puzzle.Pos{}, TunnelGroups: map[int][]puzzle.Pos{},
		StationGroups: map[int][]puzzle.Pos{}, PostGroups: map[int][]puzzle.Pos{},
	}
	return &puzzle.State{
		Board:          b,
		Live:           []puzzle.Cart{{ID: 0, Row: 0, Col: 0, Dir: puzzle.Right, Type: puzzle.Normal}},
		Stalled:        []bool{false},
		StationStalled: []bool{false},
		QueuedGate:     []puzzle.Pos{{Row: -1, Col: -1}},
		Heat:           make(puzzle.HeatTensor),
		HeatLimit:      make(puzzle.HeatLimitTensor),
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	s1 := baseState()
	s2 := baseState()
	if Compute(s1) != Compute(s2) {
		t.Fatal("identical states produced different fingerprints")
	}
	s2.TracksRemaining = 3
	if Compute(s1) == Compute(s2) {
		t.Fatal("differing states produced the same fingerprint")
	}
}

func TestAnyOverLimitNormalCart(t *testing.T) {
	s := baseState()
	key := puzzle.HeatKey{CartID: 0, Dir: puzzle.Right, Row: 0, Col: 0}
	s.HeatLimit[key] = 1
	s.Heat[key] = 1
	if AnyOverLimit(s) {
		t.Fatal("heat equal to limit should not be over")
	}
	s.Heat[key] = 2
	if !AnyOverLimit(s) {
		t.Fatal("heat exceeding limit should be over")
	}
}

func TestAnyOverLimitDecoyUsesFlatCap(t *testing.T) {
	s := baseState()
	s.Live[0].Type = puzzle.Decoy
	key := puzzle.HeatKey{CartID: 0, Dir: puzzle.Right, Row: 0, Col: 0}
	s.Heat[key] = DecoyHeatCap
	if AnyOverLimit(s) {
		t.Fatal("heat at the decoy cap should not be over")
	}
	s.Heat[key] = DecoyHeatCap + 1
	if !AnyOverLimit(s) {
		t.Fatal("heat beyond the decoy cap should be over")
	}
}

func TestBumpSwapHeatLimitsRejectsAtCap(t *testing.T) {
	s := baseState()
	cart := s.Live[0]
	key := puzzle.HeatKey{CartID: cart.ID, Dir: cart.Dir, Row: cart.Row, Col: cart.Col}
	s.HeatLimit[key] = HeatLimitCap
	if BumpSwapHeatLimits(s, cart, false) {
		t.Fatal("bumping a heat limit already at the cap should fail")
	}
}
