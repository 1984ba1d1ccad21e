package sim

import (
	"testing"

	"github.com/trainline-solver/railcore/pkg/puzzle"
)

func newTestState(height, width int, tracks map[puzzle.Pos]puzzle.TrackKind, cart puzzle.Cart) *puzzle.State {
	b := puzzle.NewBoard(height, width)
	b.Permanent = make([]bool, height*width)
	for pos, t := range tracks {
		b.SetTrack(pos.Row, pos.Col, t)
		b.Permanent[pos.Row*width+pos.Col] = t != puzzle.Empty
	}
	b.Topo = &puzzle.Topology{
		SwitchGroups:  map[int][]puzzle.Pos{},
		GateGroups:    map[int][]puzzle.Pos{},
		SwapGroups:    map[int][]puzzle.Pos{},
		TunnelGroups:  map[int][]puzzle.Pos{},
		StationGroups: map[int][]puzzle.Pos{},
		PostGroups:    map[int][]puzzle.Pos{},
	}
	return &puzzle.State{
		Board:          b,
		Live:           []puzzle.Cart{cart},
		Stalled:        []bool{false},
		StationStalled: []bool{false},
		QueuedGate:     []puzzle.Pos{{Row: -1, Col: -1}},
		Heat:           make(puzzle.HeatTensor),
		HeatLimit:      make(puzzle.HeatLimitTensor),
	}
}

func TestStepStraightTrackAdvances(t *testing.T) {
	cart := puzzle.Cart{ID: 0, Row: 1, Col: 1, Dir: puzzle.Right, Ordinal: 0, Type: puzzle.Normal}
	s := newTestState(3, 3, map[puzzle.Pos]puzzle.TrackKind{
		{Row: 1, Col: 1}: puzzle.Horizontal,
		{Row: 1, Col: 2}: puzzle.Horizontal,
	}, cart)

	ns, err := Step(s)
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if ns == nil {
		t.Fatal("Step pruned a feasible straight-line move")
	}
	if got := ns.Live[0].Pos(); got != (puzzle.Pos{Row: 1, Col: 2}) {
		t.Errorf("cart position = %v, want (1,2)", got)
	}
	if ns.Live[0].Dir != puzzle.Right {
		t.Errorf("cart direction = %v, want RIGHT", ns.Live[0].Dir)
	}
}

func TestStepNormalCrashIsPruned(t *testing.T) {
	cart := puzzle.Cart{ID: 0, Row: 1, Col: 1, Dir: puzzle.Right, Ordinal: 0, Type: puzzle.Normal}
	s := newTestState(3, 3, map[puzzle.Pos]puzzle.TrackKind{
		{Row: 1, Col: 1}: puzzle.Horizontal,
		{Row: 1, Col: 2}: puzzle.Vertical,
	}, cart)

	ns, err := Step(s)
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if ns != nil {
		t.Fatal("Step should have pruned a NORMAL cart crashing into a mismatched track")
	}
}

func TestStepDecoyCrashIsRecorded(t *testing.T) {
	cart := puzzle.Cart{ID: 0, Row: 1, Col: 1, Dir: puzzle.Right, Ordinal: 0, Type: puzzle.Decoy}
	s := newTestState(3, 3, map[puzzle.Pos]puzzle.TrackKind{
		{Row: 1, Col: 1}: puzzle.Horizontal,
		{Row: 1, Col: 2}: puzzle.Vertical,
	}, cart)

	ns, err := Step(s)
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if ns == nil {
		t.Fatal("a DECOY crash should produce a live state, not a prune")
	}
	if len(ns.Live) != 0 {
		t.Errorf("crashed decoy should leave Live empty, got %d", len(ns.Live))
	}
	if len(ns.Crashed) != 1 {
		t.Fatalf("expected 1 crashed decoy, got %d", len(ns.Crashed))
	}
}

func TestStepBorderCrash(t *testing.T) {
	cart := puzzle.Cart{ID: 0, Row: 0, Col: 2, Dir: puzzle.Right, Ordinal: 0, Type: puzzle.Decoy}
	s := newTestState(3, 3, map[puzzle.Pos]puzzle.TrackKind{
		{Row: 0, Col: 2}: puzzle.Horizontal,
	}, cart)

	ns, err := Step(s)
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if ns == nil || len(ns.Crashed) != 1 {
		t.Fatal("decoy driving off the border should crash, not be pruned")
	}
}

func TestStepTunnelTeleports(t *testing.T) {
	cart := puzzle.Cart{ID: 0, Row: 1, Col: 0, Dir: puzzle.Right, Ordinal: 0, Type: puzzle.Normal}
	s := newTestState(3, 3, map[puzzle.Pos]puzzle.TrackKind{
		{Row: 1, Col: 0}: puzzle.Horizontal,
		{Row: 1, Col: 1}: puzzle.LeftFacingTunnel,
		{Row: 1, Col: 2}: puzzle.RightFacingTunnel,
	}, cart)
	s.Board.Topo.TunnelGroups[1] = []puzzle.Pos{{Row: 1, Col: 1}, {Row: 1, Col: 2}}
	s.Board.SetMod(1, 1, puzzle.ModTunnel)
	s.Board.SetMod(1, 2, puzzle.ModTunnel)
	s.Board.ModNum[1*3+1] = 1
	s.Board.ModNum[1*3+2] = 1

	ns, err := Step(s)
	if err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if ns == nil {
		t.Fatal("tunnel entry should not be pruned")
	}
	if got := ns.Live[0].Pos(); got != (puzzle.Pos{Row: 1, Col: 2}) {
		t.Errorf("cart position after tunnel = %v, want (1,2)", got)
	}
	if ns.Live[0].Dir != puzzle.Right {
		t.Errorf("cart direction after tunnel = %v, want RIGHT", ns.Live[0].Dir)
	}
}
