package reach

import (
	"testing"

	"github.com/trainline-solver/railcore/pkg/puzzle"
)

func emptyBoard(h, w int) *puzzle.Board {
	b := puzzle.NewBoard(h, w)
	b.Permanent = make([]bool, h*w)
	return b
}

func TestReachableOpenBoardCoversEveryCell(t *testing.T) {
	b := emptyBoard(3, 3)
	region := Reachable(b, puzzle.Pos{Row: 1, Col: 1})
	if len(region) != 9 {
		t.Fatalf("expected all 9 cells reachable on an open board, got %d", len(region))
	}
}

func TestReachableStopsAtRoadblock(t *testing.T) {
	b := emptyBoard(1, 3)
	b.SetTrack(0, 1, puzzle.Roadblock)
	b.Permanent[1] = true

	region := Reachable(b, puzzle.Pos{Row: 0, Col: 0})
	if region[puzzle.Pos{Row: 0, Col: 2}] {
		t.Fatal("roadblock should have cut off the far cell")
	}
	if !region[puzzle.Pos{Row: 0, Col: 0}] {
		t.Fatal("start cell should always be reachable")
	}
}

func TestBlockedCartsDetectsSealedNormal(t *testing.T) {
	b := emptyBoard(1, 3)
	b.SetTrack(0, 1, puzzle.Roadblock)
	b.Permanent[1] = true
	b.SetTrack(0, 2, puzzle.CarEndingTrackRight)
	b.Permanent[2] = true
	b.Topo = &puzzle.Topology{StationGroups: map[int][]puzzle.Pos{}, PostGroups: map[int][]puzzle.Pos{}, SwitchGroups: map[int][]puzzle.Pos{}, GateGroups: map[int][]puzzle.Pos{}, SwapGroups: map[int][]puzzle.Pos{}, TunnelGroups: map[int][]puzzle.Pos{}}

	s := &puzzle.State{
		Board: b,
		Live:  []puzzle.Cart{{ID: 0, Row: 0, Col: 0, Dir: puzzle.Right, Type: puzzle.Normal}},
	}
	blocked := BlockedCarts(s)
	if len(blocked) != 1 {
		t.Fatalf("expected the sealed cart to be reported blocked, got %v", blocked)
	}
}

func TestBlockedCartsAllowsOpenPath(t *testing.T) {
	b := emptyBoard(1, 3)
	s := &puzzle.State{
		Board: b,
		Live:  []puzzle.Cart{{ID: 0, Row: 0, Col: 0, Dir: puzzle.Right, Type: puzzle.Normal}},
	}
	if blocked := BlockedCarts(s); len(blocked) != 0 {
		t.Fatalf("a cart with open, non-permanent cells ahead should not be blocked, got %v", blocked)
	}
}
