package puzzle

import "testing"

const straightFixture = `
height: 1
width: 3
board:
  - "EMPTY EMPTY CAR_ENDING_TRACK_RIGHT"
mods:
  - "STARTING_CAR_TILE EMPTY EMPTY"
mod_nums:
  - "0 0 0"
max_tracks: 1
max_semaphores: 0
cars:
  - row: 0
    col: 0
    dir: RIGHT
    ordinal: 0
    type: NORMAL
`

func TestFromYAMLDecodesGridsAndCars(t *testing.T) {
	p, err := FromYAML([]byte(straightFixture))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if p.Height != 1 || p.Width != 3 {
		t.Fatalf("dims = %dx%d, want 1x3", p.Height, p.Width)
	}
	want := []TrackKind{Empty, Empty, CarEndingTrackRight}
	for i, k := range want {
		if TrackKind(p.Board[i]) != k {
			t.Errorf("board[%d] = %v, want %v", i, TrackKind(p.Board[i]), k)
		}
	}
	if len(p.Cars) != 1 {
		t.Fatalf("len(Cars) = %d, want 1", len(p.Cars))
	}
	c := p.Cars[0]
	if c.Row != 0 || c.Col != 0 || c.Dir != Right || c.Type != Normal {
		t.Errorf("car = %+v, unexpected", c)
	}
	if _, err := p.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
}

func TestFromYAMLRejectsUnknownTrackKind(t *testing.T) {
	bad := `
height: 1
width: 1
board:
  - "NOT_A_TRACK"
mods:
  - "EMPTY"
mod_nums:
  - "0"
max_tracks: 0
max_semaphores: 0
cars: []
`
	if _, err := FromYAML([]byte(bad)); err == nil {
		t.Fatal("expected an error for an unknown track kind token")
	}
}

func TestFromYAMLRejectsWrongCellCount(t *testing.T) {
	bad := `
height: 2
width: 2
board:
  - "EMPTY EMPTY"
mods:
  - "EMPTY EMPTY"
mod_nums:
  - "0 0"
max_tracks: 0
max_semaphores: 0
cars: []
` // only one row supplied for a 2x2 board: 2 cells decoded, 4 wanted
	if _, err := FromYAML([]byte(bad)); err == nil {
		t.Fatal("expected an error when rows supply fewer cells than height*width")
	}
}

func TestSwapTrackIsAnInvolution(t *testing.T) {
	swappable := []TrackKind{
		BottomRightLeft3Way, BottomRightTop3Way, BottomLeftRight3Way, BottomLeftTop3Way,
		TopRightLeft3Way, TopRightBottom3Way, TopLeftRight3Way, TopLeftBottom3Way,
		BottomRightTurn, TopLeftTurn, BottomLeftTurn, TopRightTurn,
	}
	for _, k := range swappable {
		mirrored := k.SwapTrack()
		if mirrored == k {
			t.Errorf("%v.SwapTrack() returned itself", k)
		}
		if back := mirrored.SwapTrack(); back != k {
			t.Errorf("%v.SwapTrack().SwapTrack() = %v, want %v", k, back, k)
		}
	}
}

func TestSwapTrackPanicsOnNonSwappableKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected SwapTrack to panic on a straight track")
		}
	}()
	Horizontal.SwapTrack()
}
