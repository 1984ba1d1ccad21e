package puzzle

import "fmt"

// Topology indexes the fixed, structural mod groups of a board — the
// switch/gate/swapping-track groups, tunnel pairs, and station/post-office
// assignments — that never move over the course of a search. It is built
// once from the initial Puzzle (Puzzle.Build) and shared by pointer across
// every forked State; only Board.Mod (which cell currently shows which mod
// kind, e.g. OPEN_GATE vs CLOSED_GATE) mutates per branch.
//
// Grounded on pkg/carving/types.go's flat, row-major grid layering: the
// topology plays the same "named layer on top of the raw grid" role the
// teacher's carving.Layer plays over its tile Data array.
type Topology struct {
	SwitchGroups  map[int][]Pos // group -> SWITCH cells
	GateGroups    map[int][]Pos // group -> CLOSED_GATE/OPEN_GATE cells
	SwapGroups    map[int][]Pos // group -> SWAPPING_TRACK cells
	TunnelGroups  map[int][]Pos // group -> exactly 2 TUNNEL cells
	StationGroups map[int][]Pos // group (== ordinal+1) -> STATION cells
	PostGroups    map[int][]Pos // group (== ordinal+1) -> POST_OFFICE cells
}

// Board is a rectangular grid of (track, mod, mod-group) triples, stored as
// three parallel row-major slices rather than a map keyed by cell, matching
// the teacher's carving.TileMap.Layers[*].Data convention (pkg/carving/types.go)
// of compact, cache-friendly per-cell arrays.
type Board struct {
	Height, Width int
	Track         []TrackKind
	Mod           []ModKind
	ModNum        []int8
	Permanent     []bool // true if Track[i] was non-EMPTY in the original puzzle and may never be erased
	Topo          *Topology
}

// NewBoard allocates an empty Height x Width board. Topo is left nil; the
// caller (Puzzle.Build) attaches a shared Topology afterward.
func NewBoard(height, width int) *Board {
	n := height * width
	return &Board{
		Height: height,
		Width:  width,
		Track:  make([]TrackKind, n),
		Mod:    make([]ModKind, n),
		ModNum: make([]int8, n),
	}
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

func (b *Board) index(row, col int) int {
	return row*b.Width + col
}

func (b *Board) TrackAt(row, col int) TrackKind { return b.Track[b.index(row, col)] }
func (b *Board) ModAt(row, col int) ModKind      { return b.Mod[b.index(row, col)] }
func (b *Board) ModNumAt(row, col int) int        { return int(b.ModNum[b.index(row, col)]) }
func (b *Board) IsPermanent(row, col int) bool    { return b.Permanent[b.index(row, col)] }

// SetTrack overwrites the track at (row, col). Callers (pkg/sim, pkg/gen)
// must never call this on a permanent cell except via SwapTrack, which
// preserves the original track's identity as "permanent" and only changes
// its orientation.
func (b *Board) SetTrack(row, col int, t TrackKind) {
	b.Track[b.index(row, col)] = t
}

// SetMod overwrites the mod at (row, col).
func (b *Board) SetMod(row, col int, m ModKind) {
	b.Mod[b.index(row, col)] = m
}

// SwapTrackAt applies TrackKind.SwapTrack in place at (row, col).
func (b *Board) SwapTrackAt(row, col int) {
	i := b.index(row, col)
	b.Track[i] = b.Track[i].SwapTrack()
}

// Clone deep-copies the mutable per-cell arrays. Topo is shared by pointer
// (it is immutable after construction): every successor state deep-copies
// the mutable fields of its parent while avoiding a wasted copy of data
// that never changes.
func (b *Board) Clone() *Board {
	nb := &Board{
		Height: b.Height,
		Width:  b.Width,
		Track:  append([]TrackKind(nil), b.Track...),
		Mod:    append([]ModKind(nil), b.Mod...),
		ModNum: append([]int8(nil), b.ModNum...),
		Topo:   b.Topo,
	}
	nb.Permanent = append([]bool(nil), b.Permanent...)
	return nb
}

func (b *Board) String() string {
	return fmt.Sprintf("Board(%dx%d)", b.Height, b.Width)
}
