package puzzle

import "sort"

// CarSpec is one entry of Puzzle.Cars.
type CarSpec struct {
	Row, Col int
	Dir      Direction
	Ordinal  int
	Type     CartType
}

// Puzzle is the external input record: a board of track kinds, a parallel
// grid of mod kinds and mod-group numbers, the starting carts, and the
// replaceable-piece budgets. It is produced by an external loader
// (level-file parsing and persistence are outside this core's scope) and
// consumed only by Validate/Build.
//
// Board, Mods, and ModNums are flat row-major slices of length
// Height*Width, matching the storage convention of puzzle.Board.
type Puzzle struct {
	Height, Width int
	Board         []int // TrackKind values, 0..33
	Mods          []int // ModKind values, 0..11
	ModNums       []int // group numbers, 0..4

	Cars []CarSpec

	MaxTracks     int
	MaxSemaphores int
}

// Validate checks every structural invariant on a Puzzle's shape and
// returns the first violation found as a *ValidationError. It performs no
// allocation of a State; call Build to get a ready-to-search State (Build
// calls Validate first).
func (p *Puzzle) Validate() error {
	if p.Height <= 0 || p.Width <= 0 {
		return newValidationError("dimensions", "height and width must be positive, got %dx%d", p.Height, p.Width)
	}
	n := p.Height * p.Width
	if len(p.Board) != n {
		return newValidationError("board", "expected %d cells, got %d", n, len(p.Board))
	}
	if len(p.Mods) != n {
		return newValidationError("mods", "expected %d cells, got %d", n, len(p.Mods))
	}
	if len(p.ModNums) != n {
		return newValidationError("mod_nums", "expected %d cells, got %d", n, len(p.ModNums))
	}
	if p.MaxTracks < 0 {
		return newValidationError("max_tracks", "must be non-negative, got %d", p.MaxTracks)
	}
	if p.MaxSemaphores < 0 {
		return newValidationError("max_semaphores", "must be non-negative, got %d", p.MaxSemaphores)
	}

	for i, v := range p.Board {
		if !ValidTrackKind(v) {
			return newValidationError("board", "cell %d: unknown track kind %d", i, v)
		}
		if TrackKind(v).IsSemaphorePlaceholder() {
			return newValidationError("board", "cell %d: semaphore-placeholder track kinds may not appear in puzzle input", i)
		}
	}
	for i, v := range p.Mods {
		if !ValidModKind(v) {
			return newValidationError("mods", "cell %d: unknown mod kind %d", i, v)
		}
	}
	for i, v := range p.ModNums {
		if v < 0 || v > 4 {
			return newValidationError("mod_nums", "cell %d: group number %d out of range [0,4]", i, v)
		}
	}

	if err := p.validateCars(); err != nil {
		return err
	}
	if err := p.validateGroups(); err != nil {
		return err
	}
	return nil
}

func (p *Puzzle) validateCars() error {
	seen := map[CartType]map[int]bool{Normal: {}, Decoy: {}, Numeral: {}}
	counts := map[CartType]int{}
	for i, c := range p.Cars {
		if c.Type != Normal && c.Type != Decoy && c.Type != Numeral {
			return newValidationError("cars", "car %d: invalid cart type %d (must be NORMAL, DECOY, or NUMERAL)", i, c.Type)
		}
		if !c.Dir.IsRegular() {
			return newValidationError("cars", "car %d: invalid facing direction %v", i, c.Dir)
		}
		if c.Row < 0 || c.Row >= p.Height || c.Col < 0 || c.Col >= p.Width {
			return newValidationError("cars", "car %d: position (%d,%d) is out of bounds", i, c.Row, c.Col)
		}
		if seen[c.Type][c.Ordinal] {
			return newValidationError("cars", "car %d: duplicate ordinal %d for type %v", i, c.Ordinal, c.Type)
		}
		seen[c.Type][c.Ordinal] = true
		counts[c.Type]++

		if mk := ModKind(p.Mods[c.Row*p.Width+c.Col]); mk != ModStartingCarTile {
			return newValidationError("cars", "car %d: starting cell (%d,%d) must be marked STARTING_CAR_TILE, got mod %d", i, c.Row, c.Col, mk)
		}
	}
	for typ, count := range counts {
		for ord := 0; ord < count; ord++ {
			if !seen[typ][ord] {
				return newValidationError("cars", "ordinals for type %v are not dense starting at 0: missing %d", typ, ord)
			}
		}
	}
	return nil
}

func (p *Puzzle) validateGroups() error {
	switchGroups := map[int]bool{}
	gateGroups := map[int][]Pos{}
	tunnelGroups := map[int][]Pos{}
	swapGroups := map[int]bool{}
	stationGroups := map[int][]Pos{}
	postGroups := map[int][]Pos{}

	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			i := row*p.Width + col
			mk := ModKind(p.Mods[i])
			group := p.ModNums[i]
			pos := Pos{Row: row, Col: col}

			switch mk {
			case ModSwitch:
				if group == 0 {
					return newValidationError("mods", "SWITCH at (%d,%d) needs a group number in 1..4", row, col)
				}
				switchGroups[group] = true
			case ModClosedGate, ModOpenGate:
				if group == 0 {
					return newValidationError("mods", "gate at (%d,%d) needs a group number in 1..4", row, col)
				}
				gateGroups[group] = append(gateGroups[group], pos)
			case ModSwappingTrack:
				if group == 0 {
					return newValidationError("mods", "SWAPPING_TRACK at (%d,%d) needs a group number in 1..4", row, col)
				}
				swapGroups[group] = true
			case ModTunnel:
				if group == 0 {
					return newValidationError("mods", "TUNNEL at (%d,%d) needs a group number in 1..4", row, col)
				}
				tunnelGroups[group] = append(tunnelGroups[group], pos)
			case ModStation:
				if group == 0 {
					return newValidationError("mods", "STATION at (%d,%d) needs a group number in 1..4", row, col)
				}
				stationGroups[group] = append(stationGroups[group], pos)
			case ModPostOffice:
				if group == 0 {
					return newValidationError("mods", "POST_OFFICE at (%d,%d) needs a group number in 1..4", row, col)
				}
				postGroups[group] = append(postGroups[group], pos)
			}
		}
	}

	for group := range gateGroups {
		if !switchGroups[group] {
			return newValidationError("mods", "gate group %d has no corresponding SWITCH", group)
		}
	}
	for group := range swapGroups {
		if !switchGroups[group] {
			return newValidationError("mods", "swapping-track group %d has no corresponding SWITCH", group)
		}
	}
	for group, cells := range tunnelGroups {
		if len(cells) != 2 {
			return newValidationError("mods", "tunnel group %d must have exactly 2 cells, got %d", group, len(cells))
		}
	}

	normalOrdinals := map[int]bool{}
	numeralOrdinals := map[int]bool{}
	for _, c := range p.Cars {
		switch c.Type {
		case Normal:
			normalOrdinals[c.Ordinal] = true
		case Numeral:
			numeralOrdinals[c.Ordinal] = true
		}
	}
	for group := range stationGroups {
		if !normalOrdinals[group-1] {
			return newValidationError("mods", "station group %d has no matching NORMAL cart ordinal %d", group, group-1)
		}
	}
	for group := range postGroups {
		if !numeralOrdinals[group-1] {
			return newValidationError("mods", "post-office group %d has no matching NUMERAL cart ordinal %d", group, group-1)
		}
	}
	return nil
}

// Build validates p and constructs the initial search State. The returned
// State's Board.Topo is shared (by pointer) with every descendant the
// search produces.
func (p *Puzzle) Build() (*State, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	b := NewBoard(p.Height, p.Width)
	b.Permanent = make([]bool, p.Height*p.Width)
	for i := range p.Board {
		b.Track[i] = TrackKind(p.Board[i])
		b.Mod[i] = ModKind(p.Mods[i])
		b.ModNum[i] = int8(p.ModNums[i])
		b.Permanent[i] = b.Track[i] != Empty
	}
	b.Topo = buildTopology(b)

	live := make([]Cart, 0, len(p.Cars))
	appendType := func(t CartType) {
		var bucket []CarSpec
		for _, c := range p.Cars {
			if c.Type == t {
				bucket = append(bucket, c)
			}
		}
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Ordinal < bucket[j].Ordinal })
		for _, c := range bucket {
			id := indexOfCarSpec(p.Cars, c)
			live = append(live, Cart{ID: id, Row: c.Row, Col: c.Col, Dir: c.Dir, Ordinal: c.Ordinal, Type: c.Type})
		}
	}
	appendType(Normal)
	appendType(Decoy)
	appendType(Numeral)

	queued := make([]Pos, len(live))
	for i := range queued {
		queued[i] = noPos
	}

	return &State{
		Board:               b,
		Live:                live,
		Crashed:             nil,
		TracksRemaining:     p.MaxTracks,
		SemaphoresRemaining: p.MaxSemaphores,
		Stalled:             make([]bool, len(live)),
		StationStalled:      make([]bool, len(live)),
		QueuedGate:          queued,
		Heat:                make(HeatTensor),
		HeatLimit:           make(HeatLimitTensor),
		SolvedNormals:       nil,
		SolvedNumerals:      nil,
		TicksSinceAllSolved: 0,
	}, nil
}

func indexOfCarSpec(cars []CarSpec, target CarSpec) int {
	for i, c := range cars {
		if c == target {
			return i
		}
	}
	return -1
}

func buildTopology(b *Board) *Topology {
	t := &Topology{
		SwitchGroups:  map[int][]Pos{},
		GateGroups:    map[int][]Pos{},
		SwapGroups:    map[int][]Pos{},
		TunnelGroups:  map[int][]Pos{},
		StationGroups: map[int][]Pos{},
		PostGroups:    map[int][]Pos{},
	}
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			group := b.ModNumAt(row, col)
			pos := Pos{Row: row, Col: col}
			switch b.ModAt(row, col) {
			case ModSwitch:
				t.SwitchGroups[group] = append(t.SwitchGroups[group], pos)
			case ModClosedGate, ModOpenGate:
				t.GateGroups[group] = append(t.GateGroups[group], pos)
			case ModSwappingTrack:
				t.SwapGroups[group] = append(t.SwapGroups[group], pos)
			case ModTunnel:
				t.TunnelGroups[group] = append(t.TunnelGroups[group], pos)
			case ModStation:
				t.StationGroups[group] = append(t.StationGroups[group], pos)
			case ModPostOffice:
				t.PostGroups[group] = append(t.PostGroups[group], pos)
			}
		}
	}
	return t
}

// TunnelPair returns the other cell sharing pos's tunnel group.
func (b *Board) TunnelPair(pos Pos) (Pos, bool) {
	group := b.ModNumAt(pos.Row, pos.Col)
	cells, ok := b.Topo.TunnelGroups[group]
	if !ok || len(cells) != 2 {
		return Pos{}, false
	}
	if cells[0] == pos {
		return cells[1], true
	}
	return cells[0], true
}
