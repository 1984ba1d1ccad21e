package puzzle

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlDoc mirrors the on-disk fixture shape: board/mods/mod_nums are each a
// list of space-separated rows so a whole level reads as a small picture
// instead of a flat integer slice. Unmarshals into a typed struct first;
// domain validation is a separate step left to the caller (Validate/Build).
type yamlDoc struct {
	Height        int       `yaml:"height"`
	Width         int       `yaml:"width"`
	Board         []string  `yaml:"board"`
	Mods          []string  `yaml:"mods"`
	ModNums       []string  `yaml:"mod_nums"`
	MaxTracks     int       `yaml:"max_tracks"`
	MaxSemaphores int       `yaml:"max_semaphores"`
	Cars          []yamlCar `yaml:"cars"`
}

type yamlCar struct {
	Row     int    `yaml:"row"`
	Col     int    `yaml:"col"`
	Dir     string `yaml:"dir"`
	Ordinal int    `yaml:"ordinal"`
	Type    string `yaml:"type"`
}

var trackKindNames = map[string]TrackKind{
	"EMPTY":                                  Empty,
	"HORIZONTAL":                             Horizontal,
	"VERTICAL":                               Vertical,
	"ROADBLOCK":                              Roadblock,
	"BOTTOM_RIGHT_TURN":                      BottomRightTurn,
	"BOTTOM_LEFT_TURN":                       BottomLeftTurn,
	"TOP_RIGHT_TURN":                         TopRightTurn,
	"TOP_LEFT_TURN":                          TopLeftTurn,
	"BOTTOM_RIGHT_LEFT_3WAY":                 BottomRightLeft3Way,
	"BOTTOM_RIGHT_TOP_3WAY":                  BottomRightTop3Way,
	"BOTTOM_LEFT_RIGHT_3WAY":                 BottomLeftRight3Way,
	"BOTTOM_LEFT_TOP_3WAY":                   BottomLeftTop3Way,
	"TOP_RIGHT_LEFT_3WAY":                    TopRightLeft3Way,
	"TOP_RIGHT_BOTTOM_3WAY":                  TopRightBottom3Way,
	"TOP_LEFT_RIGHT_3WAY":                    TopLeftRight3Way,
	"TOP_LEFT_BOTTOM_3WAY":                   TopLeftBottom3Way,
	"LEFT_FACING_TUNNEL":                     LeftFacingTunnel,
	"RIGHT_FACING_TUNNEL":                    RightFacingTunnel,
	"DOWN_FACING_TUNNEL":                     DownFacingTunnel,
	"UP_FACING_TUNNEL":                       UpFacingTunnel,
	"CAR_ENDING_TRACK_LEFT":                  CarEndingTrackLeft,
	"CAR_ENDING_TRACK_RIGHT":                 CarEndingTrackRight,
	"CAR_ENDING_TRACK_DOWN":                  CarEndingTrackDown,
	"CAR_ENDING_TRACK_UP":                    CarEndingTrackUp,
	"N_CAR_ENDING_TRACK_LEFT":                NCarEndingTrackLeft,
	"N_CAR_ENDING_TRACK_RIGHT":                NCarEndingTrackRight,
	"N_CAR_ENDING_TRACK_DOWN":                NCarEndingTrackDown,
	"N_CAR_ENDING_TRACK_UP":                  NCarEndingTrackUp,
}

var modKindNames = map[string]ModKind{
	"EMPTY":              ModEmpty,
	"SWITCH":              ModSwitch,
	"TUNNEL":              ModTunnel,
	"CLOSED_GATE":         ModClosedGate,
	"OPEN_GATE":           ModOpenGate,
	"SWAPPING_TRACK":      ModSwappingTrack,
	"STATION":             ModStation,
	"SWITCH_RAIL":         ModSwitchRail,
	"SEMAPHORE":           ModSemaphore,
	"DEACTIVATED":         ModDeactivated,
	"STARTING_CAR_TILE":   ModStartingCarTile,
	"POST_OFFICE":         ModPostOffice,
}

var directionNames = map[string]Direction{
	"LEFT":  Left,
	"RIGHT": Right,
	"DOWN":  Down,
	"UP":    Up,
}

var cartTypeNames = map[string]CartType{
	"NORMAL":  Normal,
	"DECOY":   Decoy,
	"NUMERAL": Numeral,
}

// FromYAML parses a human-readable level fixture into a Puzzle. It does not
// call Validate itself; callers that need a ready-to-search State should
// call Build, which validates first.
func FromYAML(data []byte) (*Puzzle, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("puzzle: parsing YAML: %w", err)
	}

	n := doc.Height * doc.Width
	board, err := decodeGrid(doc.Board, n, func(tok string) (int, error) {
		tk, ok := trackKindNames[tok]
		if !ok {
			return 0, fmt.Errorf("unknown track kind %q", tok)
		}
		return int(tk), nil
	})
	if err != nil {
		return nil, fmt.Errorf("puzzle: board: %w", err)
	}
	mods, err := decodeGrid(doc.Mods, n, func(tok string) (int, error) {
		mk, ok := modKindNames[tok]
		if !ok {
			return 0, fmt.Errorf("unknown mod kind %q", tok)
		}
		return int(mk), nil
	})
	if err != nil {
		return nil, fmt.Errorf("puzzle: mods: %w", err)
	}
	modNums, err := decodeGrid(doc.ModNums, n, func(tok string) (int, error) {
		var v int
		if _, err := fmt.Sscanf(tok, "%d", &v); err != nil {
			return 0, fmt.Errorf("not an integer: %q", tok)
		}
		return v, nil
	})
	if err != nil {
		return nil, fmt.Errorf("puzzle: mod_nums: %w", err)
	}

	cars := make([]CarSpec, len(doc.Cars))
	for i, c := range doc.Cars {
		dir, ok := directionNames[c.Dir]
		if !ok {
			return nil, fmt.Errorf("puzzle: car %d: unknown direction %q", i, c.Dir)
		}
		typ, ok := cartTypeNames[c.Type]
		if !ok {
			return nil, fmt.Errorf("puzzle: car %d: unknown cart type %q", i, c.Type)
		}
		cars[i] = CarSpec{Row: c.Row, Col: c.Col, Dir: dir, Ordinal: c.Ordinal, Type: typ}
	}

	return &Puzzle{
		Height:        doc.Height,
		Width:         doc.Width,
		Board:         board,
		Mods:          mods,
		ModNums:       modNums,
		Cars:          cars,
		MaxTracks:     doc.MaxTracks,
		MaxSemaphores: doc.MaxSemaphores,
	}, nil
}

// decodeGrid flattens rows of whitespace-separated tokens into a row-major
// slice of length want, applying decode to every token.
func decodeGrid(rows []string, want int, decode func(string) (int, error)) ([]int, error) {
	out := make([]int, 0, want)
	for r, row := range rows {
		for _, tok := range strings.Fields(row) {
			v, err := decode(tok)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
			out = append(out, v)
		}
	}
	if len(out) != want {
		return nil, fmt.Errorf("expected %d cells, got %d", want, len(out))
	}
	return out, nil
}
