package gen

import "github.com/trainline-solver/railcore/pkg/puzzle"

// generableTracks lists the plain tracks a cart can lay into an empty cell
// it is about to enter, keyed by the cart's current travel direction.
// Transcribed from original_source/algo/main.py's generable_tracks.
var generableTracks = map[puzzle.Direction][3]puzzle.TrackKind{
	puzzle.Left:  {puzzle.Horizontal, puzzle.BottomRightTurn, puzzle.TopRightTurn},
	puzzle.Right: {puzzle.Horizontal, puzzle.BottomLeftTurn, puzzle.TopLeftTurn},
	puzzle.Down:  {puzzle.Vertical, puzzle.TopRightTurn, puzzle.TopLeftTurn},
	puzzle.Up:    {puzzle.Vertical, puzzle.BottomRightTurn, puzzle.BottomLeftTurn},
}

// generable3Ways lists the 3-way upgrades available when a cart would
// otherwise cross an already-committed straight or single turn, keyed by
// the cart's direction and the track already sitting in that cell.
// Transcribed from original_source/algo/main.py's generable3_ways.
var generable3Ways = map[puzzle.Direction]map[puzzle.TrackKind][]puzzle.TrackKind{
	puzzle.Left: {
		puzzle.Horizontal:     {puzzle.BottomRightLeft3Way, puzzle.TopRightLeft3Way},
		puzzle.Vertical:       {puzzle.BottomRightTop3Way, puzzle.TopRightBottom3Way},
		puzzle.BottomLeftTurn: {puzzle.BottomLeftRight3Way},
		puzzle.TopLeftTurn:    {puzzle.TopLeftRight3Way},
	},
	puzzle.Right: {
		puzzle.Horizontal:      {puzzle.BottomLeftRight3Way, puzzle.TopLeftRight3Way},
		puzzle.Vertical:        {puzzle.BottomLeftTop3Way, puzzle.TopLeftBottom3Way},
		puzzle.BottomRightTurn: {puzzle.BottomRightLeft3Way},
		puzzle.TopRightTurn:    {puzzle.TopRightLeft3Way},
	},
	puzzle.Down: {
		puzzle.Horizontal:      {puzzle.TopRightLeft3Way, puzzle.TopLeftRight3Way},
		puzzle.Vertical:        {puzzle.TopRightBottom3Way, puzzle.TopLeftBottom3Way},
		puzzle.BottomRightTurn: {puzzle.BottomRightTop3Way},
		puzzle.BottomLeftTurn:  {puzzle.BottomLeftTop3Way},
	},
	puzzle.Up: {
		puzzle.Horizontal:   {puzzle.BottomRightLeft3Way, puzzle.BottomLeftRight3Way},
		puzzle.Vertical:     {puzzle.BottomRightTop3Way, puzzle.BottomLeftTop3Way},
		puzzle.TopRightTurn: {puzzle.TopRightBottom3Way},
		puzzle.TopLeftTurn:  {puzzle.TopLeftBottom3Way},
	},
}
