package sim

import "github.com/trainline-solver/railcore/pkg/puzzle"

// outgoing reports the direction a cart takes when it enters a cell holding
// track t while already travelling dir. puzzle.Crash means the cart dies on
// entry; puzzle.Unknown means t needs further resolution (tunnel, ending
// track) that outgoing alone cannot give.
//
// Transcribed from original_source/algo/main.py's `directions` table; the
// single generic ENDING_TRACK entry there (accept only from the right, crash
// otherwise) is generalized here across all four CarEndingTrack*/NCarEndingTrack*
// orientations, each named for the one incoming direction it accepts.
func Outgoing(t puzzle.TrackKind, dir puzzle.Direction) puzzle.Direction {
	switch {
	case t == puzzle.Empty, t == puzzle.Roadblock:
		return puzzle.Crash

	case t == puzzle.Horizontal:
		switch dir {
		case puzzle.Left:
			return puzzle.Left
		case puzzle.Right:
			return puzzle.Right
		default:
			return puzzle.Crash
		}
	case t == puzzle.Vertical:
		switch dir {
		case puzzle.Down:
			return puzzle.Down
		case puzzle.Up:
			return puzzle.Up
		default:
			return puzzle.Crash
		}

	case t == puzzle.BottomRightTurn:
		switch dir {
		case puzzle.Left:
			return puzzle.Down
		case puzzle.Up:
			return puzzle.Right
		default:
			return puzzle.Crash
		}
	case t == puzzle.BottomLeftTurn:
		switch dir {
		case puzzle.Right:
			return puzzle.Down
		case puzzle.Up:
			return puzzle.Left
		default:
			return puzzle.Crash
		}
	case t == puzzle.TopRightTurn:
		switch dir {
		case puzzle.Left:
			return puzzle.Up
		case puzzle.Down:
			return puzzle.Right
		default:
			return puzzle.Crash
		}
	case t == puzzle.TopLeftTurn:
		switch dir {
		case puzzle.Right:
			return puzzle.Up
		case puzzle.Down:
			return puzzle.Left
		default:
			return puzzle.Crash
		}

	case t == puzzle.BottomRightLeft3Way:
		switch dir {
		case puzzle.Left:
			return puzzle.Down
		case puzzle.Right:
			return puzzle.Right
		case puzzle.Up:
			return puzzle.Right
		default:
			return puzzle.Crash
		}
	case t == puzzle.BottomRightTop3Way:
		switch dir {
		case puzzle.Left:
			return puzzle.Down
		case puzzle.Down:
			return puzzle.Down
		case puzzle.Up:
			return puzzle.Right
		default:
			return puzzle.Crash
		}
	case t == puzzle.BottomLeftRight3Way:
		switch dir {
		case puzzle.Left:
			return puzzle.Left
		case puzzle.Right:
			return puzzle.Down
		case puzzle.Up:
			return puzzle.Left
		default:
			return puzzle.Crash
		}
	case t == puzzle.BottomLeftTop3Way:
		switch dir {
		case puzzle.Right:
			return puzzle.Down
		case puzzle.Down:
			return puzzle.Down
		case puzzle.Up:
			return puzzle.Left
		default:
			return puzzle.Crash
		}
	case t == puzzle.TopRightLeft3Way:
		switch dir {
		case puzzle.Left:
			return puzzle.Up
		case puzzle.Right:
			return puzzle.Right
		case puzzle.Down:
			return puzzle.Right
		default:
			return puzzle.Crash
		}
	case t == puzzle.TopRightBottom3Way:
		switch dir {
		case puzzle.Left:
			return puzzle.Up
		case puzzle.Down:
			return puzzle.Right
		case puzzle.Up:
			return puzzle.Up
		default:
			return puzzle.Crash
		}
	case t == puzzle.TopLeftRight3Way:
		switch dir {
		case puzzle.Left:
			return puzzle.Left
		case puzzle.Right:
			return puzzle.Up
		case puzzle.Down:
			return puzzle.Left
		default:
			return puzzle.Crash
		}
	case t == puzzle.TopLeftBottom3Way:
		switch dir {
		case puzzle.Right:
			return puzzle.Up
		case puzzle.Down:
			return puzzle.Left
		case puzzle.Up:
			return puzzle.Up
		default:
			return puzzle.Crash
		}

	case t.IsTunnel():
		return tunnelEntry(t, dir)

	case t == puzzle.CarEndingTrackLeft:
		return endingEntry(dir, puzzle.Left)
	case t == puzzle.CarEndingTrackRight:
		return endingEntry(dir, puzzle.Right)
	case t == puzzle.CarEndingTrackDown:
		return endingEntry(dir, puzzle.Down)
	case t == puzzle.CarEndingTrackUp:
		return endingEntry(dir, puzzle.Up)
	case t == puzzle.NCarEndingTrackLeft:
		return endingEntry(dir, puzzle.Left)
	case t == puzzle.NCarEndingTrackRight:
		return endingEntry(dir, puzzle.Right)
	case t == puzzle.NCarEndingTrackDown:
		return endingEntry(dir, puzzle.Down)
	case t == puzzle.NCarEndingTrackUp:
		return endingEntry(dir, puzzle.Up)

	default:
		puzzle.PanicInvariant("sim: outgoing called on non-committable track kind %d", t)
		return puzzle.Crash
	}
}

func endingEntry(incoming, accepted puzzle.Direction) puzzle.Direction {
	if incoming == accepted {
		return puzzle.Unknown
	}
	return puzzle.Crash
}

func tunnelEntry(t puzzle.TrackKind, dir puzzle.Direction) puzzle.Direction {
	switch t {
	case puzzle.LeftFacingTunnel:
		if dir == puzzle.Right {
			return puzzle.Unknown
		}
	case puzzle.RightFacingTunnel:
		if dir == puzzle.Left {
			return puzzle.Unknown
		}
	case puzzle.DownFacingTunnel:
		if dir == puzzle.Up {
			return puzzle.Unknown
		}
	case puzzle.UpFacingTunnel:
		if dir == puzzle.Down {
			return puzzle.Unknown
		}
	}
	return puzzle.Crash
}

// SemaphorePass names the two directions a semaphore-controlled piece lets a
// passing (non-stopped) cart through from, transcribed from
// original_source/algo/main.py's semaphore_pass table. Only straights and
// single turns can host a semaphore.
var SemaphorePass = map[puzzle.TrackKind][2]puzzle.Direction{
	puzzle.Horizontal:      {puzzle.Left, puzzle.Right},
	puzzle.Vertical:        {puzzle.Down, puzzle.Up},
	puzzle.BottomRightTurn: {puzzle.Down, puzzle.Right},
	puzzle.BottomLeftTurn:  {puzzle.Down, puzzle.Left},
	puzzle.TopRightTurn:    {puzzle.Up, puzzle.Right},
	puzzle.TopLeftTurn:     {puzzle.Up, puzzle.Left},
}
