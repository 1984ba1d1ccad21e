package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"sort"

	"github.com/trainline-solver/railcore/pkg/puzzle"
)

// Fingerprint is a deterministic SHA-256 digest of a State: board contents,
// remaining budgets, TicksSinceAllSolved, live carts with their stall flags
// and queued gates, crashed decoys, solved order, and heat. Heat limits are
// not part of it. pkg/search drops a state as already visited when its
// Fingerprint is already in its visited set; it compares digests only and
// does not compare full State values on a hit.
//
// Grounded on pkg/rng.NewRNG's sha256-derivation idiom, applied here to
// hash search states instead of deriving RNG seeds.
type Fingerprint [32]byte

// Compute derives the Fingerprint of s. It never mutates s and allocates no
// global state, so it is safe to call concurrently on distinct states.
func Compute(s *puzzle.State) Fingerprint {
	h := sha256.New()

	var buf [8]byte
	writeInt := func(v int) {
		binary.BigEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}

	board := s.Board
	writeInt(board.Height)
	writeInt(board.Width)
	for i := range board.Track {
		h.Write([]byte{byte(board.Track[i]), byte(board.Mod[i]), byte(board.ModNum[i])})
	}

	writeInt(s.TracksRemaining)
	writeInt(s.SemaphoresRemaining)
	writeInt(s.TicksSinceAllSolved)

	flag := func(b bool) byte {
		if b {
			return 1
		}
		return 0
	}
	order := make([]int, len(s.Live))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return s.Live[order[a]].ID < s.Live[order[b]].ID })
	for _, i := range order {
		c := s.Live[i]
		writeInt(c.ID)
		writeInt(c.Row)
		writeInt(c.Col)
		h.Write([]byte{byte(c.Dir), byte(c.Type), flag(s.Stalled[i]), flag(s.StationStalled[i])})
		writeInt(s.QueuedGate[i].Row)
		writeInt(s.QueuedGate[i].Col)
	}

	crashed := append([]puzzle.Cart(nil), s.Crashed...)
	sort.Slice(crashed, func(i, j int) bool { return crashed[i].ID < crashed[j].ID })
	for _, c := range crashed {
		writeInt(c.ID)
		writeInt(c.Row)
		writeInt(c.Col)
	}

	writeSortedInts := func(vals []int) {
		writeInt(len(vals))
		for _, v := range vals {
			writeInt(v)
		}
	}
	writeSortedInts(s.SolvedNormals)
	writeSortedInts(s.SolvedNumerals)

	keys := make([]puzzle.HeatKey, 0, len(s.Heat))
	for k := range s.Heat {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.CartID != b.CartID {
			return a.CartID < b.CartID
		}
		if a.Dir != b.Dir {
			return a.Dir < b.Dir
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	for _, k := range keys {
		writeInt(k.CartID)
		h.Write([]byte{byte(k.Dir)})
		writeInt(k.Row)
		writeInt(k.Col)
		writeInt(s.Heat[k])
	}

	var out Fingerprint
	copy(out[:], h.Sum(nil))
	return out
}
