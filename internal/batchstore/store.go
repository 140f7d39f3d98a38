// Package batchstore compresses batches of per-round (permutation,
// randomness) fixtures - the kind of bulk, mostly-small-integer arrays the
// property tests generate across many rounds at N in {16, 144} - using
// binary packing, so a saved replay batch doesn't grow linearly with round
// count times N.
package batchstore

import (
	"fmt"

	"github.com/ronanh/intcomp"

	"github.com/zk-mahjong/shuffle-circuit/internal/logging"
)

// Round is one property-test round's permutation and truncated randomness
// (randomness scalars are reduced to uint64 here purely for storage - the
// full field element is recomputed from the seed when a round is replayed,
// see internal/randsrc).
type Round struct {
	Permutation []uint32
	Randomness  []uint64
}

// Batch is a compressed collection of rounds, all sharing the same N.
type Batch struct {
	N               int
	CompressedPerms [][]uint32
	CompressedRands [][]uint64
}

// Compress packs every round's permutation and randomness arrays.
func Compress(n int, rounds []Round) Batch {
	log := logging.Logger().With().Str("component", "batchstore").Int("n", n).Int("rounds", len(rounds)).Logger()
	log.Debug().Msg("compressing fixture batch")

	b := Batch{N: n, CompressedPerms: make([][]uint32, len(rounds)), CompressedRands: make([][]uint64, len(rounds))}
	for i, r := range rounds {
		b.CompressedPerms[i] = intcomp.CompressUint32(r.Permutation, nil)
		b.CompressedRands[i] = intcomp.CompressUint64(r.Randomness, nil)
	}
	return b
}

// Decompress reverses Compress, given the original per-round element count.
func Decompress(b Batch, roundLen int) ([]Round, error) {
	if len(b.CompressedPerms) != len(b.CompressedRands) {
		return nil, fmt.Errorf("batchstore: mismatched compressed round counts (%d perms, %d rands)", len(b.CompressedPerms), len(b.CompressedRands))
	}
	rounds := make([]Round, len(b.CompressedPerms))
	for i := range b.CompressedPerms {
		perm := intcomp.UncompressUint32(b.CompressedPerms[i], make([]uint32, 0, roundLen))
		rand := intcomp.UncompressUint64(b.CompressedRands[i], make([]uint64, 0, roundLen))
		rounds[i] = Round{Permutation: perm, Randomness: rand}
	}
	return rounds, nil
}
