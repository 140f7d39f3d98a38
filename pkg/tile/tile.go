// Package tile maps mahjong tile identifiers to points on E. The deck/tile
// domain enumeration itself is explicitly out of scope for the shuffle
// circuit (it only ever sees opaque ElGamal ciphertexts); this package is a
// thin convenience used solely by the CLI demo to turn a human-readable tile
// id into the curve point a message's plaintext would carry, and is
// deliberately kept decoupled from pkg/circuit, pkg/ecgadget, pkg/elgamal
// and pkg/shuffle - none of those packages import it.
package tile

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zk-mahjong/shuffle-circuit/internal/curvemodel"
)

// NumTiles is a standard mahjong deck: 34 distinct kinds, 4 copies each.
const NumTiles = 136

// ErrOutOfRange is returned for an id outside [0, NumTiles).
var ErrOutOfRange = errors.New("tile: id out of range [0, NumTiles)")

// Encode deterministically maps a tile id to a point on E via
// try-and-increment hash-to-curve, the same search curvemodel's own
// generator uses, seeded from the id rather than from 1.
func Encode(id int) (curvemodel.Affine, error) {
	if id < 0 || id >= NumTiles {
		return curvemodel.Affine{}, ErrOutOfRange
	}
	var x fr.Element
	x.SetBytes(seedBytes(id))
	var one fr.Element
	one.SetOne()
	for {
		if p, ok := liftX(x); ok {
			return p, nil
		}
		x.Add(&x, &one)
	}
}

// Decode recovers the tile id a point was produced by, if any. It exists
// only for the CLI demo's own round-trip check, so it is backed by a
// brute-force table built once rather than an inverse hash - NumTiles is
// small and this is never on a proving-time path.
func Decode(p curvemodel.Affine) (int, bool) {
	table := decodeTable()
	key := affineKey(p)
	id, ok := table[key]
	return id, ok
}

var (
	decodeOnce sync.Once
	decodeTbl  map[[64]byte]int
)

func decodeTable() map[[64]byte]int {
	decodeOnce.Do(func() {
		decodeTbl = make(map[[64]byte]int, NumTiles)
		for id := 0; id < NumTiles; id++ {
			p, err := Encode(id)
			if err != nil {
				continue
			}
			decodeTbl[affineKey(p)] = id
		}
	})
	return decodeTbl
}

func affineKey(p curvemodel.Affine) [64]byte {
	var key [64]byte
	xBytes := p.X.Bytes()
	yBytes := p.Y.Bytes()
	copy(key[:32], xBytes[:])
	copy(key[32:], yBytes[:])
	return key
}

func seedBytes(id int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	h := sha256.Sum256(buf[:])
	return h[:]
}

func liftX(x fr.Element) (curvemodel.Affine, bool) {
	var x3, y2 fr.Element
	x3.Square(&x).Mul(&x3, &x)
	y2.Add(&x3, &curvemodel.B)
	var y fr.Element
	if y.Sqrt(&y2) == nil {
		return curvemodel.Affine{}, false
	}
	return curvemodel.Affine{X: x, Y: y}, true
}
