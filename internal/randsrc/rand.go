// Package randsrc expands one seed into the N per-tile randomness scalars a
// re-mask needs, deterministically - used by the CLI's fixture subcommand
// (and its --seed flag) so the randomness of a run can be replayed exactly.
package randsrc

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

// Expand derives n scalars in [0, bound) from seed, via HKDF-SHA256 with
// an info string distinguishing each output index, so every tile's scalar
// comes from its own HKDF expansion. The results are reduced modulo bound
// and are not checked for distinctness: two tiles can receive the same value.
func Expand(seed []byte, n int, bound *big.Int) ([]*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("randsrc: n must be non-negative, got %d", n)
	}
	out := make([]*big.Int, n)
	byteLen := (bound.BitLen() + 7) / 8
	if byteLen == 0 {
		byteLen = 1
	}
	for i := 0; i < n; i++ {
		info := []byte(fmt.Sprintf("zk-mahjong-shuffle/tile/%d", i))
		reader := hkdf.New(sha256.New, seed, nil, info)
		buf := make([]byte, byteLen+8) // extra bytes reduce modulo bias
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, fmt.Errorf("randsrc: expand tile %d: %w", i, err)
		}
		v := new(big.Int).SetBytes(buf)
		out[i] = v.Mod(v, bound)
	}
	return out, nil
}
