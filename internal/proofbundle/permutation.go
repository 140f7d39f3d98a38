package proofbundle

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/icza/bitio"
)

// bitsFor returns the number of bits needed to hold any value in [0, n).
func bitsFor(n int) uint8 {
	if n <= 1 {
		return 1
	}
	return uint8(bits.Len(uint(n - 1)))
}

// PackPermutation bit-packs a permutation (each entry in [0, n)) at
// ceil(log2 n) bits per entry - used for fixture round-trips, never for the
// public instance, which is always the affine boundary sums.
func PackPermutation(permutation []int, n int) ([]byte, error) {
	width := bitsFor(n)
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, v := range permutation {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("proofbundle: permutation entry %d out of range [0,%d)", v, n)
		}
		if err := w.WriteBits(uint64(v), width); err != nil {
			return nil, fmt.Errorf("proofbundle: write permutation entry: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("proofbundle: close permutation writer: %w", err)
	}
	return buf.Bytes(), nil
}

// UnpackPermutation reverses PackPermutation, reading exactly count entries
// packed at ceil(log2 n) bits each.
func UnpackPermutation(data []byte, n, count int) ([]int, error) {
	width := bitsFor(n)
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]int, count)
	for i := 0; i < count; i++ {
		v, err := r.ReadBits(width)
		if err != nil {
			return nil, fmt.Errorf("proofbundle: read permutation entry %d: %w", i, err)
		}
		out[i] = int(v)
	}
	return out, nil
}
