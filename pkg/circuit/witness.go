package circuit

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark/frontend"
	"golang.org/x/sync/errgroup"

	"github.com/zk-mahjong/shuffle-circuit/internal/curvemodel"
)

// Witness-generation error sentinels (spec §7). These are raised by
// BuildWitness before any circuit assignment is attempted; they never
// surface as a circuit-level constraint failure.
var (
	ErrOutOfBounds    = errors.New("circuit: permutation index out of bounds")
	ErrLengthMismatch = errors.New("circuit: length mismatch among witness inputs")
	ErrInvalidPoint   = errors.New("circuit: input point not on curve")
)

// Ciphertext is the native-side (c0, c1) ElGamal ciphertext pair for one
// tile, in the order BuildWitness expects.
type Ciphertext struct {
	C0, C1 curvemodel.Affine
}

// BuildWitness assembles a ShuffleEncryptCircuit assignment from the
// protocol-level inputs: the aggregated public key, the N input
// ciphertexts, the claimed output permutation, and one randomness scalar
// per input tile. It validates every spec §7 precondition before touching
// any accumulator state, consistent with the single-threaded, fail-fast
// witness-generation model of spec §5.
func BuildWitness(aggPK curvemodel.Affine, messages []Ciphertext, permutation []int, randomness []*big.Int) (*ShuffleEncryptCircuit, error) {
	n := len(messages)
	if n == 0 {
		return nil, fmt.Errorf("%w: N must be positive", ErrLengthMismatch)
	}
	if n > MaxTiles {
		return nil, fmt.Errorf("%w: N=%d exceeds MaxTiles=%d", ErrOutOfBounds, n, MaxTiles)
	}
	if len(permutation) != n {
		return nil, fmt.Errorf("%w: %d messages, %d permutation entries", ErrLengthMismatch, n, len(permutation))
	}
	if len(randomness) != n {
		return nil, fmt.Errorf("%w: %d messages, %d randomness entries", ErrLengthMismatch, n, len(randomness))
	}

	if err := checkBijection(permutation, n); err != nil {
		return nil, err
	}
	if err := validatePoints(aggPK, messages); err != nil {
		return nil, err
	}

	w := &ShuffleEncryptCircuit{
		AggPKX: aggPK.X.BigInt(new(big.Int)),
		AggPKY: aggPK.Y.BigInt(new(big.Int)),

		CinC0X: make([]frontend.Variable, n),
		CinC0Y: make([]frontend.Variable, n),
		CinC1X: make([]frontend.Variable, n),
		CinC1Y: make([]frontend.Variable, n),
		R:      make([]frontend.Variable, n),

		Permutation: make([]frontend.Variable, n),
	}
	for i, m := range messages {
		w.CinC0X[i] = m.C0.X.BigInt(new(big.Int))
		w.CinC0Y[i] = m.C0.Y.BigInt(new(big.Int))
		w.CinC1X[i] = m.C1.X.BigInt(new(big.Int))
		w.CinC1Y[i] = m.C1.Y.BigInt(new(big.Int))
	}
	for i, r := range randomness {
		w.R[i] = new(big.Int).Set(r)
	}
	for i, origin := range permutation {
		w.Permutation[i] = big.NewInt(int64(origin))
	}

	cinSum, coutSum := nativeBoundarySums(aggPK, messages, permutation, randomness)
	w.CinSumX = cinSum.X.BigInt(new(big.Int))
	w.CinSumY = cinSum.Y.BigInt(new(big.Int))
	w.CoutSumX = coutSum.X.BigInt(new(big.Int))
	w.CoutSumY = coutSum.Y.BigInt(new(big.Int))

	return w, nil
}

// checkBijection verifies permutation is a bijection on [0, n) using a
// bitset, the cheap native-side precheck before any trace construction -
// the circuit itself only re-derives this via the Pow2 subset-sum trick.
func checkBijection(permutation []int, n int) error {
	seen := bitset.New(uint(n))
	for _, origin := range permutation {
		if origin < 0 || origin >= n {
			return fmt.Errorf("%w: origin index %d not in [0, %d)", ErrOutOfBounds, origin, n)
		}
		if seen.Test(uint(origin)) {
			return fmt.Errorf("%w: origin index %d repeated, permutation is not a bijection", ErrOutOfBounds, origin)
		}
		seen.Set(uint(origin))
	}
	return nil
}

// nativeBoundarySums computes Sigma_cin and Sigma_cout (spec §4.6, §6)
// using curvemodel, the reference BuildWitness's public instance values are
// derived from.
func nativeBoundarySums(aggPK curvemodel.Affine, messages []Ciphertext, permutation []int, randomness []*big.Int) (curvemodel.Affine, curvemodel.Affine) {
	var cinAcc, coutAcc curvemodel.Projective

	for i, m := range messages {
		cin := curvemodel.Add(curvemodel.FromAffine(m.C0), curvemodel.FromAffine(m.C1))
		if i == 0 {
			cinAcc = cin
		} else {
			cinAcc = curvemodel.Add(cinAcc, cin)
		}
	}

	for outIdx, origin := range permutation {
		r := randomness[origin]
		rG := curvemodel.ScalarMul(curvemodel.Generator, r)
		rPK := curvemodel.ScalarMul(aggPK, r)
		c0 := curvemodel.Add(rG, curvemodel.FromAffine(messages[origin].C0))
		c1 := curvemodel.Add(rPK, curvemodel.FromAffine(messages[origin].C1))
		cout := curvemodel.Add(c0, c1)
		if outIdx == 0 {
			coutAcc = cout
		} else {
			coutAcc = curvemodel.Add(coutAcc, cout)
		}
	}

	return cinAcc.ToAffine(), coutAcc.ToAffine()
}

// validatePoints checks aggPK and every tile's two ciphertext coordinates
// lie on the curve, in parallel (read-only, independent checks - safe
// under spec §5's "no shared mutable state across proofs" rule since this
// runs before any trace state exists).
func validatePoints(aggPK curvemodel.Affine, messages []Ciphertext) error {
	if err := aggPK.Validate(); err != nil {
		return fmt.Errorf("%w: agg_pk: %v", ErrInvalidPoint, err)
	}

	g, _ := errgroup.WithContext(context.Background())
	for i := range messages {
		i := i
		g.Go(func() error {
			if err := messages[i].C0.Validate(); err != nil {
				return fmt.Errorf("%w: tile %d c0: %v", ErrInvalidPoint, i, err)
			}
			if err := messages[i].C1.Validate(); err != nil {
				return fmt.Errorf("%w: tile %d c1: %v", ErrInvalidPoint, i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
