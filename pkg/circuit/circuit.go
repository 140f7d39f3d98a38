// Package circuit implements the top-level aggregation circuit of spec
// §4.6: it wires the ScalarMul, ElGamal re-mask, and Shuffle subcircuits
// together, accumulates the boundary sums of input and output ciphertexts,
// and exposes them (plus the aggregated public key) as the proof's public
// instance.
package circuit

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/zk-mahjong/shuffle-circuit/internal/curvemodel"
	"github.com/zk-mahjong/shuffle-circuit/pkg/builder"
	"github.com/zk-mahjong/shuffle-circuit/pkg/ecgadget"
	"github.com/zk-mahjong/shuffle-circuit/pkg/elgamal"
	"github.com/zk-mahjong/shuffle-circuit/pkg/shuffle"
	"github.com/zk-mahjong/shuffle-circuit/pkg/tables"
)

// MinBlindingRows is the minimum number of dummy/blinding rows a production
// setup should pad onto N before committing, to keep PLONK's zero-knowledge
// property against a small deck size. Not enforced here; recorded for
// cmd/mahjong-shuffle callers that build SRS-backed setups.
const MinBlindingRows = 6

// MaxTiles is the spec's N <= 254 bound (spec §6): one fewer than
// tables.Pow2Rows, since a permutation over [0, N) must itself be
// representable as a Pow2Table index.
const MaxTiles = tables.Pow2Rows - 1

// ShuffleEncryptCircuit is the aggregate gnark circuit (spec §4.6). N is
// fixed implicitly by the length of the private slices at the moment the
// circuit is compiled or assigned - the standard gnark idiom for
// variable-size circuits.
type ShuffleEncryptCircuit struct {
	AggPKX frontend.Variable `gnark:",public"`
	AggPKY frontend.Variable `gnark:",public"`

	CinC0X []frontend.Variable
	CinC0Y []frontend.Variable
	CinC1X []frontend.Variable
	CinC1Y []frontend.Variable
	R      []frontend.Variable

	Permutation []frontend.Variable

	CinSumX  frontend.Variable `gnark:",public"`
	CinSumY  frontend.Variable `gnark:",public"`
	CoutSumX frontend.Variable `gnark:",public"`
	CoutSumY frontend.Variable `gnark:",public"`
}

// Blank returns an empty circuit sized for n tiles, suitable for
// frontend.Compile or as the circuit argument to test.IsSolved /
// gnark's assert helpers - the variable-length slice fields carry no
// values, only the length gnark needs to size the constraint system.
func Blank(n int) *ShuffleEncryptCircuit {
	return &ShuffleEncryptCircuit{
		CinC0X:      make([]frontend.Variable, n),
		CinC0Y:      make([]frontend.Variable, n),
		CinC1X:      make([]frontend.Variable, n),
		CinC1Y:      make([]frontend.Variable, n),
		R:           make([]frontend.Variable, n),
		Permutation: make([]frontend.Variable, n),
	}
}

// Define implements frontend.Circuit.
func (c *ShuffleEncryptCircuit) Define(api frontend.API) error {
	n := len(c.CinC0X)
	if len(c.CinC0Y) != n || len(c.CinC1X) != n || len(c.CinC1Y) != n || len(c.R) != n || len(c.Permutation) != n {
		return fmt.Errorf("circuit: mismatched private column lengths")
	}
	if n == 0 {
		return fmt.Errorf("circuit: N must be positive")
	}

	cb := builder.New(api, 0)
	pow2 := tables.NewPow2Table(api)
	generator := ecgadget.Affine{
		X: curvemodel.Generator.X.BigInt(new(big.Int)),
		Y: curvemodel.Generator.Y.BigInt(new(big.Int)),
	}
	aggPK := ecgadget.Affine{X: c.AggPKX, Y: c.AggPKY}

	tiles := make([]shuffle.Tile, n)
	cinPairs := make([][2]ecgadget.Affine, n)
	for i := 0; i < n; i++ {
		c0 := ecgadget.Affine{X: c.CinC0X[i], Y: c.CinC0Y[i]}
		c1 := ecgadget.Affine{X: c.CinC1X[i], Y: c.CinC1Y[i]}
		tiles[i] = shuffle.Tile{CIn: elgamal.Ciphertext{C0: c0, C1: c1}, R: c.R[i]}
		cinPairs[i] = [2]ecgadget.Affine{c0, c1}
	}

	outs, err := shuffle.Run(api, cb, pow2, generator, aggPK, tiles, c.Permutation)
	if err != nil {
		return err
	}

	coutPairs := make([][2]ecgadget.Affine, n)
	for i, out := range outs {
		coutPairs[i] = [2]ecgadget.Affine{out.COut.C0, out.COut.C1}
	}

	cinRows, err := sumPairs(api, cb, cinPairs, "circuit.cin_sum")
	if err != nil {
		return err
	}
	coutRows, err := sumPairs(api, cb, coutPairs, "circuit.cout_sum")
	if err != nil {
		return err
	}

	cinSum, err := accumulate(api, cb, cinRows, "circuit.cin_sum_acc")
	if err != nil {
		return err
	}
	coutSum, err := accumulate(api, cb, coutRows, "circuit.cout_sum_acc")
	if err != nil {
		return err
	}

	api.AssertIsEqual(cinSum.X, c.CinSumX)
	api.AssertIsEqual(cinSum.Y, c.CinSumY)
	api.AssertIsEqual(coutSum.X, c.CoutSumX)
	api.AssertIsEqual(coutSum.Y, c.CoutSumY)

	return nil
}

// sumPairs computes, for each tile i, the projective sum pairs[i][0] +
// pairs[i][1] (the per-row "cin_sum"/"cout_sum" column of spec §4.6),
// asserting the z_inv_gate invariant on each.
func sumPairs(api frontend.API, cb *builder.Builder, pairs [][2]ecgadget.Affine, label string) ([]ecgadget.Projective, error) {
	rows := make([]ecgadget.Projective, len(pairs))
	for i, p := range pairs {
		pa := ecgadget.LiftAffineMaybeIdentity(api, p[0])
		pb := ecgadget.LiftAffineMaybeIdentity(api, p[1])
		sum, err := ecgadget.CompleteAdd(api, pa, pb)
		if err != nil {
			return nil, err
		}
		ecgadget.ZInvGate(api, cb, sum, fmt.Sprintf("%s.row%d", label, i))
		rows[i] = sum
	}
	cb.Gate(1)
	return rows, nil
}

// accumulate runs the boundary-sum recurrence of spec §4.6: seed the
// accumulator with rows[0] (not add-to-identity, since the complete formula
// applied to an identity-with-Z=0 operand would alter Z), then fold in every
// later row, and reduce the final total to affine.
func accumulate(api frontend.API, cb *builder.Builder, rows []ecgadget.Projective, label string) (ecgadget.Affine, error) {
	acc := rows[0]
	for i := 1; i < len(rows); i++ {
		var err error
		acc, err = ecgadget.CompleteAdd(api, acc, rows[i])
		if err != nil {
			return ecgadget.Affine{}, err
		}
	}
	ecgadget.ZInvGate(api, cb, acc, label+".final")
	cb.Gate(1)
	return ecgadget.ReduceToAffine(api, acc), nil
}
