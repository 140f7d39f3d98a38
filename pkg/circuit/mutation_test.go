package circuit_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	gnarktest "github.com/consensys/gnark/test"

	"github.com/zk-mahjong/shuffle-circuit/pkg/circuit"
)

// mutation names one field of a built witness and how to corrupt it.
type mutation struct {
	name  string
	apply func(w *circuit.ShuffleEncryptCircuit)
}

// TestSingleFieldMutationsFail generalizes spec §8 S5/S6: starting from a
// known-valid witness, corrupt exactly one field at a time and assert the
// prover rejects it. This is the negative-space complement to the positive
// fixture tests: every witness-supplied value that participates in a
// constraint must actually be checked, not merely carried through.
func TestSingleFieldMutationsFail(t *testing.T) {
	mutations := []mutation{
		{"cin_c0x", func(w *circuit.ShuffleEncryptCircuit) { w.CinC0X[0] = big.NewInt(1) }},
		{"cin_c1y", func(w *circuit.ShuffleEncryptCircuit) { w.CinC1Y[1] = big.NewInt(1) }},
		{"randomness", func(w *circuit.ShuffleEncryptCircuit) { w.R[0] = big.NewInt(999) }},
		{"permutation_duplicate", func(w *circuit.ShuffleEncryptCircuit) { w.Permutation[1] = w.Permutation[0] }},
		{"agg_pk_x", func(w *circuit.ShuffleEncryptCircuit) { w.AggPKX = big.NewInt(1) }},
		{"cin_sum_x", func(w *circuit.ShuffleEncryptCircuit) { w.CinSumX = big.NewInt(1) }},
		{"cout_sum_y", func(w *circuit.ShuffleEncryptCircuit) { w.CoutSumY = big.NewInt(1) }},
	}

	for _, m := range mutations {
		m := m
		t.Run(m.name, func(t *testing.T) {
			assert := gnarktest.NewAssert(t)
			f := circuit.IdentityPermFixture()
			w, err := circuit.BuildWitness(f.AggPK, f.Messages, f.Permutation, f.Randomness)
			if err != nil {
				t.Fatalf("BuildWitness: %v", err)
			}
			m.apply(w)
			assert.SolvingFailed(blankCircuit(len(f.Messages)), w, gnarktest.WithCurves(ecc.BN254))
		})
	}
}
