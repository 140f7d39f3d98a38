package circuit

import (
	"math/big"

	"github.com/zk-mahjong/shuffle-circuit/internal/curvemodel"
)

// Fixture bundles a complete, valid input to BuildWitness - the deterministic
// demo decks of spec §8's S1-S4 scenarios.
type Fixture struct {
	AggPK       curvemodel.Affine
	Messages    []Ciphertext
	Permutation []int
	Randomness  []*big.Int
}

func scaledG(k int64) curvemodel.Affine {
	return curvemodel.ScalarMul(curvemodel.Generator, big.NewInt(k)).ToAffine()
}

// TrivialFixture is spec §8 S1: a single tile whose c0 is already the
// identity (an un-masked ciphertext), re-masked with r=0 - a no-op re-mask.
func TrivialFixture() Fixture {
	return Fixture{
		AggPK: scaledG(1),
		Messages: []Ciphertext{
			{C0: curvemodel.Identity(), C1: scaledG(1)},
		},
		Permutation: []int{0},
		Randomness:  []*big.Int{big.NewInt(0)},
	}
}

// SingleMaskFixture is spec §8 S2: a single tile re-masked with a nonzero
// randomness scalar under a nontrivial aggregated key.
func SingleMaskFixture() Fixture {
	return Fixture{
		AggPK: scaledG(5),
		Messages: []Ciphertext{
			{C0: curvemodel.Identity(), C1: scaledG(2)},
		},
		Permutation: []int{0},
		Randomness:  []*big.Int{big.NewInt(3)},
	}
}

// IdentityPermFixture is spec §8 S3: two tiles, permutation [0, 1].
func IdentityPermFixture() Fixture {
	return Fixture{
		AggPK: scaledG(1),
		Messages: []Ciphertext{
			{C0: curvemodel.Identity(), C1: scaledG(1)},
			{C0: curvemodel.Identity(), C1: scaledG(2)},
		},
		Permutation: []int{0, 1},
		Randomness:  []*big.Int{big.NewInt(1), big.NewInt(1)},
	}
}

// SwapPermFixture is spec §8 S4: the same deck as IdentityPermFixture with
// the two tiles swapped, [1, 0]. The output multiset is identical; only the
// output order changes.
func SwapPermFixture() Fixture {
	f := IdentityPermFixture()
	f.Permutation = []int{1, 0}
	return f
}
