// Package elgamal implements the per-tile ElGamal re-mask subcircuit of
// spec §4.4: given a ciphertext (c0, c1), a fresh randomness scalar r, the
// curve generator G and the aggregated public key aggPK, it asserts
// cout = cin + r*(G, aggPK).
package elgamal

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zk-mahjong/shuffle-circuit/pkg/builder"
	"github.com/zk-mahjong/shuffle-circuit/pkg/ecgadget"
)

// Ciphertext is an ElGamal pair (c0, c1) in affine form - the public-facing
// representation exposed to the ElGamalTable lookup obligation (spec §4.4
// "Lookup exposure").
type Ciphertext struct {
	C0, C1 ecgadget.Affine
}

// Remask asserts that cout is the re-mask of cin under randomness r against
// (generator, aggPK), and returns cout. It composes two ScalarMul calls and
// one CompleteAdd per component directly (SPEC_FULL.md §6: the two
// ScalarMulTable lookup obligations of spec §4.4 are discharged by direct
// gadget composition rather than a lookup argument, since the table rows
// here are witness-dependent, not static).
func Remask(api frontend.API, cb *builder.Builder, generator, aggPK ecgadget.Affine, cin Ciphertext, r frontend.Variable) (Ciphertext, error) {
	cin0Proj := ecgadget.LiftAffineMaybeIdentity(api, cin.C0)
	cin1Proj := ecgadget.FromAffine(cin.C1)

	ecgadget.ZInvGate(api, cb, cin0Proj, "elgamal.cin0")
	cb.RequireZero("elgamal.cin1: z=1", api.Sub(cin1Proj.Z, 1))
	ecgadget.ZInvGate(api, cb, cin1Proj, "elgamal.cin1")

	cb.Gate(1)

	rG, err := ecgadget.ScalarMul(api, cb, generator, r)
	if err != nil {
		return Ciphertext{}, err
	}
	rAggPK, err := ecgadget.ScalarMul(api, cb, aggPK, r)
	if err != nil {
		return Ciphertext{}, err
	}

	rGProj := ecgadget.LiftAffineMaybeIdentity(api, rG)
	rAggPKProj := ecgadget.LiftAffineMaybeIdentity(api, rAggPK)

	cout0Proj, err := ecgadget.CompleteAdd(api, rGProj, cin0Proj)
	if err != nil {
		return Ciphertext{}, err
	}
	cout1Proj, err := ecgadget.CompleteAdd(api, rAggPKProj, cin1Proj)
	if err != nil {
		return Ciphertext{}, err
	}

	ecgadget.ZInvGate(api, cb, cout0Proj, "elgamal.cout0")
	ecgadget.ZInvGate(api, cb, cout1Proj, "elgamal.cout1")
	cb.Gate(1)

	return Ciphertext{
		C0: ecgadget.ReduceToAffine(api, cout0Proj),
		C1: ecgadget.ReduceToAffine(api, cout1Proj),
	}, nil
}
