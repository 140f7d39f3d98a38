package ecgadget

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zk-mahjong/shuffle-circuit/pkg/builder"
)

// BitsF is the bit length of the scalar field, giving a BitsF+1-row trace
// per spec §3/§4.3 (254 doubling steps plus the implicit terminal
// reduction).
const BitsF = 254

// ScalarMul is the row-wise double-and-add state machine of spec §4.3,
// unrolled as a loop over the MSB-first bit decomposition of scalar: one
// iteration per spec row, with q_enable implicitly 1 throughout (this
// circuit has no padding rows - the multiplicity all callers need is fixed
// at compile time by how many times ScalarMul is invoked). The complete
// addition/doubling formulas handle the Initial state (acc starts at the
// identity) and the scalar_bit=0 "double only" transition without any
// special-cased branch: doubling the identity yields the identity, and
// adding the identity to base yields base.
//
// cb receives the per-row z_inv_gate obligations (spec §4.3 item 2);
// ScalarMul finalizes them itself (cb.Gate is invoked once per row
// internally with selector 1, matching q_enable=1 for every row).
func ScalarMul(api frontend.API, cb *builder.Builder, base Affine, scalar frontend.Variable) (Affine, error) {
	bits := api.ToBinary(scalar, BitsF) // LSB-first
	baseProj := FromAffine(base)
	acc := IdentityProjective()

	for i := BitsF - 1; i >= 0; i-- {
		bit := bits[i]

		doubled, err := Double(api, acc)
		if err != nil {
			return Affine{}, err
		}
		ZInvGate(api, cb, doubled, "scalarmul.result2")

		added, err := CompleteAdd(api, doubled, baseProj)
		if err != nil {
			return Affine{}, err
		}

		acc = Projective{
			X:    api.Select(bit, added.X, doubled.X),
			Y:    api.Select(bit, added.Y, doubled.Y),
			Z:    api.Select(bit, added.Z, doubled.Z),
			Zinv: api.Select(bit, added.Zinv, doubled.Zinv),
		}
		ZInvGate(api, cb, acc, "scalarmul.acc")
		cb.Gate(1)
	}

	ZInvGate(api, cb, acc, "scalarmul.result")
	cb.Gate(1)

	return ReduceToAffine(api, acc), nil
}
