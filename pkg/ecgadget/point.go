// Package ecgadget implements the in-circuit arithmetic of the short
// Weierstrass curve E (spec §4.2/§4.3): complete addition and doubling
// gadgets (Renes-Costello-Batina Algorithm 7/9) and the ScalarMul
// subcircuit built from them. All arithmetic here runs on native
// frontend.Variable values - E's base field equals the SNARK's scalar
// field, so no non-native field emulation is required (see SPEC_FULL.md §0).
package ecgadget

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zk-mahjong/shuffle-circuit/pkg/builder"
)

// B is the curve constant in y^2 = x^3 + B for Grumpkin (B = -17).
var B = frontend.Variable(-17)

// Affine is an in-circuit point (x, y). The identity is represented by the
// sentinel (0, 1), matching spec §3.
type Affine struct {
	X, Y frontend.Variable
}

// Projective is an in-circuit point (X, Y, Z, Zinv). Zinv is a witness hint:
// the prover supplies it, and ZInvGate is the only constraint tying it to Z.
type Projective struct {
	X, Y, Z, Zinv frontend.Variable
}

// IdentityProjective returns the circuit constants for the canonical
// projective identity (0, 1, 0, 0).
func IdentityProjective() Projective {
	return Projective{X: 0, Y: 1, Z: 0, Zinv: 0}
}

// FromAffine lifts an affine point to projective with Z=1, Zinv=1. Callers
// must only use this for points known by construction (not by witness
// choice) to have Z=1 - e.g. circuit constants like the generator. The
// r*G/r*H outputs of ScalarMul are the identity when r=0, so they are lifted
// with LiftAffineMaybeIdentity instead.
func FromAffine(a Affine) Projective {
	return Projective{X: a.X, Y: a.Y, Z: 1, Zinv: 1}
}

// ReduceToAffine reduces p to affine, selecting the sentinel (0, 1) when
// Z = 0 and (X*Zinv, Y*Zinv) otherwise - the general-purpose reduction used
// by the ScalarMul terminal row and the aggregation layer's boundary
// accumulators (spec §4.3 item 3, §4.6).
func ReduceToAffine(api frontend.API, p Projective) Affine {
	isZZero := api.Sub(1, api.Mul(p.Z, p.Zinv))
	x := api.Select(isZZero, 0, api.Mul(p.X, p.Zinv))
	y := api.Select(isZZero, 1, api.Mul(p.Y, p.Zinv))
	return Affine{X: x, Y: y}
}

// LiftAffineMaybeIdentity lifts an affine point to projective, choosing
// Z=0 (identity) exactly when a is the (0,1) sentinel and Z=1 otherwise.
// This is the canonical witness choice at the one place spec §3/§4.4
// permits Z to be either 0 or 1: a column whose affine value might
// legitimately be the identity (an un-masked tile's c0, or r*G/r*H when
// r=0).
func LiftAffineMaybeIdentity(api frontend.API, a Affine) Projective {
	isIdentity := api.And(api.IsZero(a.X), api.IsZero(api.Sub(a.Y, 1)))
	z := api.Select(isIdentity, 0, 1)
	zinv := api.Select(isIdentity, 0, 1)
	return Projective{X: a.X, Y: a.Y, Z: z, Zinv: zinv}
}

// ZInvGate emits the z_inv_gate invariant of spec §3: for any projective
// point, Z*Zinv in {0,1}, and Z*Zinv = 0 implies Zinv = 0.
func ZInvGate(api frontend.API, cb *builder.Builder, p Projective, label string) {
	zz := api.Mul(p.Z, p.Zinv)
	cb.RequireBoolean(label+": z*zinv boolean", zz)
	cb.Condition(api.Sub(1, zz), func(cb *builder.Builder) {
		cb.RequireZero(label+": zinv=0 when z=0", p.Zinv)
	})
}
