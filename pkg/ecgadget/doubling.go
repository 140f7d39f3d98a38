package ecgadget

import (
	"github.com/consensys/gnark/frontend"
)

// Double emits Renes-Costello-Batina Algorithm 9
// (https://eprint.iacr.org/2015/1060.pdf) computing 2*p. Doubling is not
// complete at the identity, so the gadget computes is_z_zero = 1 - Z*Zinv
// and selects the identity (0, 1, 0) componentwise when is_z_zero holds -
// the one place doubling-of-identity needs special handling (spec §4.2/§9).
func Double(api frontend.API, p Projective) (Projective, error) {
	t0 := api.Mul(p.Y, p.Y)
	z3 := api.Mul(8, t0)
	t1 := api.Mul(p.Y, p.Z)
	t2 := api.Mul(p.Z, p.Z)
	t2 = api.Mul(3, B, t2)
	x3 := api.Mul(t2, z3)
	y3 := api.Add(t0, t2)
	z3 = api.Mul(t1, z3)
	t2 = api.Mul(3, t2)
	t0 = api.Sub(t0, t2)
	y3 = api.Mul(t0, y3)
	y3 = api.Add(x3, y3)
	t1 = api.Mul(p.X, p.Y)
	x3 = api.Mul(2, t0, t1)

	isZZero := api.Sub(1, api.Mul(p.Z, p.Zinv))

	resX := api.Select(isZZero, 0, x3)
	resY := api.Select(isZZero, 1, y3)
	resZ := api.Select(isZZero, 0, z3)

	zinvOuts, err := api.Compiler().NewHint(zInvHint, 1, resZ)
	if err != nil {
		return Projective{}, err
	}
	resZinv := api.Select(isZZero, 0, zinvOuts[0])

	return Projective{X: resX, Y: resY, Z: resZ, Zinv: resZinv}, nil
}
