// Package curvemodel implements the native (out-of-circuit) arithmetic of
// the short Weierstrass curve E used by the shuffle/re-encryption circuit:
// Grumpkin, the cycle partner of BN254 (E's base field equals BN254's scalar
// field Fr). It exists to build the trusted reference witness that the
// in-circuit gadgets of pkg/ecgadget are checked against; it never runs
// inside a SNARK.
package curvemodel

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrInvalidPoint is returned when an affine point does not satisfy the
// curve equation.
var ErrInvalidPoint = errors.New("curvemodel: point not on curve")

// B is Grumpkin's curve constant in y^2 = x^3 + B, i.e. B = -17 mod Fr(bn254).
var B = func() fr.Element {
	var b fr.Element
	b.SetInt64(-17)
	return b
}()

// Generator is a fixed base point G on E: the point with the smallest x >= 1
// that lies on the curve, found by mustGenerator. No order check is made on
// it; the circuit only relies on G lying on E.
var Generator = mustGenerator()

func mustGenerator() Affine {
	// A low-complexity deterministic generator: search increasing x for the
	// first point on the curve, mirroring how gnark-crypto's own curve
	// constructors derive a canonical generator from curve parameters.
	var x, one fr.Element
	x.SetOne()
	one.SetOne()
	for {
		if p, ok := liftX(x); ok {
			return p
		}
		x.Add(&x, &one)
	}
}

func liftX(x fr.Element) (Affine, bool) {
	var x3, y2, b fr.Element
	x3.Square(&x).Mul(&x3, &x)
	b = B
	y2.Add(&x3, &b)
	var y fr.Element
	if y.Sqrt(&y2) == nil {
		return Affine{}, false
	}
	return Affine{X: x, Y: y}, true
}

// FieldOrder returns E's base field modulus (equivalently, BN254's scalar
// field order) - the bound every scalar assigned into the circuit (a
// randomness value, an aggregate key) must be reduced under.
func FieldOrder() *big.Int {
	return fr.Modulus()
}

// Affine is a point (x, y) on E, or the identity sentinel (0, 1) used inside
// the circuit (see spec §3).
type Affine struct {
	X, Y fr.Element
}

// Identity returns the circuit's sentinel representation of the point at
// infinity in affine form.
func Identity() Affine {
	a := Affine{}
	a.Y.SetOne()
	return a
}

// IsIdentity reports whether a equals the affine identity sentinel (0, 1).
func (a Affine) IsIdentity() bool {
	return a.X.IsZero() && a.Y.IsOne()
}

// IsOnCurve checks y^2 = x^3 + B, treating the (0,1) sentinel as always on
// curve (it never satisfies the cubic, by construction, and is accepted as
// the identity).
func (a Affine) IsOnCurve() bool {
	if a.IsIdentity() {
		return true
	}
	var lhs, rhs, x3 fr.Element
	lhs.Square(&a.Y)
	x3.Square(&a.X).Mul(&x3, &a.X)
	rhs.Add(&x3, &B)
	return lhs.Equal(&rhs)
}

// Validate returns ErrInvalidPoint if a is not on E.
func (a Affine) Validate() error {
	if !a.IsOnCurve() {
		return ErrInvalidPoint
	}
	return nil
}

// Projective is (X, Y, Z, Zinv) with the invariants of spec §3: Z*Zinv = 1
// when Z != 0, and Zinv = 0 when Z = 0.
type Projective struct {
	X, Y, Z, Zinv fr.Element
}

// IdentityProjective is the canonical projective identity Z=0, X=0, Y=1,
// Zinv=0.
func IdentityProjective() Projective {
	p := Projective{}
	p.Y.SetOne()
	return p
}

// FromAffine lifts an affine point to projective with Z=1 (or the identity
// when a is the affine sentinel).
func FromAffine(a Affine) Projective {
	if a.IsIdentity() {
		return IdentityProjective()
	}
	p := Projective{X: a.X, Y: a.Y}
	p.Z.SetOne()
	p.Zinv.SetOne()
	return p
}

// ToAffine reduces p to affine using the witness-supplied Zinv hint,
// returning the identity sentinel when Z = 0.
func (p Projective) ToAffine() Affine {
	if p.Z.IsZero() {
		return Identity()
	}
	var a Affine
	a.X.Mul(&p.X, &p.Zinv)
	a.Y.Mul(&p.Y, &p.Zinv)
	return a
}

// fillZinv sets Zinv to the modular inverse of Z, or zero when Z is zero,
// exactly matching the witness-generation hint required by the z_inv_gate
// invariant (spec §3).
func (p *Projective) fillZinv() {
	if p.Z.IsZero() {
		p.Zinv.SetZero()
		return
	}
	p.Zinv.Inverse(&p.Z)
}

// Add implements the complete addition law, Renes-Costello-Batina Algorithm
// 7, for short Weierstrass curves with constant B. It is correct for any
// combination of operands, including either or both being the identity.
func Add(p, q Projective) Projective {
	b := B
	t0 := new(fr.Element).Mul(&p.X, &q.X)
	t1 := new(fr.Element).Mul(&p.Y, &q.Y)
	t2 := new(fr.Element).Mul(&p.Z, &q.Z)
	t3 := new(fr.Element).Add(&p.X, &p.Y)
	t4 := new(fr.Element).Add(&q.X, &q.Y)
	t3.Mul(t3, t4)
	t4.Add(t0, t1)
	t3.Sub(t3, t4)
	t4.Add(&p.Y, &p.Z)
	x3 := new(fr.Element).Add(&q.Y, &q.Z)
	t4.Mul(t4, x3)
	x3.Add(t1, t2)
	t4.Sub(t4, x3)
	x3.Add(&p.X, &p.Z)
	y3 := new(fr.Element).Add(&q.X, &q.Z)
	x3.Mul(x3, y3)
	y3.Add(t0, t2)
	y3.Sub(x3, y3)
	x3.Add(t0, t0)
	t0.Add(x3, t0)
	t2.Mul(&b, t2)
	t2.Mul(t2, big3())
	z3 := new(fr.Element).Add(t1, t2)
	t1.Sub(t1, t2)
	y3.Mul(&b, y3)
	y3.Mul(y3, big3())
	x3.Mul(t4, y3)
	t2.Mul(t3, t1)
	x3.Sub(t2, x3)
	y3.Mul(y3, t0)
	t1.Mul(t1, z3)
	y3.Add(t1, y3)
	t0.Mul(t0, t3)
	z3.Mul(z3, t4)
	z3.Add(z3, t0)

	out := Projective{X: *x3, Y: *y3, Z: *z3}
	out.fillZinv()
	return out
}

// Double implements the complete doubling law, Algorithm 9, selecting the
// identity when the input is already the identity (the one place doubling
// is not complete without a select, per spec §4.2/§9).
func Double(p Projective) Projective {
	b := B
	t0 := new(fr.Element).Square(&p.Y)
	z3 := new(fr.Element).Mul(t0, big8())
	t1 := new(fr.Element).Mul(&p.Y, &p.Z)
	t2 := new(fr.Element).Square(&p.Z)
	t2.Mul(t2, &b)
	t2.Mul(t2, big3())
	x3 := new(fr.Element).Mul(t2, z3)
	y3 := new(fr.Element).Add(t0, t2)
	z3.Mul(t1, z3)
	t2.Mul(t2, big3())
	t0.Sub(t0, t2)
	y3.Mul(t0, y3)
	y3.Add(x3, y3)
	t1.Mul(&p.X, &p.Y)
	x3.Mul(t0, t1)
	x3.Mul(x3, big2())

	if p.Z.IsZero() {
		return IdentityProjective()
	}
	out := Projective{X: *x3, Y: *y3, Z: *z3}
	out.fillZinv()
	return out
}

// ScalarMul computes scalar*base via the same MSB-first double-and-add
// recurrence as the ScalarMul subcircuit (spec §4.3): it is the reference
// implementation the circuit's trace is checked against.
func ScalarMul(base Affine, scalar *big.Int) Projective {
	bits := scalarBits(scalar, BitsF)
	acc := IdentityProjective()
	baseProj := FromAffine(base)
	for _, bit := range bits {
		acc = Double(acc)
		if bit == 1 {
			acc = Add(acc, baseProj)
		}
	}
	return acc
}

// BitsF is the bit length of the scalar field used for MSB-first
// decomposition (matches spec §3's 254-bit scalar, 255-row trace).
const BitsF = 254

// scalarBits returns the MSB-first bit decomposition of scalar into n bits.
func scalarBits(scalar *big.Int, n int) []int {
	bits := make([]int, n)
	for i := 0; i < n; i++ {
		bit := scalar.Bit(n - 1 - i)
		bits[i] = int(bit)
	}
	return bits
}

func big2() *fr.Element { var e fr.Element; e.SetInt64(2); return &e }
func big3() *fr.Element { var e fr.Element; e.SetInt64(3); return &e }
func big8() *fr.Element { var e fr.Element; e.SetInt64(8); return &e }
