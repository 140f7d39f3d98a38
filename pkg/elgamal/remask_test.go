package elgamal_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	gnarktest "github.com/consensys/gnark/test"

	"github.com/zk-mahjong/shuffle-circuit/internal/curvemodel"
	"github.com/zk-mahjong/shuffle-circuit/pkg/builder"
	"github.com/zk-mahjong/shuffle-circuit/pkg/ecgadget"
	"github.com/zk-mahjong/shuffle-circuit/pkg/elgamal"
)

type remaskCircuit struct {
	GenX, GenY     frontend.Variable
	AggPKX, AggPKY frontend.Variable
	C0X, C0Y       frontend.Variable
	C1X, C1Y       frontend.Variable
	R              frontend.Variable
	WantC0X        frontend.Variable `gnark:",public"`
	WantC0Y        frontend.Variable `gnark:",public"`
	WantC1X        frontend.Variable `gnark:",public"`
	WantC1Y        frontend.Variable `gnark:",public"`
}

func (c *remaskCircuit) Define(api frontend.API) error {
	cb := builder.New(api, 0)
	generator := ecgadget.Affine{X: c.GenX, Y: c.GenY}
	aggPK := ecgadget.Affine{X: c.AggPKX, Y: c.AggPKY}
	cin := elgamal.Ciphertext{
		C0: ecgadget.Affine{X: c.C0X, Y: c.C0Y},
		C1: ecgadget.Affine{X: c.C1X, Y: c.C1Y},
	}
	cout, err := elgamal.Remask(api, cb, generator, aggPK, cin, c.R)
	if err != nil {
		return err
	}
	api.AssertIsEqual(cout.C0.X, c.WantC0X)
	api.AssertIsEqual(cout.C0.Y, c.WantC0Y)
	api.AssertIsEqual(cout.C1.X, c.WantC1X)
	api.AssertIsEqual(cout.C1.Y, c.WantC1Y)
	return nil
}

// nativeRemask mirrors Remask's semantics using curvemodel, the reference
// this test checks the circuit against.
func nativeRemask(aggPK curvemodel.Affine, cin0, cin1 curvemodel.Affine, r *big.Int) (curvemodel.Affine, curvemodel.Affine) {
	rG := curvemodel.ScalarMul(curvemodel.Generator, r)
	rPK := curvemodel.ScalarMul(aggPK, r)
	cout0 := curvemodel.Add(rG, curvemodel.FromAffine(cin0))
	cout1 := curvemodel.Add(rPK, curvemodel.FromAffine(cin1))
	return cout0.ToAffine(), cout1.ToAffine()
}

func toBig(e interface{ BigInt(*big.Int) *big.Int }) *big.Int {
	return e.BigInt(new(big.Int))
}

func assignmentFor(aggPKScalar, r int64, cin0Identity bool) *remaskCircuit {
	aggPK := curvemodel.ScalarMul(curvemodel.Generator, big.NewInt(aggPKScalar)).ToAffine()
	cin0 := curvemodel.Identity()
	if !cin0Identity {
		cin0 = curvemodel.ScalarMul(curvemodel.Generator, big.NewInt(42)).ToAffine()
	}
	cin1 := curvemodel.ScalarMul(curvemodel.Generator, big.NewInt(99)).ToAffine()
	rVal := big.NewInt(r)
	wantC0, wantC1 := nativeRemask(aggPK, cin0, cin1, rVal)

	return &remaskCircuit{
		GenX: toBig(curvemodel.Generator.X), GenY: toBig(curvemodel.Generator.Y),
		AggPKX: toBig(aggPK.X), AggPKY: toBig(aggPK.Y),
		C0X: toBig(cin0.X), C0Y: toBig(cin0.Y),
		C1X: toBig(cin1.X), C1Y: toBig(cin1.Y),
		R:       rVal,
		WantC0X: toBig(wantC0.X), WantC0Y: toBig(wantC0.Y),
		WantC1X: toBig(wantC1.X), WantC1Y: toBig(wantC1.Y),
	}
}

func TestRemaskNonIdentityC0(t *testing.T) {
	assert := gnarktest.NewAssert(t)
	assign := assignmentFor(7, 13, false)
	assert.SolvingSucceeded(&remaskCircuit{}, assign, gnarktest.WithCurves(ecc.BN254))
}

func TestRemaskIdentityC0FirstMask(t *testing.T) {
	assert := gnarktest.NewAssert(t)
	assign := assignmentFor(7, 13, true)
	assert.SolvingSucceeded(&remaskCircuit{}, assign, gnarktest.WithCurves(ecc.BN254))
}

func TestRemaskZeroRandomness(t *testing.T) {
	assert := gnarktest.NewAssert(t)
	assign := assignmentFor(7, 0, false)
	assert.SolvingSucceeded(&remaskCircuit{}, assign, gnarktest.WithCurves(ecc.BN254))
}

func TestRemaskWrongOutputFails(t *testing.T) {
	assert := gnarktest.NewAssert(t)
	assign := assignmentFor(7, 13, false)
	assign.WantC0X = big.NewInt(0)
	assign.WantC0Y = big.NewInt(0)
	assert.SolvingFailed(&remaskCircuit{}, assign, gnarktest.WithCurves(ecc.BN254))
}
