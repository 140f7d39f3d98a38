package builder_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	gnarktest "github.com/consensys/gnark/test"

	"github.com/zk-mahjong/shuffle-circuit/pkg/builder"
)

// requireBooleanCircuit exercises RequireBoolean and Gate directly: it
// should accept 0/1 witnesses and reject anything else.
type requireBooleanCircuit struct {
	V frontend.Variable
}

func (c *requireBooleanCircuit) Define(api frontend.API) error {
	b := builder.New(api, 0)
	b.RequireBoolean("v is boolean", c.V)
	b.Gate(frontend.Variable(1))
	return nil
}

func TestRequireBooleanAcceptsZeroOne(t *testing.T) {
	assert := gnarktest.NewAssert(t)
	assert.SolvingSucceeded(&requireBooleanCircuit{}, &requireBooleanCircuit{V: 0}, gnarktest.WithCurves(ecc.BN254))
	assert.SolvingSucceeded(&requireBooleanCircuit{}, &requireBooleanCircuit{V: 1}, gnarktest.WithCurves(ecc.BN254))
}

func TestRequireBooleanRejectsOther(t *testing.T) {
	assert := gnarktest.NewAssert(t)
	assert.SolvingFailed(&requireBooleanCircuit{}, &requireBooleanCircuit{V: 2}, gnarktest.WithCurves(ecc.BN254))
}

// conditionCircuit exercises the conditional-scope multiplier: when cond=0
// the gated body constraint is vacuously satisfied even if false.
type conditionCircuit struct {
	Cond  frontend.Variable
	Claim frontend.Variable
}

func (c *conditionCircuit) Define(api frontend.API) error {
	b := builder.New(api, 0)
	b.Condition(c.Cond, func(b *builder.Builder) {
		b.RequireZero("claim holds when cond", c.Claim)
	})
	b.Gate(frontend.Variable(1))
	return nil
}

func TestConditionGatesOnSelector(t *testing.T) {
	assert := gnarktest.NewAssert(t)
	assert.SolvingSucceeded(&conditionCircuit{}, &conditionCircuit{Cond: 0, Claim: 5}, gnarktest.WithCurves(ecc.BN254))
	assert.SolvingSucceeded(&conditionCircuit{}, &conditionCircuit{Cond: 1, Claim: 0}, gnarktest.WithCurves(ecc.BN254))
	assert.SolvingFailed(&conditionCircuit{}, &conditionCircuit{Cond: 1, Claim: 5}, gnarktest.WithCurves(ecc.BN254))
}

func TestConditionPanicsOnNesting(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on nested Condition scopes")
		}
	}()
	// A bare frontend.API is not required to exercise the nesting guard: the
	// panic fires before any api method is invoked.
	b := builder.New(nil, 0)
	b.Condition(frontend.Variable(1), func(b *builder.Builder) {
		b.Condition(frontend.Variable(1), func(*builder.Builder) {})
	})
}

func TestCheckDegreeAllowsWithinBound(t *testing.T) {
	b := builder.New(nil, 4)
	b.CheckDegree(1)
	b.CheckDegree(4)
}

func TestCheckDegreeDisabledWhenZero(t *testing.T) {
	b := builder.New(nil, 0)
	b.CheckDegree(1000)
}

func TestCheckDegreePanicsWhenExceeded(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when observed degree exceeds maxDegree")
		}
	}()
	b := builder.New(nil, 2)
	b.CheckDegree(3)
}

func TestRequireInSetAndRequireEqual(t *testing.T) {
	assert := gnarktest.NewAssert(t)
	assert.SolvingSucceeded(&requireInSetCircuit{}, &requireInSetCircuit{V: 2}, gnarktest.WithCurves(ecc.BN254))
	assert.SolvingFailed(&requireInSetCircuit{}, &requireInSetCircuit{V: 9}, gnarktest.WithCurves(ecc.BN254))
	assert.SolvingSucceeded(&requireEqualCircuit{}, &requireEqualCircuit{A: 7, B: 7}, gnarktest.WithCurves(ecc.BN254))
	assert.SolvingFailed(&requireEqualCircuit{}, &requireEqualCircuit{A: 7, B: 8}, gnarktest.WithCurves(ecc.BN254))
}

// requireInSetCircuit exercises RequireInSet directly: it should accept any
// witness drawn from {1, 2, 3} and reject anything else.
type requireInSetCircuit struct {
	V frontend.Variable
}

func (c *requireInSetCircuit) Define(api frontend.API) error {
	b := builder.New(api, 0)
	b.RequireInSet("v in {1,2,3}", c.V, []frontend.Variable{1, 2, 3})
	b.Gate(frontend.Variable(1))
	return nil
}

// requireEqualCircuit exercises RequireEqual directly.
type requireEqualCircuit struct {
	A, B frontend.Variable
}

func (c *requireEqualCircuit) Define(api frontend.API) error {
	b := builder.New(api, 0)
	b.RequireEqual("a equals b", c.A, c.B)
	b.Gate(frontend.Variable(1))
	return nil
}
