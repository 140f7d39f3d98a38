// Package tables implements spec §3/§5's shared lookup tables. Pow2Table is
// the one table whose rows are genuinely static (witness-independent), so it
// is backed by gnark's std/lookup/logderivlookup - a real dynamic lookup
// argument, appropriate here because the queried index (origin_index) is a
// witness value but the table contents (i, 2^i) are circuit constants. The
// other tables named by the spec (ScalarMulTable, ElGamalTable, ShuffleTable)
// have witness-dependent rows; SPEC_FULL.md §6 explains why those are
// represented here only as native-side recorders (used by tests) rather than
// in-circuit lookup arguments, with the cross-subcircuit obligation they
// encode implemented as direct gadget composition instead.
package tables

//go:generate go run github.com/zk-mahjong/shuffle-circuit/internal/codegen/cmd/gentables -out pow2_literals_gen.go -rows 255

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/lookup/logderivlookup"
)

// Pow2Rows is the number of rows spec §6 requires: i in [0, 255).
const Pow2Rows = 255

// Pow2Table is the in-circuit (i, 2^i) membership table of spec §4.5/§6.
// It must be constructed exactly once per proof by the top-level circuit and
// shared by value with every subcircuit that queries it (spec §5).
type Pow2Table struct {
	t *logderivlookup.Table
}

// NewPow2Table builds the table with rows 0..254 holding 2^i mod F. Callers
// construct this once at the top level (pkg/circuit) and pass the returned
// value to every consumer (pkg/shuffle); the underlying column handles are
// immutable identifiers, so sharing by value is safe (spec §5).
func NewPow2Table(api frontend.API) Pow2Table {
	t := logderivlookup.New(api)
	pow := frontend.Variable(1)
	for i := 0; i < Pow2Rows; i++ {
		t.Insert(pow)
		pow = api.Mul(pow, 2)
	}
	return Pow2Table{t: t}
}

// Lookup returns 2^index, and implicitly asserts 0 <= index < Pow2Rows (a
// logderivlookup query against an out-of-range index cannot be satisfied).
func (p Pow2Table) Lookup(index frontend.Variable) frontend.Variable {
	return p.t.Lookup(index)[0]
}

// NativeRows returns the native-side (i, 2^i mod F) pairs for
// i in [0, Pow2Rows), reduced modulo the scalar field F - the native
// reference for the rows NewPow2Table inserts, checked by tables_test.go.
func NativeRows() []*big.Int {
	rows := make([]*big.Int, Pow2Rows)
	var v fr.Element
	v.SetOne()
	for i := 0; i < Pow2Rows; i++ {
		rows[i] = v.BigInt(new(big.Int))
		v.Double(&v)
	}
	return rows
}
