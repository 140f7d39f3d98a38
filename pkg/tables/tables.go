package tables

import (
	"math/big"

	"github.com/zk-mahjong/shuffle-circuit/internal/curvemodel"
)

// ScalarMulTable is the native-side recorder for the ScalarMul subcircuit's
// lookup exposure (spec §4.3 "Lookup exposure"): one row per (base, scalar,
// product) triple. In-circuit, this obligation is discharged by direct
// composition (SPEC_FULL.md §6); this type exists so the "constructed once,
// shared by value" ownership model and the table-shaped testable
// properties of spec §8 have a concrete, independently checkable home in
// tests.
type ScalarMulTable struct {
	rows []ScalarMulRow
}

// ScalarMulRow is one terminal (is_last=1) row: product = scalar * base.
type ScalarMulRow struct {
	Base    curvemodel.Affine
	Scalar  *big.Int
	Product curvemodel.Affine
}

// Record appends a row computed via curvemodel.ScalarMul, mirroring how the
// ScalarMul subcircuit's terminal row is populated.
func (t *ScalarMulTable) Record(base curvemodel.Affine, scalar *big.Int) ScalarMulRow {
	row := ScalarMulRow{
		Base:    base,
		Scalar:  new(big.Int).Set(scalar),
		Product: curvemodel.ScalarMul(base, scalar).ToAffine(),
	}
	t.rows = append(t.rows, row)
	return row
}

// Rows returns the recorded rows, in insertion order.
func (t *ScalarMulTable) Rows() []ScalarMulRow { return t.rows }

// Contains reports whether (base, scalar, product) is a recorded row,
// i.e. whether the lookup obligation
// (1, 1, scalar, base.x, base.y, product.x, product.y) holds.
func (t *ScalarMulTable) Contains(base curvemodel.Affine, scalar *big.Int, product curvemodel.Affine) bool {
	for _, r := range t.rows {
		if r.Scalar.Cmp(scalar) == 0 &&
			r.Base.X.Equal(&base.X) && r.Base.Y.Equal(&base.Y) &&
			r.Product.X.Equal(&product.X) && r.Product.Y.Equal(&product.Y) {
			return true
		}
	}
	return false
}

// ElGamalTable is the native-side recorder for the ElGamal subcircuit's
// lookup exposure (spec §4.4 "Lookup exposure"): one row per tile.
type ElGamalTable struct {
	AggPK curvemodel.Affine
	Rows  []ElGamalRow
}

// ElGamalRow is one tile's public-facing re-mask record.
type ElGamalRow struct {
	Index int
	CIn   [2]curvemodel.Affine
	COut  [2]curvemodel.Affine
}

// Contains reports whether a row with the given origin index, cin, and cout
// exists - the obligation the Shuffle subcircuit's cross-lookup checks.
func (t *ElGamalTable) Contains(originIndex int, cin, cout [2]curvemodel.Affine) bool {
	for _, r := range t.Rows {
		if r.Index != originIndex {
			continue
		}
		if !r.CIn[0].X.Equal(&cin[0].X) || !r.CIn[0].Y.Equal(&cin[0].Y) {
			continue
		}
		if !r.CIn[1].X.Equal(&cin[1].X) || !r.CIn[1].Y.Equal(&cin[1].Y) {
			continue
		}
		if !r.COut[0].X.Equal(&cout[0].X) || !r.COut[0].Y.Equal(&cout[0].Y) {
			continue
		}
		if !r.COut[1].X.Equal(&cout[1].X) || !r.COut[1].Y.Equal(&cout[1].Y) {
			continue
		}
		return true
	}
	return false
}

// ShuffleTable is the native-side recorder for the Shuffle subcircuit's
// lookup exposure (spec §4.5 "Lookup exposure"): one row per output
// position.
type ShuffleTable struct {
	Rows []ShuffleRow
}

// ShuffleRow is one output position's shuffled ciphertext.
type ShuffleRow struct {
	Index    int
	Shuffled [2]curvemodel.Affine
}

// Record appends a row for the given output position.
func (t *ShuffleTable) Record(index int, shuffled [2]curvemodel.Affine) ShuffleRow {
	row := ShuffleRow{Index: index, Shuffled: shuffled}
	t.Rows = append(t.Rows, row)
	return row
}

// Contains reports whether a row with the given output index and shuffled
// ciphertext exists - the obligation the ElGamal subcircuit's cross-lookup
// checks against the Shuffle subcircuit's output.
func (t *ShuffleTable) Contains(index int, shuffled [2]curvemodel.Affine) bool {
	for _, r := range t.Rows {
		if r.Index != index {
			continue
		}
		if !r.Shuffled[0].X.Equal(&shuffled[0].X) || !r.Shuffled[0].Y.Equal(&shuffled[0].Y) {
			continue
		}
		if !r.Shuffled[1].X.Equal(&shuffled[1].X) || !r.Shuffled[1].Y.Equal(&shuffled[1].Y) {
			continue
		}
		return true
	}
	return false
}
