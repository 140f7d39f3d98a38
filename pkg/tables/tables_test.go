package tables_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/zk-mahjong/shuffle-circuit/internal/curvemodel"
	"github.com/zk-mahjong/shuffle-circuit/pkg/tables"
)

func TestPow2NativeRowsCount(t *testing.T) {
	rows := tables.NativeRows()
	require.Len(t, rows, tables.Pow2Rows)
	require.Equal(t, big.NewInt(1), rows[0])
	require.Equal(t, big.NewInt(2), rows[1])
	require.Equal(t, big.NewInt(4), rows[2])
}

func TestScalarMulTableRecordAndContains(t *testing.T) {
	var tbl tables.ScalarMulTable
	row := tbl.Record(curvemodel.Generator, big.NewInt(7))
	require.True(t, tbl.Contains(curvemodel.Generator, big.NewInt(7), row.Product))
	require.False(t, tbl.Contains(curvemodel.Generator, big.NewInt(8), row.Product))
}

func TestScalarMulTableRowsOrderPreserved(t *testing.T) {
	var tbl tables.ScalarMulTable
	tbl.Record(curvemodel.Generator, big.NewInt(1))
	tbl.Record(curvemodel.Generator, big.NewInt(2))
	rows := tbl.Rows()
	bigEq := cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })
	if diff := cmp.Diff(rows[0].Scalar, big.NewInt(1), bigEq); diff != "" {
		t.Fatalf("unexpected first row scalar (-got +want):\n%s", diff)
	}
	require.Equal(t, big.NewInt(2), rows[1].Scalar)
}

func TestElGamalTableContains(t *testing.T) {
	cin := [2]curvemodel.Affine{curvemodel.Identity(), curvemodel.Generator}
	cout := [2]curvemodel.Affine{curvemodel.Generator, curvemodel.Double(curvemodel.FromAffine(curvemodel.Generator)).ToAffine()}
	tbl := tables.ElGamalTable{
		AggPK: curvemodel.Generator,
		Rows: []tables.ElGamalRow{
			{Index: 3, CIn: cin, COut: cout},
		},
	}
	require.True(t, tbl.Contains(3, cin, cout))
	require.False(t, tbl.Contains(4, cin, cout))
}

func TestShuffleTableRecordAndContains(t *testing.T) {
	shuffled := [2]curvemodel.Affine{curvemodel.Generator, curvemodel.Double(curvemodel.FromAffine(curvemodel.Generator)).ToAffine()}
	var tbl tables.ShuffleTable
	tbl.Record(2, shuffled)
	require.True(t, tbl.Contains(2, shuffled))
	require.False(t, tbl.Contains(3, shuffled))
}
