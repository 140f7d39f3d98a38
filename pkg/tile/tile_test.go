package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zk-mahjong/shuffle-circuit/pkg/tile"
)

func TestEncodeIsOnCurve(t *testing.T) {
	for _, id := range []int{0, 1, 33, 67, 135} {
		p, err := tile.Encode(id)
		require.NoError(t, err)
		require.True(t, p.IsOnCurve())
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a, err := tile.Encode(42)
	require.NoError(t, err)
	b, err := tile.Encode(42)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	_, err := tile.Encode(-1)
	require.ErrorIs(t, err, tile.ErrOutOfRange)
	_, err = tile.Encode(tile.NumTiles)
	require.ErrorIs(t, err, tile.ErrOutOfRange)
}

func TestDecodeRoundTrip(t *testing.T) {
	p, err := tile.Encode(77)
	require.NoError(t, err)
	id, ok := tile.Decode(p)
	require.True(t, ok)
	require.Equal(t, 77, id)
}

func TestDistinctIDsEncodeToDistinctPoints(t *testing.T) {
	seen := map[[2]string]bool{}
	for id := 0; id < tile.NumTiles; id++ {
		p, err := tile.Encode(id)
		require.NoError(t, err)
		key := [2]string{p.X.String(), p.Y.String()}
		require.False(t, seen[key], "collision at tile id %d", id)
		seen[key] = true
	}
}
