package mathutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zk-mahjong/shuffle-circuit/internal/mathutil"
)

func TestSum(t *testing.T) {
	require.Equal(t, 6, mathutil.Sum([]int{1, 2, 3}))
}

func TestEqual(t *testing.T) {
	require.True(t, mathutil.Equal([]int{1, 2}, []int{1, 2}, func(a, b int) bool { return a == b }))
	require.False(t, mathutil.Equal([]int{1, 2}, []int{1, 3}, func(a, b int) bool { return a == b }))
	require.False(t, mathutil.Equal([]int{1}, []int{1, 2}, func(a, b int) bool { return a == b }))
}

func TestIsPermutation(t *testing.T) {
	require.True(t, mathutil.IsPermutation([]int{2, 0, 1}, 3))
	require.False(t, mathutil.IsPermutation([]int{0, 0, 2}, 3))
	require.False(t, mathutil.IsPermutation([]int{0, 1}, 3))
}
