package proofbundle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zk-mahjong/shuffle-circuit/internal/proofbundle"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := proofbundle.Bundle{
		Version:        "0.1.0",
		VKDigest:       []byte{1, 2, 3, 4},
		ProofBytes:     []byte{5, 6, 7, 8, 9},
		PublicInstance: [][]byte{{10}, {11}, {12}, {13}},
	}
	data, err := proofbundle.Encode(b)
	require.NoError(t, err)

	decoded, err := proofbundle.Decode(data)
	require.NoError(t, err)
	require.Equal(t, b, decoded)
}

func TestParsedVersion(t *testing.T) {
	b := proofbundle.Bundle{Version: "1.2.3"}
	v, err := b.ParsedVersion()
	require.NoError(t, err)
	require.Equal(t, uint64(1), v.Major)
	require.Equal(t, uint64(2), v.Minor)
	require.Equal(t, uint64(3), v.Patch)
}

func TestPackUnpackPermutationRoundTrip(t *testing.T) {
	perm := []int{5, 0, 3, 1, 4, 2}
	packed, err := proofbundle.PackPermutation(perm, len(perm))
	require.NoError(t, err)

	unpacked, err := proofbundle.UnpackPermutation(packed, len(perm), len(perm))
	require.NoError(t, err)
	require.Equal(t, perm, unpacked)
}

func TestPackPermutationRejectsOutOfRange(t *testing.T) {
	_, err := proofbundle.PackPermutation([]int{0, 9}, 3)
	require.Error(t, err)
}
