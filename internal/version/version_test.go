package version_test

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"

	"github.com/zk-mahjong/shuffle-circuit/internal/version"
)

func TestStringHasVPrefix(t *testing.T) {
	require.Equal(t, "v0.1.0", version.String())
}

func TestCompatibleRejectsDifferentMajor(t *testing.T) {
	other := semver.MustParse("1.0.0")
	require.False(t, version.Compatible(other))
}

func TestCompatibleAcceptsOlderMinor(t *testing.T) {
	other := semver.MustParse("0.0.9")
	require.True(t, version.Compatible(other))
}

func TestCompatibleRejectsNewerMinor(t *testing.T) {
	other := semver.MustParse("0.2.0")
	require.False(t, version.Compatible(other))
}
