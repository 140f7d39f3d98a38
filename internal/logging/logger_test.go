package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/zk-mahjong/shuffle-circuit/internal/logging"
)

func TestDefaultLoggerDiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	logging.Logger().Output(&buf).Info().Msg("should not be captured by the global logger")
	require.Empty(t, buf.String())
}

func TestSetOutputCapturesSubsequentLogs(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(nil) })

	logging.Logger().With().Str("component", "test").Logger().Level(zerolog.InfoLevel).Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "component")
}
