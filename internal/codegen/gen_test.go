package codegen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zk-mahjong/shuffle-circuit/internal/codegen"
)

func TestGenerateWritesLicensedPackage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pow2_literals_gen.go")

	err := codegen.Generate(path, []string{"1", "2", "4", "8"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "package tables")
	require.Contains(t, content, "DO NOT EDIT")
	require.Contains(t, content, `"1",`)
	require.Contains(t, content, `"8",`)
	require.Contains(t, content, "func Pow2FromLiterals")
}

func TestGenerateRejectsUnwritableDir(t *testing.T) {
	err := codegen.Generate(filepath.Join(t.TempDir(), "missing-dir", "pow2.go"), []string{"1"})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "codegen:"))
}
