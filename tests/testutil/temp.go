package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempDir creates a temporary directory for testing
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "cargo-get-test-*")
	require.NoError(t, err)

	t.Cleanup(func() {
		os.RemoveAll(tmpDir)
	})

	return tmpDir
}

// TempSubDir creates a temporary subdirectory within a base directory
func TempSubDir(t *testing.T, baseDir string) string {
	t.Helper()

	subDir, err := os.MkdirTemp(baseDir, "sub-*")
	require.NoError(t, err)

	return subDir
}
