// Package testutils holds fixtures shared by the command and package tests.
package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Isolate moves the test into a fresh temporary directory and clears the
// config-file environment variable so no ambient configuration leaks in.
func Isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	// Equivalent of testing.T.Chdir (Go 1.24+) for older toolchains.
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	t.Setenv("SHUFFLE_CONFIG_FILE", "")
	return dir
}

// WriteFile creates dir/name with content and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteWordList creates an allowed word list with one word per line.
func WriteWordList(t *testing.T, dir string, words ...string) string {
	t.Helper()

	return WriteFile(t, dir, "words.txt", strings.Join(words, "\n")+"\n")
}
