// Package testutil holds helpers shared by svcman tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Isolate points config and state lookups at a fresh home and moves the test
// into an empty project directory, which it returns.
func Isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("SVCMAN_HOME", t.TempDir())
	t.Setenv("SVCMAN_THEME", "")
	project := t.TempDir()
	t.Chdir(project)
	return project
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// WriteConfig writes svcman.yml into dir and returns its path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "svcman.yml")
	WriteFile(t, path, content)
	return path
}

// UnitLines formats unit names as list-units output, one running service per
// line.
func UnitLines(names ...string) []string {
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = name + " loaded active running " + name
	}
	return lines
}
