// Package testutil provides in-memory filesystem helpers for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tidy/pkg/filesystem"
	"github.com/arthur-debert/tidy/pkg/types"
)

// Env is an afero MemMap-backed test environment exposing the same
// types.FS the production code runs on.
type Env struct {
	FS types.FS
	t  *testing.T
}

// NewEnv creates an empty in-memory filesystem environment.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	return &Env{
		FS: filesystem.NewAferoFS(afero.NewMemMapFs()),
		t:  t,
	}
}

// WriteFile creates a file (and its parent directories) with content.
func (e *Env) WriteFile(path, content string) {
	e.t.Helper()
	require.NoError(e.t, e.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, e.FS.WriteFile(path, []byte(content), 0644))
}

// Mkdir creates a directory and its parents.
func (e *Env) Mkdir(path string) {
	e.t.Helper()
	require.NoError(e.t, e.FS.MkdirAll(path, 0755))
}

// Exists reports whether a path exists.
func (e *Env) Exists(path string) bool {
	_, err := e.FS.Stat(path)
	return err == nil
}

// Snapshot walks root and returns every path found, files mapped to
// their content and directories to "". Used to assert that dry-run
// passes leave the tree untouched.
func (e *Env) Snapshot(root string) map[string]string {
	e.t.Helper()
	snapshot := make(map[string]string)
	e.snapshotDir(root, snapshot)
	return snapshot
}

func (e *Env) snapshotDir(dir string, snapshot map[string]string) {
	entries, err := e.FS.ReadDir(dir)
	require.NoError(e.t, err)
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			snapshot[path] = ""
			e.snapshotDir(path, snapshot)
			continue
		}
		content, err := e.FS.ReadFile(path)
		require.NoError(e.t, err)
		snapshot[path] = string(content)
	}
}
