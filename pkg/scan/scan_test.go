package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tidy/pkg/errors"
	"github.com/arthur-debert/tidy/pkg/testutil"
	"github.com/arthur-debert/tidy/pkg/types"
)

func entryPaths(entries []types.FileEntry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}

func TestEnumerateNonRecursive(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/src/b.txt", "b")
	env.WriteFile("/src/a.txt", "a")
	env.WriteFile("/src/sub/nested.txt", "nested")

	entries, err := Enumerate(env.FS, "/src", Options{})
	require.NoError(t, err)

	// Subdirectory contents excluded, order sorted
	assert.Equal(t, []string{"/src/a.txt", "/src/b.txt"}, entryPaths(entries))
}

func TestEnumerateRecursive(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/src/a.txt", "a")
	env.WriteFile("/src/sub/nested.txt", "nested")
	env.WriteFile("/src/sub/deeper/deep.txt", "deep")

	entries, err := Enumerate(env.FS, "/src", Options{Recursive: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/src/a.txt",
		"/src/sub/deeper/deep.txt",
		"/src/sub/nested.txt",
	}, entryPaths(entries))
}

func TestEnumerateHiddenFiles(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/src/a.txt", "visible")
	env.WriteFile("/src/.b.txt", "hidden")

	t.Run("excluded by default", func(t *testing.T) {
		entries, err := Enumerate(env.FS, "/src", Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"/src/a.txt"}, entryPaths(entries))
	})

	t.Run("included on request", func(t *testing.T) {
		entries, err := Enumerate(env.FS, "/src", Options{IncludeHidden: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"/src/.b.txt", "/src/a.txt"}, entryPaths(entries))
	})
}

func TestEnumerateHiddenDirectoryPrunesSubtree(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/src/.git/config", "secret")
	env.WriteFile("/src/visible/a.txt", "a")

	entries, err := Enumerate(env.FS, "/src", Options{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/visible/a.txt"}, entryPaths(entries))

	entries, err = Enumerate(env.FS, "/src", Options{Recursive: true, IncludeHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/.git/config", "/src/visible/a.txt"}, entryPaths(entries))
}

func TestEnumerateDirectoriesAreNotEntries(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Mkdir("/src/empty")
	env.WriteFile("/src/a.txt", "a")

	entries, err := Enumerate(env.FS, "/src", Options{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/a.txt"}, entryPaths(entries))
}

func TestEnumerateEntryAttributes(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/src/Report.PDF", "pdf")

	entries, err := Enumerate(env.FS, "/src", Options{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "/src/Report.PDF", entries[0].Path)
	assert.Equal(t, "Report.PDF", entries[0].Name)
	assert.Equal(t, ".pdf", entries[0].Ext)
	assert.False(t, entries[0].Hidden)
}

func TestEnumerateIsRestartable(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteFile("/src/a.txt", "a")

	first, err := Enumerate(env.FS, "/src", Options{})
	require.NoError(t, err)

	// The walk is re-done per call, so changes between calls show up
	env.WriteFile("/src/b.txt", "b")
	second, err := Enumerate(env.FS, "/src", Options{})
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}

func TestEnumerateMissingRoot(t *testing.T) {
	env := testutil.NewEnv(t)

	_, err := Enumerate(env.FS, "/nope", Options{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrFileAccess, errors.GetCode(err))
}
