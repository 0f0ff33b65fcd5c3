package types

import (
	"io/fs"
)

// FS is the filesystem interface required for tidy operations.
// The planner only reads through it; the executor is the only
// component that mutates.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Lstat can fall back to Stat on filesystems without symlink support
	Lstat(name string) (fs.FileInfo, error)
}

// Confirmer obtains a yes/no answer from the user before destructive
// actions. Implementations may be interactive or canned (for tests and
// the --yes flag).
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}
