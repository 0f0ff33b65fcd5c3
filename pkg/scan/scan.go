// Package scan enumerates candidate files under a source root.
//
// Enumeration walks the filesystem at call time (each call re-walks, so
// the sequence is restartable) and returns entries in a deterministic
// order: each directory's listing is sorted, and subdirectories are
// descended depth-first as they are encountered.
package scan

import (
	"path/filepath"

	"github.com/arthur-debert/tidy/pkg/errors"
	"github.com/arthur-debert/tidy/pkg/logging"
	"github.com/arthur-debert/tidy/pkg/types"
)

// Options controls which files the scanner yields.
type Options struct {
	// Recursive descends into subdirectories at arbitrary depth
	Recursive bool

	// IncludeHidden yields leading-dot files and descends into
	// leading-dot directories
	IncludeHidden bool
}

// Enumerate walks root and returns a FileEntry per regular file found.
// Hidden entries follow the leading-dot convention: a hidden directory
// prunes its whole subtree unless IncludeHidden is set. Directories are
// never returned as entries.
func Enumerate(fs types.FS, root string, opts Options) ([]types.FileEntry, error) {
	logger := logging.GetLogger("scan")

	var found []types.FileEntry
	if err := walk(fs, root, opts, &found); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Bool("recursive", opts.Recursive).
		Bool("includeHidden", opts.IncludeHidden).
		Int("files", len(found)).
		Msg("Scan complete")
	return found, nil
}

func walk(fs types.FS, dir string, opts Options, found *[]types.FileEntry) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read directory %s", dir)
	}

	// ReadDir returns entries sorted by name, which keeps the
	// enumeration order (and therefore collision numbering) stable
	for _, entry := range entries {
		name := entry.Name()
		hidden := types.IsHiddenName(name)
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if !opts.Recursive {
				continue
			}
			if hidden && !opts.IncludeHidden {
				continue
			}
			if err := walk(fs, path, opts, found); err != nil {
				return err
			}
			continue
		}

		// skip sockets, devices and other irregular files
		if !entry.Type().IsRegular() {
			continue
		}
		if hidden && !opts.IncludeHidden {
			continue
		}
		*found = append(*found, types.NewFileEntry(path))
	}

	return nil
}
