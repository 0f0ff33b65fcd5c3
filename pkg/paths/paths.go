// Package paths validates and normalizes the user-supplied roots.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tidy/pkg/errors"
	"github.com/arthur-debert/tidy/pkg/types"
)

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// Normalize expands ~ and converts to an absolute, cleaned path.
func Normalize(path string) (string, error) {
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %s", path)
	}
	return abs, nil
}

// ValidateSourceRoot checks that path exists and is a directory. These
// are the fatal input errors: nothing is scanned when they fail.
func ValidateSourceRoot(fs types.FS, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSourceNotFound, "source not found: %s", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrSourceNotDir, "source is not a directory: %s", path)
	}
	return nil
}
