// Package naming computes collision-free destination paths.
//
// When a desired destination is taken, either by a file already on
// disk or by an earlier item in the same plan, the namer appends a
// counter between base name and extension: "report (2).pdf",
// "report (3).pdf", and so on. The lowest free counter always wins, so
// resolution is deterministic for a given disk state and reserved set.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tidy/pkg/types"
)

// SplitName splits a filename at its final dot: "archive.tar.gz"
// becomes ("archive.tar", ".gz"). Leading-dot names with no further dot
// (".bashrc") have no extension and split as (name, "").
func SplitName(name string) (base, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// Resolve returns a destination path under destDir for filename that
// neither exists on the filesystem nor appears in reserved, the set of
// destinations claimed earlier in the same plan. The unsuffixed name is
// preferred; otherwise candidates "base (2).ext", "base (3).ext", …
// are tried until one is free.
func Resolve(fs types.FS, destDir, filename string, reserved map[string]struct{}) string {
	candidate := filepath.Join(destDir, filename)
	if isFree(fs, candidate, reserved) {
		return candidate
	}

	base, ext := SplitName(filename)
	for i := 2; ; i++ {
		candidate = filepath.Join(destDir, fmt.Sprintf("%s (%d)%s", base, i, ext))
		if isFree(fs, candidate, reserved) {
			return candidate
		}
	}
}

func isFree(fs types.FS, path string, reserved map[string]struct{}) bool {
	if _, taken := reserved[path]; taken {
		return false
	}
	if _, err := fs.Lstat(path); err == nil {
		return false
	}
	return true
}
