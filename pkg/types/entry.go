package types

import (
	"path/filepath"
	"strings"
)

// FileEntry represents one regular file discovered by the scanner.
// Directories are traversed but never become entries.
type FileEntry struct {
	// Path is the absolute source path of the file
	Path string

	// Name is the base filename
	Name string

	// Ext is the extension including the leading dot, normalized to
	// lowercase. Empty for extensionless files and for leading-dot
	// names with no further dot (".bashrc").
	Ext string

	// Hidden reports whether the base name starts with a dot
	Hidden bool
}

// NewFileEntry builds a FileEntry from an absolute path.
func NewFileEntry(path string) FileEntry {
	name := filepath.Base(path)
	return FileEntry{
		Path:   path,
		Name:   name,
		Ext:    ExtensionOf(name),
		Hidden: IsHiddenName(name),
	}
}

// ExtensionOf returns the lowercased final extension of a filename,
// including the leading dot. A name whose only dot is the leading one
// has no extension.
func ExtensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		// ".bashrc" style: the whole name is the "extension"
		return ""
	}
	return strings.ToLower(ext)
}

// IsHiddenName reports whether a base name follows the leading-dot
// hidden convention.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, ".")
}
