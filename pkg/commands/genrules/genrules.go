// Package genrules implements the gen-rules command: write the default
// rules template and exit without scanning anything.
package genrules

import (
	"github.com/arthur-debert/tidy/pkg/paths"
	"github.com/arthur-debert/tidy/pkg/rules"
	"github.com/arthur-debert/tidy/pkg/types"
)

// Options holds options for the gen-rules command
type Options struct {
	FileSystem types.FS

	// Path is the file to write the template to
	Path string
}

// Result reports where the template was written.
type Result struct {
	Path string
}

// GenRules writes the default rules template. It fails rather than
// overwrite an existing file.
func GenRules(opts Options) (*Result, error) {
	path, err := paths.Normalize(opts.Path)
	if err != nil {
		return nil, err
	}
	if err := rules.WriteTemplate(opts.FileSystem, path); err != nil {
		return nil, err
	}
	return &Result{Path: path}, nil
}
