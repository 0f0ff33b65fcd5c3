package rules

import (
	_ "embed"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/tidy/pkg/errors"
	"github.com/arthur-debert/tidy/pkg/logging"
	"github.com/arthur-debert/tidy/pkg/types"
)

//go:embed rules.toml
var templateContent []byte

// TemplateContent returns the commented default rules template.
func TemplateContent() string {
	return string(templateContent)
}

// TemplateRules parses the embedded template into a raw mapping. Used
// to keep the template and the built-in defaults from drifting apart.
func TemplateRules() (map[string]string, error) {
	var raw map[string]string
	if err := gotoml.Unmarshal(templateContent, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded rules template is invalid")
	}
	return raw, nil
}

// WriteTemplate writes the default rules template to path. It refuses
// to overwrite an existing file so a customized rules file cannot be
// clobbered by accident.
func WriteTemplate(fs types.FS, path string) error {
	logger := logging.GetLogger("rules")

	if _, err := fs.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "refusing to overwrite existing rules file: %s", path)
	}

	// Parse before writing so a broken template never reaches disk
	if _, err := TemplateRules(); err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path)
	}

	if err := fs.WriteFile(path, templateContent, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write rules template to %s", path)
	}

	logger.Info().Str("path", path).Msg("Written default rules template")
	return nil
}
