package rules

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/tidy/pkg/errors"
	"github.com/arthur-debert/tidy/pkg/logging"
)

// Rule keys contain dots (".pdf"), so the koanf delimiter must be
// something that never appears in an extension.
const koanfDelim = "/"

// Load returns the rule table for a run. An empty path yields the
// built-in defaults; otherwise the file is parsed according to its own
// extension (.toml, .yaml/.yml or .json) and replaces the defaults
// entirely, matching a user's intent when they hand-pick a rules file.
func Load(path string) (Table, error) {
	logger := logging.GetLogger("rules")

	k := koanf.New(koanfDelim)

	if path == "" {
		if err := k.Load(confmap.Provider(defaultsAsConfmap(), koanfDelim), nil); err != nil {
			return Table{}, errors.Wrap(err, errors.ErrInternal, "failed to load built-in rules")
		}
		logger.Debug().Int("rules", len(defaultRules)).Msg("Using built-in rule table")
		return tableFromKoanf(k)
	}

	parser, err := parserFor(path)
	if err != nil {
		return Table{}, err
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		// koanf wraps both read and parse failures; a file that stats
		// fine but fails to load is a parse problem
		if strings.Contains(err.Error(), "no such file") {
			return Table{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read rules file %s", path)
		}
		return Table{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse rules file %s", path)
	}

	table, err := tableFromKoanf(k)
	if err != nil {
		return Table{}, err
	}
	if table.Len() == 0 {
		return Table{}, errors.Newf(errors.ErrConfigParse, "rules file %s contains no rules", path)
	}

	logger.Debug().Str("path", path).Int("rules", table.Len()).Msg("Loaded rule table")
	return table, nil
}

// parserFor selects a koanf parser from the rules file's own extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported rules file format %q (expected .toml, .yaml or .json)", filepath.Ext(path))
	}
}

func defaultsAsConfmap() map[string]interface{} {
	mp := make(map[string]interface{}, len(defaultRules))
	for ext, category := range defaultRules {
		mp[ext] = category
	}
	return mp
}

func tableFromKoanf(k *koanf.Koanf) (Table, error) {
	raw := make(map[string]string)
	for key, value := range k.All() {
		category, ok := value.(string)
		if !ok {
			return Table{}, errors.Newf(errors.ErrConfigParse,
				"rule %q must map to a category name, got %T", key, value)
		}
		if strings.TrimSpace(category) == "" {
			return Table{}, errors.Newf(errors.ErrConfigParse, "rule %q maps to an empty category", key)
		}
		raw[key] = category
	}
	return NewTable(raw), nil
}
