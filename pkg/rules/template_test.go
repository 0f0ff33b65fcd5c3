package rules

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tidy/pkg/errors"
	"github.com/arthur-debert/tidy/pkg/filesystem"
)

func TestTemplateMatchesDefaults(t *testing.T) {
	// The embedded template and the built-in table must not drift apart
	raw, err := TemplateRules()
	require.NoError(t, err)

	assert.Equal(t, len(defaultRules), len(raw))
	for ext, category := range raw {
		want, ok := defaultRules[NormalizeExtension(ext)]
		require.True(t, ok, "template rule %q missing from defaults", ext)
		assert.Equal(t, want, category, "template rule %q disagrees with defaults", ext)
	}
}

func TestWriteTemplate(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	err := WriteTemplate(fs, "/home/user/rules.toml")
	require.NoError(t, err)

	content, err := fs.ReadFile("/home/user/rules.toml")
	require.NoError(t, err)
	assert.Equal(t, TemplateContent(), string(content))
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.WriteFile("/rules.toml", []byte("mine"), 0644))

	err := WriteTemplate(fs, "/rules.toml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrAlreadyExists, errors.GetCode(err))

	// The existing file is untouched
	content, err := fs.ReadFile("/rules.toml")
	require.NoError(t, err)
	assert.Equal(t, "mine", string(content))
}
