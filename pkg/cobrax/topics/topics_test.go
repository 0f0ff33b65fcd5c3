package topics

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"docs/rules.md":  {Data: []byte("# Rules\n\nRule things.")},
		"docs/safety.md": {Data: []byte("# Safety\n\nSafe things.")},
		"docs/notes.txt": {Data: []byte("plain notes")},
		"docs/skip.json": {Data: []byte("{}")},
	}
}

func TestManagerNames(t *testing.T) {
	m, err := New(testFS(), "docs", nil)
	require.NoError(t, err)

	// Only .md and .txt files become topics, sorted by name
	assert.Equal(t, []string{"notes", "rules", "safety"}, m.Names())
}

func TestManagerShow(t *testing.T) {
	m, err := New(testFS(), "docs", nil)
	require.NoError(t, err)

	content, err := m.Show("rules")
	require.NoError(t, err)
	assert.Contains(t, content, "Rule things.")
}

func TestManagerShowUnknownTopic(t *testing.T) {
	m, err := New(testFS(), "docs", nil)
	require.NoError(t, err)

	_, err = m.Show("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes, rules, safety")
}

func TestPlainRendererPassthrough(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# raw", r.Render("# raw", ".md"))
}

func TestGlamourRendererNonMarkdownPassthrough(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
