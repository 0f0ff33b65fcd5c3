// Package topics provides a topic-based help system for Cobra CLI
// applications: long-form documentation shipped with the binary and
// rendered on demand, keeping command help text short.
package topics

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/tidy/pkg/errors"
)

// Topic is one help document.
type Topic struct {
	Name    string
	Format  string // file extension, drives rendering
	Content string
}

// Manager serves help topics from an embedded filesystem.
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// New loads every .md and .txt file under dir in fsys as a topic,
// keyed by its base name without extension.
func New(fsys fs.FS, dir string, renderer Renderer) (*Manager, error) {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: renderer,
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to read embedded help topics")
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".md" && ext != ".txt" {
			continue
		}
		content, err := fs.ReadFile(fsys, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to read help topic %s", entry.Name())
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(content),
		}
	}

	return m, nil
}

// Names returns the available topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show renders the named topic for terminal display.
func (m *Manager) Show(name string) (string, error) {
	topic, ok := m.topics[name]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown help topic %q (available: %s)", name, strings.Join(m.Names(), ", "))
	}
	return m.renderer.Render(topic.Content, topic.Format), nil
}
