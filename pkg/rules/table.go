package rules

import (
	"sort"
	"strings"
)

// Table is an immutable mapping from normalized extension to category
// name. Construct one with NewTable, Defaults or Load; it is never
// mutated during a run.
type Table struct {
	rules map[string]string
}

// NewTable builds a Table from a raw mapping, normalizing every key.
// Later duplicates (after normalization) win, matching map iteration of
// the underlying config formats where keys are unique anyway.
func NewTable(raw map[string]string) Table {
	rules := make(map[string]string, len(raw))
	for ext, category := range raw {
		rules[NormalizeExtension(ext)] = category
	}
	return Table{rules: rules}
}

// NormalizeExtension trims, lowercases and dot-prefixes an extension
// key, so ".PDF", "pdf" and " .pdf " all mean ".pdf".
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Category looks up the category for a normalized extension.
func (t Table) Category(ext string) (string, bool) {
	category, ok := t.rules[ext]
	return category, ok
}

// Len returns the number of rules.
func (t Table) Len() int {
	return len(t.rules)
}

// Extensions returns the rule keys in sorted order, for stable display
// and template generation.
func (t Table) Extensions() []string {
	exts := make([]string, 0, len(t.rules))
	for ext := range t.rules {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
