package rules

import (
	"github.com/arthur-debert/tidy/pkg/types"
)

// Classifier maps filenames to categories using a rule table with a
// fixed fallback for unknown extensions. It is total: every filename
// classifies to some category, and classification has no side effects.
type Classifier struct {
	table    Table
	fallback string
}

// NewClassifier creates a classifier over the given table. An empty
// fallback selects DefaultFallbackCategory.
func NewClassifier(table Table, fallback string) *Classifier {
	if fallback == "" {
		fallback = DefaultFallbackCategory
	}
	return &Classifier{table: table, fallback: fallback}
}

// Classify returns the category for a filename. Extensionless files
// (including leading-dot names with no further dot) and unknown
// extensions map to the fallback category.
func (c *Classifier) Classify(filename string) string {
	ext := types.ExtensionOf(filename)
	if ext == "" {
		return c.fallback
	}
	if category, ok := c.table.Category(ext); ok {
		return category
	}
	return c.fallback
}

// Fallback returns the fallback category name.
func (c *Classifier) Fallback() string {
	return c.fallback
}
