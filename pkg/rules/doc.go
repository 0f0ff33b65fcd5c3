// Package rules implements the extension-to-category rule table.
//
// A Table maps normalized extensions (lowercase, leading dot) to
// category names. Tables are built from the built-in defaults or loaded
// from a TOML, YAML or JSON file, and are immutable for the duration of
// a run. The Classifier wraps a Table with a fallback category so every
// filename maps to some category.
package rules
