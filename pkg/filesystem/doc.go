// Package filesystem provides filesystem implementations for tidy.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used at runtime, and an afero-backed
// filesystem used by tests.
package filesystem
