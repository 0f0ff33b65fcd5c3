// Package types contains the shared types used across tidy.
//
// It holds the filesystem interface the core operates on, the data model
// for planned moves (FileEntry, MoveItem, MovePlan), and the execution
// result types. Keeping these here avoids import cycles between the
// scanner, planner, executor and UI packages.
package types
