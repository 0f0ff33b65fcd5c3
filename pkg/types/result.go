package types

import "fmt"

// ItemOutcome classifies what happened to a single MoveItem during
// execution.
type ItemOutcome string

const (
	// OutcomeMoved means the file was moved to its destination
	OutcomeMoved ItemOutcome = "moved"

	// OutcomeSkippedDryRun means the item was reported but not executed
	OutcomeSkippedDryRun ItemOutcome = "skipped-dry-run"

	// OutcomeFailed means the underlying filesystem operation failed
	OutcomeFailed ItemOutcome = "failed"
)

// ItemResult pairs a planned move with its execution outcome.
type ItemResult struct {
	Item    MoveItem
	Outcome ItemOutcome

	// Reason carries the error description when Outcome is OutcomeFailed
	Reason string
}

// ExecutionResult aggregates per-item outcomes for one executor pass.
type ExecutionResult struct {
	Items   []ItemResult
	Moved   int
	Skipped int
	Failed  int
}

// Record appends an item result and updates the aggregate counts.
func (r *ExecutionResult) Record(item MoveItem, outcome ItemOutcome, reason string) {
	r.Items = append(r.Items, ItemResult{Item: item, Outcome: outcome, Reason: reason})
	switch outcome {
	case OutcomeMoved:
		r.Moved++
	case OutcomeSkippedDryRun:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}

// Summary renders the totals line.
func (r *ExecutionResult) Summary() string {
	if r.Skipped > 0 {
		return fmt.Sprintf("Moved: %d, Skipped: %d, Failed: %d", r.Moved, r.Skipped, r.Failed)
	}
	return fmt.Sprintf("Moved: %d, Failed: %d", r.Moved, r.Failed)
}

// AllFailed reports whether items were attempted and every one failed.
func (r *ExecutionResult) AllFailed() bool {
	return len(r.Items) > 0 && r.Failed == len(r.Items)
}
