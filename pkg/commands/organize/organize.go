// Package organize implements the main tidy flow: scan, plan, preview,
// confirm, execute.
package organize

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/tidy/pkg/executor"
	"github.com/arthur-debert/tidy/pkg/logging"
	"github.com/arthur-debert/tidy/pkg/paths"
	"github.com/arthur-debert/tidy/pkg/planner"
	"github.com/arthur-debert/tidy/pkg/rules"
	"github.com/arthur-debert/tidy/pkg/scan"
	"github.com/arthur-debert/tidy/pkg/types"
	"github.com/arthur-debert/tidy/pkg/ui"
)

// Options holds everything an organize run needs. The filesystem and
// confirmer are injected so the whole flow runs in tests without a real
// disk or a TTY.
type Options struct {
	FileSystem types.FS
	Confirmer  types.Confirmer

	// Source is the directory to organize (required)
	Source string

	// Dest is the destination root; empty means organize in place
	Dest string

	// RulesFile optionally overrides the built-in rule table
	RulesFile string

	// UnknownFolder is the category for unknown extensions
	UnknownFolder string

	Recursive     bool
	IncludeHidden bool
	DryRun        bool

	// Out receives the preview and the result report (stdout when nil)
	Out    io.Writer
	Format ui.Format

	// Progress shows a progress bar during live execution
	Progress bool
}

// Result reports what an organize run did.
type Result struct {
	// Plan is the computed move plan (possibly empty)
	Plan types.MovePlan

	// Execution is nil when nothing was executed: empty plan, or the
	// user declined the confirmation
	Execution *types.ExecutionResult

	// Aborted is set when the user declined to proceed
	Aborted bool
}

// Run executes the organize flow. Configuration and input problems are
// returned as errors before anything is planned; per-item move failures
// are recorded in the Result, not returned.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("organize")
	done := logging.LogOperationStart(logger, "organize")
	defer done()

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	source, err := paths.Normalize(opts.Source)
	if err != nil {
		return nil, err
	}
	if err := paths.ValidateSourceRoot(opts.FileSystem, source); err != nil {
		return nil, err
	}

	dest := source
	if opts.Dest != "" {
		if dest, err = paths.Normalize(opts.Dest); err != nil {
			return nil, err
		}
	}

	table, err := rules.Load(opts.RulesFile)
	if err != nil {
		return nil, err
	}
	classifier := rules.NewClassifier(table, opts.UnknownFolder)

	entries, err := scan.Enumerate(opts.FileSystem, source, scan.Options{
		Recursive:     opts.Recursive,
		IncludeHidden: opts.IncludeHidden,
	})
	if err != nil {
		return nil, err
	}

	plan := planner.Plan(opts.FileSystem, entries, classifier, dest)
	result := &Result{Plan: plan}

	if plan.IsEmpty() {
		fmt.Fprintln(out, "Nothing to do: no files matched.")
		return result, nil
	}

	ui.RenderPlan(out, plan, opts.Format)

	if !opts.DryRun {
		proceed, err := opts.Confirmer.Confirm("Proceed to move these files?")
		if err != nil {
			return nil, err
		}
		if !proceed {
			fmt.Fprintln(out, "Aborted.")
			result.Aborted = true
			return result, nil
		}
	}

	exec := executor.New(opts.FileSystem, out)
	execResult := exec.Execute(ctx, plan, executor.Options{
		DryRun:   opts.DryRun,
		Progress: opts.Progress,
	})
	result.Execution = &execResult

	fmt.Fprintln(out)
	ui.RenderResult(out, execResult, opts.Format)
	if opts.DryRun {
		fmt.Fprintln(out, "Dry-run: no files were moved.")
	}

	return result, nil
}
