// Package executor applies a move plan to the filesystem.
package executor

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/arthur-debert/tidy/pkg/logging"
	"github.com/arthur-debert/tidy/pkg/types"
)

// Options controls a single execution pass.
type Options struct {
	// DryRun records every item as skipped and performs zero
	// filesystem mutation, including directory creation
	DryRun bool

	// Progress renders a progress bar during live execution
	Progress bool
}

// Executor applies move plans. It owns no state between runs; a plan is
// consumed in one linear pass.
type Executor struct {
	fs     types.FS
	out    io.Writer
	logger zerolog.Logger
}

// New creates an executor over the given filesystem. Progress output
// goes to out (stderr when nil).
func New(fs types.FS, out io.Writer) *Executor {
	if out == nil {
		out = os.Stderr
	}
	return &Executor{
		fs:     fs,
		out:    out,
		logger: logging.GetLogger("executor"),
	}
}

// Execute runs the plan in order. One item's failure never aborts the
// remaining items: the error is recorded as that item's outcome and the
// pass continues. There is no retry; a failed move is reported once.
// Cancelling ctx marks the remaining items failed with the context
// error, an accepted partial-completion state.
func (e *Executor) Execute(ctx context.Context, plan types.MovePlan, opts Options) types.ExecutionResult {
	var result types.ExecutionResult
	items := plan.Items()

	if opts.DryRun {
		for _, item := range items {
			e.logger.Debug().Str("source", item.Source).Str("destination", item.Destination).Msg("Dry-run, not moving")
			result.Record(item, types.OutcomeSkippedDryRun, "")
		}
		return result
	}

	var bar *progressbar.ProgressBar
	if opts.Progress && len(items) > 0 {
		bar = progressbar.NewOptions(len(items),
			progressbar.OptionSetWriter(e.out),
			progressbar.OptionSetDescription("Moving files"),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionShowCount(),
		)
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			for _, rest := range items[i:] {
				result.Record(rest, types.OutcomeFailed, err.Error())
			}
			break
		}

		if err := e.move(item); err != nil {
			e.logger.Warn().Err(err).Str("source", item.Source).Str("destination", item.Destination).Msg("Move failed")
			result.Record(item, types.OutcomeFailed, err.Error())
		} else {
			e.logger.Info().Str("source", item.Source).Str("destination", item.Destination).Msg("Moved")
			result.Record(item, types.OutcomeMoved, "")
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	e.logger.Debug().
		Int("moved", result.Moved).
		Int("failed", result.Failed).
		Msg("Execution complete")
	return result
}

func (e *Executor) move(item types.MoveItem) error {
	// Idempotent: creating an already-present category dir is not an error
	destDir := filepath.Dir(item.Destination)
	if err := e.fs.MkdirAll(destDir, 0755); err != nil {
		return err
	}
	return e.fs.Rename(item.Source, item.Destination)
}
