package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/tidy/pkg/types"
)

// RenderResult writes the per-item outcomes and the totals line after
// an execution pass. Failures are listed with their reasons.
func RenderResult(w io.Writer, result types.ExecutionResult, format Format) {
	for _, item := range result.Items {
		switch item.Outcome {
		case types.OutcomeMoved:
			fmt.Fprintf(w, "%s %s -> %s\n",
				styled(format, SuccessStyle, "moved"), item.Item.Source, item.Item.Destination)
		case types.OutcomeSkippedDryRun:
			fmt.Fprintf(w, "%s %s -> %s\n",
				styled(format, DimStyle, "would move"), item.Item.Source, item.Item.Destination)
		case types.OutcomeFailed:
			fmt.Fprintf(w, "%s %s -> %s (%s)\n",
				styled(format, ErrorStyle, "failed"), item.Item.Source, item.Item.Destination, item.Reason)
		}
	}

	fmt.Fprintln(w)
	summary := result.Summary()
	if result.Failed > 0 {
		fmt.Fprintln(w, styled(format, WarningStyle, summary))
	} else {
		fmt.Fprintln(w, styled(format, BoldStyle, summary))
	}
}
