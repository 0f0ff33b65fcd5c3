package ui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/arthur-debert/tidy/pkg/types"
)

// maxPreviewRows caps the plan table; longer plans get an overflow line
const maxPreviewRows = 50

// RenderPlan writes a human-readable preview of the planned moves.
func RenderPlan(w io.Writer, plan types.MovePlan, format Format) {
	items := plan.Items()
	fmt.Fprintln(w, styled(format, BoldStyle, fmt.Sprintf("Planned moves: %d file(s)", len(items))))

	shown := items
	if len(shown) > maxPreviewRows {
		shown = shown[:maxPreviewRows]
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if format == FormatTerminal {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.AppendHeader(table.Row{"#", "Source", "Category", "Destination"})
	for i, item := range shown {
		tw.AppendRow(table.Row{i + 1, item.Source, item.Category, item.Destination})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	tw.Render()

	if len(items) > maxPreviewRows {
		fmt.Fprintf(w, "%s\n", styled(format, DimStyle, fmt.Sprintf("… (%d more)", len(items)-maxPreviewRows)))
	}
}
