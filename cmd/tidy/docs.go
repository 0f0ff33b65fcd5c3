package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tidy/pkg/cobrax/topics"
	"github.com/arthur-debert/tidy/pkg/ui"
)

//go:embed docs
var docsFS embed.FS

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     MsgDocsShort,
		Long:      MsgDocsLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"rules", "safety"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var renderer topics.Renderer = &topics.PlainRenderer{}
			if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
				renderer = topics.NewGlamourRenderer()
			}

			manager, err := topics.New(docsFS, "docs", renderer)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
				for _, name := range manager.Names() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			}

			content, err := manager.Show(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}
