package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tidy/internal/version"
	"github.com/arthur-debert/tidy/pkg/commands/genrules"
	"github.com/arthur-debert/tidy/pkg/commands/organize"
	"github.com/arthur-debert/tidy/pkg/errors"
	"github.com/arthur-debert/tidy/pkg/filesystem"
	"github.com/arthur-debert/tidy/pkg/logging"
	"github.com/arthur-debert/tidy/pkg/types"
	"github.com/arthur-debert/tidy/pkg/ui"
	"github.com/arthur-debert/tidy/pkg/ui/confirmations"
)

type rootFlags struct {
	verbosity     int
	source        string
	dest          string
	rulesFile     string
	unknownFolder string
	recursive     bool
	includeHidden bool
	dryRun        bool
	yes           bool
}

// NewRootCmd builds the tidy command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "tidy",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.Flags().StringVarP(&flags.source, "source", "s", "", "Folder to organize (required)")
	rootCmd.Flags().StringVarP(&flags.dest, "dest", "d", "", "Destination root (default: source)")
	rootCmd.Flags().StringVar(&flags.rulesFile, "rules", "", "Path to a rules file (.toml, .yaml or .json)")
	rootCmd.Flags().StringVar(&flags.unknownFolder, "unknown-folder", "others", "Folder for unknown extensions")
	rootCmd.Flags().BoolVar(&flags.recursive, "recursive", false, "Scan subdirectories recursively")
	rootCmd.Flags().BoolVar(&flags.includeHidden, "include-hidden", false, "Include hidden files and folders")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Preview actions without moving files")
	rootCmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Skip confirmation prompt and proceed")
	_ = rootCmd.MarkFlagRequired("source")

	rootCmd.AddCommand(newGenRulesCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func runOrganize(cmd *cobra.Command, flags *rootFlags) error {
	format := ui.FormatAuto.Resolve(os.Stdout)

	var confirmer types.Confirmer
	if flags.yes {
		confirmer = confirmations.Auto{}
	} else {
		confirmer = confirmations.NewConsole(os.Stdin, os.Stdout)
	}

	result, err := organize.Run(cmd.Context(), organize.Options{
		FileSystem:    filesystem.NewOS(),
		Confirmer:     confirmer,
		Source:        flags.source,
		Dest:          flags.dest,
		RulesFile:     flags.rulesFile,
		UnknownFolder: flags.unknownFolder,
		Recursive:     flags.recursive,
		IncludeHidden: flags.includeHidden,
		DryRun:        flags.dryRun,
		Out:           cmd.OutOrStdout(),
		Format:        format,
		Progress:      format == ui.FormatTerminal,
	})
	if err != nil {
		return err
	}

	// Per-item failures are reported in the summary and still exit 0;
	// only a pass where every planned move failed signals exit code 2.
	if result.Execution != nil && !flags.dryRun && result.Execution.AllFailed() {
		return errors.New(errors.ErrMoveFailed, "no planned moves could be completed")
	}

	return nil
}

func newGenRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "gen-rules <file>",
		Short:   MsgGenRulesShort,
		Long:    MsgGenRulesLong,
		Example: MsgGenRulesExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genrules.GenRules(genrules.Options{
				FileSystem: filesystem.NewOS(),
				Path:       args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default rules to %s\n", result.Path)
			return nil
		},
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tidy version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
