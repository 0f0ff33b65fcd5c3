package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tidy/pkg/errors"
	"github.com/arthur-debert/tidy/pkg/ui"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format := ui.FormatAuto.Resolve(os.Stderr)

		// "Everything failed" is a degraded run, not a usage error:
		// the summary was already printed, so exit 2 with a warning
		if errors.IsCode(err, errors.ErrMoveFailed) {
			fmt.Fprintln(os.Stderr, warningLine(format, err))
			os.Exit(2)
		}

		fmt.Fprintln(os.Stderr, errorLine(format, err))
		os.Exit(1)
	}
}

func errorLine(format ui.Format, err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if format == ui.FormatTerminal {
		return ui.ErrorStyle.Render(msg)
	}
	return msg
}

func warningLine(format ui.Format, err error) string {
	msg := fmt.Sprintf("Warning: %v", err)
	if format == ui.FormatTerminal {
		return ui.WarningStyle.Render(msg)
	}
	return msg
}
