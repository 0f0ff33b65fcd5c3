// Package confirmations provides interactive confirmation dialogs.
//
// The executor's caller must obtain an affirmation before any live run;
// the types.Confirmer interface keeps the planner/executor core free of
// interactive dependencies, and the console implementation here accepts
// injected reader/writer so prompting logic is testable without a TTY.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Console asks yes/no questions on the terminal. On a real TTY it uses
// pterm's interactive confirm; otherwise it falls back to a plain line
// read, with EOF treated as "no".
type Console struct {
	in  io.Reader
	out io.Writer
}

// NewConsole creates a console confirmer. Nil reader/writer default to
// stdin/stdout.
func NewConsole(in io.Reader, out io.Writer) *Console {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Console{in: in, out: out}
}

// Confirm presents the prompt and returns the user's answer. Declining
// is the default: empty input, EOF and anything but y/yes mean no.
func (c *Console) Confirm(prompt string) (bool, error) {
	if file, ok := c.in.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
		return pterm.DefaultInteractiveConfirm.
			WithDefaultValue(false).
			Show(prompt)
	}

	if _, err := fmt.Fprintf(c.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Auto is a Confirmer that always answers yes, used for --yes runs.
type Auto struct{}

// Confirm always approves.
func (Auto) Confirm(string) (bool, error) {
	return true, nil
}
