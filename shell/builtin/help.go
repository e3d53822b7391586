package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/jormungand/CoconutKit/shell"
)

type HelpCommand struct {
	shell *shell.Shell
}

// NewHelpCommand creates a help command listing everything registered in sh.
func NewHelpCommand(sh *shell.Shell) *HelpCommand {
	return &HelpCommand{
		shell: sh,
	}
}

// Name returns the command identifier
func (h *HelpCommand) Name() string {
	return "help"
}

// Description returns human-readable help text
func (h *HelpCommand) Description() string {
	return "List available commands"
}

// Usage returns a usage string for help
func (h *HelpCommand) Usage() string {
	return "help"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (h *HelpCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	for _, cmd := range h.shell.List() {
		fmt.Fprintf(writer, "%-6s  %s\n", cmd.Name(), cmd.Description())
		if usage := cmd.Usage(); usage != "" && usage != cmd.Name() {
			fmt.Fprintf(writer, "        %s\n", usage)
		}
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (h *HelpCommand) GetFlags() *shell.CommandFlagSet {
	return nil
}
