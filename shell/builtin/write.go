package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jormungand/CoconutKit/shell"
)

type WriteCommand struct {
}

// Name returns the command identifier
func (w *WriteCommand) Name() string {
	return "write"
}

// Description returns human-readable help text
func (w *WriteCommand) Description() string {
	return "Write text to a file"
}

// Usage returns a usage string for help
func (w *WriteCommand) Usage() string {
	return "write <path> [text]..."
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (w *WriteCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("usage: %s", w.Usage())
	}

	payload := []byte(strings.Join(args.Args[1:], " "))
	if err := api.WriteFile(ctx, args.Path(0), payload); err != nil {
		return 1, err
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (w *WriteCommand) GetFlags() *shell.CommandFlagSet {
	return nil
}
