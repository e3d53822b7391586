package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/jormungand/CoconutKit/shell"
)

type RmCommand struct {
}

// Name returns the command identifier
func (rm *RmCommand) Name() string {
	return "rm"
}

// Description returns human-readable help text
func (rm *RmCommand) Description() string {
	return "Remove a file or directory subtree"
}

// Usage returns a usage string for help
func (rm *RmCommand) Usage() string {
	return "rm <path>..."
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (rm *RmCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("usage: %s", rm.Usage())
	}

	for i := range args.Args {
		if err := api.Remove(ctx, args.Path(i)); err != nil {
			return 1, err
		}
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (rm *RmCommand) GetFlags() *shell.CommandFlagSet {
	return nil
}
