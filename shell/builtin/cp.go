package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/jormungand/CoconutKit/shell"
)

type CpCommand struct {
}

// Name returns the command identifier
func (cp *CpCommand) Name() string {
	return "cp"
}

// Description returns human-readable help text
func (cp *CpCommand) Description() string {
	return "Copy a file or directory (directories copy shallow)"
}

// Usage returns a usage string for help
func (cp *CpCommand) Usage() string {
	return "cp <src> <dst>"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (cp *CpCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 1, fmt.Errorf("usage: %s", cp.Usage())
	}

	if err := api.Copy(ctx, args.Path(0), args.Path(1)); err != nil {
		return 1, err
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (cp *CpCommand) GetFlags() *shell.CommandFlagSet {
	return nil
}
