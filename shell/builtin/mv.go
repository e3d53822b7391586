package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/jormungand/CoconutKit/shell"
)

type MvCommand struct {
}

// Name returns the command identifier
func (mv *MvCommand) Name() string {
	return "mv"
}

// Description returns human-readable help text
func (mv *MvCommand) Description() string {
	return "Move a file or directory"
}

// Usage returns a usage string for help
func (mv *MvCommand) Usage() string {
	return "mv <src> <dst>"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (mv *MvCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return 1, fmt.Errorf("usage: %s", mv.Usage())
	}

	if err := api.Move(ctx, args.Path(0), args.Path(1)); err != nil {
		return 1, err
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (mv *MvCommand) GetFlags() *shell.CommandFlagSet {
	return nil
}
