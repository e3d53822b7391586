package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/jormungand/CoconutKit/shell"
)

type MkdirCommand struct {
}

// Name returns the command identifier
func (mk *MkdirCommand) Name() string {
	return "mkdir"
}

// Description returns human-readable help text
func (mk *MkdirCommand) Description() string {
	return "Create a directory"
}

// Usage returns a usage string for help
func (mk *MkdirCommand) Usage() string {
	return "mkdir [-p] <path>"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (mk *MkdirCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("usage: %s", mk.Usage())
	}

	if err := api.CreateDirectory(ctx, args.Path(0), args.Bool("parents")); err != nil {
		return 1, err
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (mk *MkdirCommand) GetFlags() *shell.CommandFlagSet {
	return &shell.CommandFlagSet{
		Flags: map[string]*shell.CommandFlag{
			"parents": {
				Name:        "parents",
				Short:       "p",
				Type:        "bool",
				Description: "Create missing parent directories",
			},
		},
	}
}
