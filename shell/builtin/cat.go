package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/jormungand/CoconutKit/shell"
)

type CatCommand struct {
}

// Name returns the command identifier
func (cat *CatCommand) Name() string {
	return "cat"
}

// Description returns human-readable help text
func (cat *CatCommand) Description() string {
	return "Print file contents"
}

// Usage returns a usage string for help
func (cat *CatCommand) Usage() string {
	return "cat <path>..."
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (cat *CatCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("usage: %s", cat.Usage())
	}

	for i := range args.Args {
		payload, err := api.ReadFile(ctx, args.Path(i))
		if err != nil {
			return 1, err
		}

		if _, err := writer.Write(payload); err != nil {
			return 1, err
		}
		if len(payload) > 0 && payload[len(payload)-1] != '\n' {
			fmt.Fprintln(writer)
		}
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (cat *CatCommand) GetFlags() *shell.CommandFlagSet {
	return nil
}
