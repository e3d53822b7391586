package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/jormungand/CoconutKit/shell"
)

type StatCommand struct {
}

// Name returns the command identifier
func (st *StatCommand) Name() string {
	return "stat"
}

// Description returns human-readable help text
func (st *StatCommand) Description() string {
	return "Describe what lives at a path"
}

// Usage returns a usage string for help
func (st *StatCommand) Usage() string {
	return "stat <path>"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (st *StatCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) == 0 {
		return 1, fmt.Errorf("usage: %s", st.Usage())
	}

	target := args.Path(0)
	stat := api.Stat(ctx, target)

	switch {
	case !stat.Exists:
		fmt.Fprintf(writer, "%s: not found\n", target)
	case stat.IsDirectory:
		fmt.Fprintf(writer, "%s: directory\n", target)
	default:
		fmt.Fprintf(writer, "%s: file\n", target)
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (st *StatCommand) GetFlags() *shell.CommandFlagSet {
	return nil
}
