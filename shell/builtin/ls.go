package builtin

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/jormungand/CoconutKit/shell"
)

type LsCommand struct {
}

// Name returns the command identifier
func (ls *LsCommand) Name() string {
	return "ls"
}

// Description returns human-readable help text
func (ls *LsCommand) Description() string {
	return "List directory contents"
}

// Usage returns a usage string for help
func (ls *LsCommand) Usage() string {
	return "ls [-l] [path]"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (ls *LsCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	target := args.Path(0)

	stat := api.Stat(ctx, target)
	if !stat.Exists {
		return 1, fmt.Errorf("no such file or directory: %s", target)
	}

	if !stat.IsDirectory {
		fmt.Fprintln(writer, target)
		return 0, nil
	}

	entries, err := api.ReadDirectory(ctx, target)
	if err != nil {
		return 1, err
	}
	sort.Strings(entries)

	long := args.Bool("long")
	for _, name := range entries {
		if long {
			kind := "f"
			if child := api.Stat(ctx, shell.Resolve(target, name)); child.IsDirectory {
				kind = "d"
			}
			fmt.Fprintf(writer, "%s %s\n", kind, name)
		} else {
			fmt.Fprintln(writer, name)
		}
	}

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (ls *LsCommand) GetFlags() *shell.CommandFlagSet {
	return &shell.CommandFlagSet{
		Flags: map[string]*shell.CommandFlag{
			"long": {
				Name:        "long",
				Short:       "l",
				Type:        "bool",
				Description: "Print entry kinds alongside names",
			},
		},
	}
}
