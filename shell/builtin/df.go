package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/jormungand/CoconutKit/shell"
)

type DfCommand struct {
}

// Name returns the command identifier
func (df *DfCommand) Name() string {
	return "df"
}

// Description returns human-readable help text
func (df *DfCommand) Description() string {
	return "Show cache usage"
}

// Usage returns a usage string for help
func (df *DfCommand) Usage() string {
	return "df"
}

// Execute runs the command with parsed arguments
// Returns exit code (0 = success) and error message
func (df *DfCommand) Execute(ctx context.Context, api shell.API, args *shell.CommandArgs, writer io.Writer) (int, error) {
	limit := "unlimited"
	if v := api.TotalCostLimit(); v > 0 {
		limit = fmt.Sprintf("%d B", v)
	}

	fmt.Fprintf(writer, "payloads: %d\n", api.Len())
	fmt.Fprintf(writer, "resident: %d B\n", api.TotalCost())
	fmt.Fprintf(writer, "limit:    %s\n", limit)

	return 0, nil
}

// GetFlags returns the flag set for this command (this is optional)
func (df *DfCommand) GetFlags() *shell.CommandFlagSet {
	return nil
}
