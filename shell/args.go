package shell

import "path"

// CommandArgs contains one parsed command invocation
type CommandArgs struct {
	// Positional arguments (command-specific)
	Args []string

	// Parsed flags
	Flags map[string]any

	// Raw unparsed arguments (for custom parsing)
	Raw []string

	// Dir is the shell working directory relative paths resolve against
	Dir string
}

// Path resolves the i-th positional argument against Dir. A missing argument
// resolves to Dir itself.
func (ca *CommandArgs) Path(i int) string {
	if i >= len(ca.Args) {
		return ca.Dir
	}

	return Resolve(ca.Dir, ca.Args[i])
}

// Bool returns the named flag as a bool, false when unset.
func (ca *CommandArgs) Bool(name string) bool {
	v, ok := ca.Flags[name].(bool)
	return ok && v
}

// CommandFlagSet defines the expected flags for a command
type CommandFlagSet struct {
	Flags map[string]*CommandFlag
}

// CommandFlag represents a single command-line flag
type CommandFlag struct {
	Name        string `json:"name"`              // e.g., "long" or "l"
	Short       string `json:"short"`             // Single-char shorthand (e.g., "l")
	Type        string `json:"type"`              // "string", "bool", "int"
	Default     any    `json:"default,omitempty"` // Default value
	Required    bool   `json:"required"`          // Must be provided
	Description string `json:"description"`       // Help text
}

// Resolve turns arg into a clean absolute path under dir. The file manager
// only accepts absolute paths without "." or ".." components, so those are
// resolved here at the shell boundary.
func Resolve(dir, arg string) string {
	if path.IsAbs(arg) {
		return path.Clean(arg)
	}

	return path.Join(dir, arg)
}
