// Package shell implements a small command layer over a file manager.
// Commands register by name; raw argument lists are tokenized, parsed
// against each command's flag set and executed against the narrow API
// surface.
package shell

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Shell handles command registration, parsing and execution.
type Shell struct {
	mu   sync.RWMutex
	api  API
	cmds map[string]Command
}

// NewShell creates an empty shell bound to api. Commands are added with
// Register.
func NewShell(api API) *Shell {
	return &Shell{
		api:  api,
		cmds: make(map[string]Command),
	}
}

// Register adds a command under its name.
func (sh *Shell) Register(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("command cannot be nil")
	}

	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, exists := sh.cmds[name]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}

	sh.cmds[name] = cmd
	return nil
}

// Unregister removes a registered command.
func (sh *Shell) Unregister(name string) error {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, exists := sh.cmds[name]; !exists {
		return fmt.Errorf("command not found: %s", name)
	}

	delete(sh.cmds, name)
	return nil
}

// Get returns a command by name.
func (sh *Shell) Get(name string) (Command, error) {
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	cmd, exists := sh.cmds[name]
	if !exists {
		return nil, fmt.Errorf("command not found: %s", name)
	}

	return cmd, nil
}

// List returns all registered commands sorted by name.
func (sh *Shell) List() []Command {
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	commands := make([]Command, 0, len(sh.cmds))
	for _, cmd := range sh.cmds {
		commands = append(commands, cmd)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	return commands
}

// Execute parses and executes a command. dir is the working directory that
// relative path arguments resolve against; command output goes to writer.
// Returns the command's exit code (0 = success).
func (sh *Shell) Execute(ctx context.Context, dir string, writer io.Writer, args ...string) (int, error) {
	if len(args) == 0 {
		return 1, fmt.Errorf("no command specified")
	}

	cmd, err := sh.Get(args[0])
	if err != nil {
		return 1, err
	}

	flagSet := cmd.GetFlags()
	if flagSet == nil {
		flagSet = &CommandFlagSet{Flags: make(map[string]*CommandFlag)}
	}

	parsed, err := NewParser(flagSet).Parse(args[1:])
	if err != nil {
		return 1, fmt.Errorf("parse error: %w", err)
	}

	if dir == "" {
		dir = "/"
	}
	parsed.Dir = dir

	return cmd.Execute(ctx, sh.api, parsed, writer)
}
