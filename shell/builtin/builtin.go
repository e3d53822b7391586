// Package builtin provides the standard command set for the shell: listing,
// reading and writing files, namespace manipulation and cache inspection.
package builtin

import "github.com/jormungand/CoconutKit/shell"

// RegisterAll wires every builtin command into sh.
func RegisterAll(sh *shell.Shell) error {
	commands := []shell.Command{
		&LsCommand{},
		&CatCommand{},
		&WriteCommand{},
		&MkdirCommand{},
		&RmCommand{},
		&CpCommand{},
		&MvCommand{},
		&StatCommand{},
		&DfCommand{},
		NewHelpCommand(sh),
	}

	for _, cmd := range commands {
		if err := sh.Register(cmd); err != nil {
			return err
		}
	}

	return nil
}
