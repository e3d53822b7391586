package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jormungand/CoconutKit/shell"
	"github.com/jormungand/CoconutKit/shell/builtin"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell against a fresh store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		m, err := newFileManager()
		if err != nil {
			return err
		}
		defer m.Shutdown(ctx)

		sh := shell.NewShell(m)
		if err := builtin.RegisterAll(sh); err != nil {
			return err
		}

		fmt.Println("coconutkit shell, type 'help' for commands and 'exit' to leave")

		dir := "/"
		scanner := bufio.NewScanner(os.Stdin)

		for {
			fmt.Printf("%s> ", dir)
			if !scanner.Scan() {
				break
			}

			tokens := shell.Tokenize(scanner.Text())
			if len(tokens) == 0 {
				continue
			}

			// cd, pwd and exit live here: they touch shell state, not
			// the store.
			switch tokens[0] {
			case "exit", "quit":
				return nil

			case "pwd":
				fmt.Println(dir)
				continue

			case "cd":
				target := "/"
				if len(tokens) > 1 {
					target = shell.Resolve(dir, tokens[1])
				}
				if stat := m.Stat(ctx, target); !stat.Exists || !stat.IsDirectory {
					fmt.Fprintf(os.Stderr, "no such directory: %s\n", target)
					continue
				}
				dir = target
				continue
			}

			if _, err := sh.Execute(ctx, dir, os.Stdout, tokens...); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}

		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
