package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	coconutkit "github.com/jormungand/CoconutKit"
	"github.com/jormungand/CoconutKit/shell"
	"github.com/jormungand/CoconutKit/shell/builtin"
)

func newTestShell(tst *testing.T) *shell.Shell {
	m, err := coconutkit.NewInMemoryFileManager(coconutkit.WithoutTerminalLog())
	if err != nil {
		tst.Fatalf("Failed to initialize file manager: %v", err)
	}

	sh := shell.NewShell(m)
	if err := builtin.RegisterAll(sh); err != nil {
		tst.Fatalf("Failed to register builtins: %v", err)
	}

	return sh
}

func run(tst *testing.T, sh *shell.Shell, dir, line string) string {
	var out bytes.Buffer

	code, err := sh.Execute(context.Background(), dir, &out, shell.Tokenize(line)...)
	if err != nil {
		tst.Fatalf("Command %q failed: %v", line, err)
	}
	if code != 0 {
		tst.Fatalf("Command %q exited with code %d", line, code)
	}

	return out.String()
}

// TestShell_Builtins drives the builtin command set end to end against a
// live file manager.
func TestShell_Builtins(t *testing.T) {
	t.Run("WriteCatRoundTrip", func(tst *testing.T) {
		sh := newTestShell(tst)

		run(tst, sh, "/", `write /greeting.txt "hello world"`)
		out := run(tst, sh, "/", "cat /greeting.txt")

		if out != "hello world\n" {
			tst.Errorf("Expected %q, got %q", "hello world\n", out)
		}
	})

	t.Run("MkdirLsStat", func(tst *testing.T) {
		sh := newTestShell(tst)

		run(tst, sh, "/", "mkdir -p /data/sub")
		run(tst, sh, "/", "write /data/a.txt first")
		run(tst, sh, "/", "write /data/b.txt second")

		out := run(tst, sh, "/", "ls /data")
		if out != "a.txt\nb.txt\nsub\n" {
			tst.Errorf("Expected sorted listing, got %q", out)
		}

		out = run(tst, sh, "/", "ls -l /data")
		if !strings.Contains(out, "d sub") || !strings.Contains(out, "f a.txt") {
			tst.Errorf("Expected kinds in long listing, got %q", out)
		}

		out = run(tst, sh, "/", "stat /data")
		if !strings.Contains(out, "directory") {
			tst.Errorf("Expected a directory stat, got %q", out)
		}
	})

	t.Run("RelativePaths", func(tst *testing.T) {
		sh := newTestShell(tst)

		run(tst, sh, "/", "mkdir /work")
		run(tst, sh, "/work", "write notes.txt scratch")

		out := run(tst, sh, "/work", "cat notes.txt")
		if out != "scratch\n" {
			tst.Errorf("Expected %q, got %q", "scratch\n", out)
		}

		out = run(tst, sh, "/work", "stat ../work/notes.txt")
		if !strings.Contains(out, "file") {
			tst.Errorf("Expected a file stat, got %q", out)
		}
	})

	t.Run("CpMvRm", func(tst *testing.T) {
		sh := newTestShell(tst)

		run(tst, sh, "/", "write /src.txt payload")
		run(tst, sh, "/", "cp /src.txt /copy.txt")
		run(tst, sh, "/", "mv /copy.txt /moved.txt")

		out := run(tst, sh, "/", "cat /moved.txt")
		if out != "payload\n" {
			tst.Errorf("Expected %q, got %q", "payload\n", out)
		}

		run(tst, sh, "/", "rm /moved.txt /src.txt")

		out = run(tst, sh, "/", "stat /moved.txt")
		if !strings.Contains(out, "not found") {
			tst.Errorf("Expected absence, got %q", out)
		}
	})

	t.Run("DfReportsUsage", func(tst *testing.T) {
		sh := newTestShell(tst)

		run(tst, sh, "/", "write /f.bin 12345")
		out := run(tst, sh, "/", "df")

		if !strings.Contains(out, "payloads: 1") {
			tst.Errorf("Expected payload count, got %q", out)
		}
		if !strings.Contains(out, "resident: 5 B") {
			tst.Errorf("Expected resident bytes, got %q", out)
		}
		if !strings.Contains(out, "unlimited") {
			tst.Errorf("Expected an unlimited budget, got %q", out)
		}
	})

	t.Run("HelpListsCommands", func(tst *testing.T) {
		sh := newTestShell(tst)

		out := run(tst, sh, "/", "help")
		for _, name := range []string{"ls", "cat", "write", "mkdir", "rm", "cp", "mv", "stat", "df", "help"} {
			if !strings.Contains(out, name) {
				tst.Errorf("Expected %q in help output, got %q", name, out)
			}
		}
	})

	t.Run("FailuresReportExitCode", func(tst *testing.T) {
		sh := newTestShell(tst)
		var out bytes.Buffer

		code, err := sh.Execute(context.Background(), "/", &out, "cat", "/nonexistent")
		if err == nil {
			tst.Error("Expected an error for a missing file")
		}
		if code == 0 {
			tst.Error("Expected a non-zero exit code")
		}

		code, err = sh.Execute(context.Background(), "/", &out, "bogus")
		if err == nil || code == 0 {
			tst.Errorf("Expected an unknown command failure, got code %d err %v", code, err)
		}
	})
}

// TestShell_Register verifies registry bookkeeping.
func TestShell_Register(t *testing.T) {
	sh := newTestShell(t)

	if err := sh.Register(&builtin.LsCommand{}); err == nil {
		t.Error("Expected an error when registering a duplicate command")
	}

	if err := sh.Unregister("df"); err != nil {
		t.Errorf("Unregister failed: %v", err)
	}
	if _, err := sh.Get("df"); err == nil {
		t.Error("Expected the command to be gone")
	}
	if err := sh.Unregister("df"); err == nil {
		t.Error("Expected an error when unregistering twice")
	}
}
