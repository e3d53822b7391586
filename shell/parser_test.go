package shell_test

import (
	"reflect"
	"testing"

	"github.com/jormungand/CoconutKit/shell"
)

func testFlagSet() *shell.CommandFlagSet {
	return &shell.CommandFlagSet{
		Flags: map[string]*shell.CommandFlag{
			"long": {
				Name:  "long",
				Short: "l",
				Type:  "bool",
			},
			"all": {
				Name:  "all",
				Short: "a",
				Type:  "bool",
			},
			"count": {
				Name:    "count",
				Short:   "n",
				Type:    "int",
				Default: int64(1),
			},
			"name": {
				Name:  "name",
				Short: "",
				Type:  "string",
			},
		},
	}
}

// TestParser_Parse verifies flag and positional argument handling.
func TestParser_Parse(t *testing.T) {
	t.Run("Positionals", func(tst *testing.T) {
		args, err := shell.NewParser(testFlagSet()).Parse([]string{"one", "two"})
		if err != nil {
			tst.Fatalf("Parse failed: %v", err)
		}

		if !reflect.DeepEqual(args.Args, []string{"one", "two"}) {
			tst.Errorf("Expected positionals [one two], got %v", args.Args)
		}
	})

	t.Run("DefaultsApply", func(tst *testing.T) {
		args, err := shell.NewParser(testFlagSet()).Parse(nil)
		if err != nil {
			tst.Fatalf("Parse failed: %v", err)
		}

		if v, ok := args.Flags["count"].(int64); !ok || v != 1 {
			tst.Errorf("Expected default count 1, got %v", args.Flags["count"])
		}
	})

	t.Run("LongBool", func(tst *testing.T) {
		args, err := shell.NewParser(testFlagSet()).Parse([]string{"--long", "path"})
		if err != nil {
			tst.Fatalf("Parse failed: %v", err)
		}

		if !args.Bool("long") {
			tst.Error("Expected long to be set")
		}
		if len(args.Args) != 1 || args.Args[0] != "path" {
			tst.Errorf("Expected positional [path], got %v", args.Args)
		}
	})

	t.Run("LongEquals", func(tst *testing.T) {
		args, err := shell.NewParser(testFlagSet()).Parse([]string{"--name=value"})
		if err != nil {
			tst.Fatalf("Parse failed: %v", err)
		}

		if v, _ := args.Flags["name"].(string); v != "value" {
			tst.Errorf("Expected %q, got %q", "value", v)
		}
	})

	t.Run("LongSpacedValue", func(tst *testing.T) {
		args, err := shell.NewParser(testFlagSet()).Parse([]string{"--count", "5"})
		if err != nil {
			tst.Fatalf("Parse failed: %v", err)
		}

		if v, _ := args.Flags["count"].(int64); v != 5 {
			tst.Errorf("Expected count 5, got %v", args.Flags["count"])
		}
	})

	t.Run("ShortBundle", func(tst *testing.T) {
		args, err := shell.NewParser(testFlagSet()).Parse([]string{"-la"})
		if err != nil {
			tst.Fatalf("Parse failed: %v", err)
		}

		if !args.Bool("long") || !args.Bool("all") {
			tst.Errorf("Expected both bools set, got %v", args.Flags)
		}
	})

	t.Run("ShortAttachedValue", func(tst *testing.T) {
		args, err := shell.NewParser(testFlagSet()).Parse([]string{"-n7"})
		if err != nil {
			tst.Fatalf("Parse failed: %v", err)
		}

		if v, _ := args.Flags["count"].(int64); v != 7 {
			tst.Errorf("Expected count 7, got %v", args.Flags["count"])
		}
	})

	t.Run("UnknownFlag", func(tst *testing.T) {
		if _, err := shell.NewParser(testFlagSet()).Parse([]string{"--bogus"}); err == nil {
			tst.Error("Expected an error for an unknown flag")
		}
	})

	t.Run("MissingValue", func(tst *testing.T) {
		if _, err := shell.NewParser(testFlagSet()).Parse([]string{"--name"}); err == nil {
			tst.Error("Expected an error for a flag without a value")
		}
	})

	t.Run("RequiredFlag", func(tst *testing.T) {
		flagSet := &shell.CommandFlagSet{
			Flags: map[string]*shell.CommandFlag{
				"target": {
					Name:     "target",
					Type:     "string",
					Required: true,
				},
			},
		}

		if _, err := shell.NewParser(flagSet).Parse(nil); err == nil {
			tst.Error("Expected an error for a missing required flag")
		}

		if _, err := shell.NewParser(flagSet).Parse([]string{"--target", "x"}); err != nil {
			tst.Errorf("Parse failed: %v", err)
		}
	})

	t.Run("DoubleDashStopsParsing", func(tst *testing.T) {
		args, err := shell.NewParser(testFlagSet()).Parse([]string{"--long", "--", "--not-a-flag"})
		if err != nil {
			tst.Fatalf("Parse failed: %v", err)
		}

		if !reflect.DeepEqual(args.Args, []string{"--not-a-flag"}) {
			tst.Errorf("Expected positional [--not-a-flag], got %v", args.Args)
		}
	})
}

// TestTokenize verifies quote-aware command line splitting.
func TestTokenize(t *testing.T) {
	cases := map[string][]string{
		"ls -l /data":             {"ls", "-l", "/data"},
		`write /f "hello world"`:  {"write", "/f", "hello world"},
		`write /f 'single quote'`: {"write", "/f", "single quote"},
		`echo "it's quoted"`:      {"echo", "it's quoted"},
		"  spaced   out  ":        {"spaced", "out"},
		"":                        nil,
	}

	for line, expected := range cases {
		got := shell.Tokenize(line)
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("Tokenize(%q): expected %v, got %v", line, expected, got)
		}
	}
}

// TestResolve verifies relative path resolution at the shell boundary.
func TestResolve(t *testing.T) {
	cases := []struct {
		dir      string
		arg      string
		expected string
	}{
		{"/", "file.txt", "/file.txt"},
		{"/data", "file.txt", "/data/file.txt"},
		{"/data", "/abs.txt", "/abs.txt"},
		{"/data", "..", "/"},
		{"/data/sub", "../other", "/data/other"},
		{"/data", ".", "/data"},
		{"/", "/a/../b", "/b"},
	}

	for _, c := range cases {
		if got := shell.Resolve(c.dir, c.arg); got != c.expected {
			t.Errorf("Resolve(%q, %q): expected %q, got %q", c.dir, c.arg, got, c.expected)
		}
	}
}
