package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser matches raw arguments against a command's flag set.
type Parser struct {
	flagSet *CommandFlagSet

	long  map[string]string
	short map[string]string
}

func NewParser(flagSet *CommandFlagSet) *Parser {
	p := &Parser{
		flagSet: flagSet,
		long:    make(map[string]string),
		short:   make(map[string]string),
	}

	for name, flag := range flagSet.Flags {
		p.long[flag.Name] = name
		if flag.Short != "" {
			p.short[flag.Short] = name
		}
	}

	return p
}

// Parse splits raw into positional arguments and typed flag values. A "--"
// token ends flag parsing; everything after it is positional.
func (p *Parser) Parse(raw []string) (*CommandArgs, error) {
	args := &CommandArgs{
		Flags: make(map[string]any),
		Raw:   raw,
	}

	for name, flag := range p.flagSet.Flags {
		if flag.Default != nil {
			args.Flags[name] = flag.Default
		}
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		if arg == "--" {
			args.Args = append(args.Args, raw[i+1:]...)
			break
		}

		switch {
		case strings.HasPrefix(arg, "--"):
			consumed, err := p.parseLong(args, arg, raw[i+1:])
			if err != nil {
				return nil, err
			}
			i += consumed

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			consumed, err := p.parseShort(args, arg[1:], raw[i+1:])
			if err != nil {
				return nil, err
			}
			i += consumed

		default:
			args.Args = append(args.Args, arg)
		}
	}

	for name, flag := range p.flagSet.Flags {
		if !flag.Required {
			continue
		}
		if _, ok := args.Flags[name]; !ok {
			if flag.Short != "" {
				return nil, fmt.Errorf("required flag: -%s / --%s", flag.Short, flag.Name)
			}
			return nil, fmt.Errorf("required flag: --%s", flag.Name)
		}
	}

	return args, nil
}

// parseLong handles a single "--flag", "--flag=value" or "--flag value"
// token and reports how many follow-up tokens it consumed.
func (p *Parser) parseLong(args *CommandArgs, arg string, rest []string) (int, error) {
	key := strings.TrimPrefix(arg, "--")

	value, hasValue := "", false
	if idx := strings.Index(key, "="); idx >= 0 {
		key, value, hasValue = key[:idx], key[idx+1:], true
	}

	name, exists := p.long[key]
	if !exists {
		return 0, fmt.Errorf("unknown flag: --%s", key)
	}

	flag := p.flagSet.Flags[name]
	if flag.Type == "bool" {
		args.Flags[name] = true
		return 0, nil
	}
	if hasValue {
		args.Flags[name] = coerce(value, flag.Type)
		return 0, nil
	}
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		args.Flags[name] = coerce(rest[0], flag.Type)
		return 1, nil
	}

	return 0, fmt.Errorf("flag --%s requires a value", key)
}

// parseShort handles a bundle of single-char flags like "-al". A non-bool
// flag swallows the rest of the bundle or the next token as its value.
func (p *Parser) parseShort(args *CommandArgs, bundle string, rest []string) (int, error) {
	for j, ch := range bundle {
		short := string(ch)

		name, exists := p.short[short]
		if !exists {
			return 0, fmt.Errorf("unknown flag: -%s", short)
		}

		flag := p.flagSet.Flags[name]
		if flag.Type == "bool" {
			args.Flags[name] = true
			continue
		}

		if j+1 < len(bundle) {
			args.Flags[name] = coerce(bundle[j+1:], flag.Type)
			return 0, nil
		}
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			args.Flags[name] = coerce(rest[0], flag.Type)
			return 1, nil
		}

		return 0, fmt.Errorf("flag -%s requires a value", short)
	}

	return 0, nil
}

func coerce(value string, typeStr string) any {
	switch typeStr {
	case "int":
		v, _ := strconv.ParseInt(value, 10, 64)
		return v
	case "bool":
		return value == "true" || value == "1" || value == "yes"
	default:
		return value
	}
}
