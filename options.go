package coconutkit

import (
	"github.com/jormungand/CoconutKit/data"
	"github.com/jormungand/CoconutKit/log"
)

// Options configures an InMemoryFileManager during construction.
type Options struct {
	// TotalCostLimit caps the summed cost of resident payloads in bytes.
	// Zero means unlimited.
	TotalCostLimit int64

	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool

	// Logger overrides the log settings above when set.
	Logger *log.Logger
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		TotalCostLimit: 0,
		LogLevel:       log.Info,
	}
}

// WithTotalCostLimit caps resident payload bytes; zero means unlimited.
// Rejects negative limits with ErrInvalid.
func WithTotalCostLimit(limit int64) Option {
	return func(o *Options) error {
		if limit < 0 {
			return data.ErrInvalid
		}

		o.TotalCostLimit = limit
		return nil
	}
}

// WithLogLevel sets the minimum log level by name, one of debug, info,
// warn, error or fatal.
func WithLogLevel(level string) Option {
	return func(o *Options) error {
		parsed, err := log.Parse(level)
		if err != nil {
			return err
		}

		o.LogLevel = parsed
		return nil
	}
}

// WithLogFile mirrors log output into a rotated file.
func WithLogFile(file string) Option {
	return func(o *Options) error {
		o.LogFile = file
		return nil
	}
}

// WithoutTerminalLog drops terminal log output. Combined with no log file
// this silences the manager entirely.
func WithoutTerminalLog() Option {
	return func(o *Options) error {
		o.NoTerminalLog = true
		return nil
	}
}

// WithLogger supplies a prebuilt logger, ignoring the other log options.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) error {
		o.Logger = logger
		return nil
	}
}
