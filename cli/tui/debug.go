package tui

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	debugFile *os.File
	debugMu   sync.Mutex
)

// InitDebugLog opens the debug log file. The terminal is owned by the
// browser, so debugging output goes to a file instead of stderr.
func InitDebugLog() error {
	debugMu.Lock()
	defer debugMu.Unlock()

	file, err := os.OpenFile("coconutkit-tui.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	debugFile = file
	return nil
}

// CloseDebugLog closes the debug log file.
func CloseDebugLog() {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugFile != nil {
		debugFile.Close()
		debugFile = nil
	}
}

// DebugLog writes a timestamped line to the debug log. It is a no-op when
// the log file is not open.
func DebugLog(format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugFile == nil {
		return
	}

	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(debugFile, "[%s] %s\n", time.Now().Format("15:04:05.000"), line)
	debugFile.Sync()
}
