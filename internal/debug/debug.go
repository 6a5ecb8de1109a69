// Package debug provides the file-backed debug log shared by the storefront
// packages.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"storefront/pkg/config"
)

// FileName is the name of the debug log inside the data directory.
const FileName = "debug.log"

// DebugLogger manages debug output using Go's standard logging
type DebugLogger struct {
	logger  *log.Logger
	logFile *os.File
	path    string
}

// NewDebugLogger creates a debug logger writing to debug.log in the data
// directory, falling back to stderr.
func NewDebugLogger() *DebugLogger {
	if err := config.EnsureDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to create data directory: %v\n", err)
	}

	dataDir, err := config.GetDataDir()
	if err != nil {
		dataDir = "."
	}

	debugLogPath := filepath.Join(dataDir, FileName)

	logFile, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile = os.Stderr
		debugLogPath = ""
	}

	d := &DebugLogger{
		logger:  newLogger(logFile),
		logFile: logFile,
		path:    debugLogPath,
	}
	d.logger.Println("=== Debug session started ===")
	return d
}

// NewWriterLogger returns a logger that writes to w. It owns no file.
func NewWriterLogger(w io.Writer) *DebugLogger {
	return &DebugLogger{logger: newLogger(w)}
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "[DEBUG] ", log.LstdFlags|log.Lshortfile)
}

// Log writes a formatted message.
func (d *DebugLogger) Log(format string, args ...interface{}) {
	d.output(3, format, args...)
}

// output writes a message. calldepth counts frames as log.Logger.Output
// does, starting at output; 3 is the caller of the function calling output.
func (d *DebugLogger) output(calldepth int, format string, args ...interface{}) {
	if d == nil {
		return
	}
	_ = d.logger.Output(calldepth, fmt.Sprintf(format, args...))
}

// Path returns the log file path, or "" when logging to a writer or stderr.
func (d *DebugLogger) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

// Close closes the debug log file
func (d *DebugLogger) Close() {
	if d == nil {
		return
	}
	d.logger.Println("=== Debug session ended ===")

	if d.logFile != nil && d.logFile != os.Stderr {
		if err := d.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to close debug log file: %v\n", err)
		}
	}
}

var (
	mu     sync.RWMutex
	global *DebugLogger
)

// Init installs the file-backed logger as the package logger.
func Init() *DebugLogger {
	return Set(NewDebugLogger())
}

// Set installs l as the package logger and returns it. Passing nil disables
// logging.
func Set(l *DebugLogger) *DebugLogger {
	mu.Lock()
	global = l
	mu.Unlock()
	return l
}

// Log logs a message to the package logger. It is a no-op before Init.
func Log(format string, args ...interface{}) {
	mu.RLock()
	l := global
	mu.RUnlock()
	if l != nil {
		l.output(3, format, args...)
	}
}
