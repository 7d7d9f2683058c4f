// Package debug provides optional file-based debug logging.
//
// When the PROMPT_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
// The terminal itself is the prompt's output, so nothing is ever logged to
// stdout or stderr.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "PROMPT_DEBUG"

var (
	logFile  *os.File
	mu       sync.Mutex
	fromEnv  sync.Once
	disabled bool
)

// Init starts debug logging to the file at path, replacing any open log.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	fromEnv.Do(func() {})
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	disabled = false
	return nil
}

// loadEnv opens the file named by PROMPT_DEBUG the first time logging is used.
// Caller must hold mu.
func loadEnv() {
	fromEnv.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			disabled = true
			return
		}
		if err := initLocked(path); err != nil {
			disabled = true
		}
	})
}

// Enabled reports whether log messages are written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadEnv()
	return logFile != nil
}

// Close closes the debug log file. Later calls to Log are no-ops.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	fromEnv.Do(func() {})
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		disabled = true
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadEnv()
	if disabled || logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}
