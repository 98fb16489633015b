package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config controls where and how verbosely the tool logs.
type Config struct {
	// Root is the workspace root (or cwd); logs go to <Root>/.djbhash/logs/djbhash.log.
	Root  string
	Debug bool

	// Writer, when set, replaces the log file. Used by tests.
	Writer io.Writer
}

const (
	dirName  = ".djbhash"
	fileName = "djbhash.log"
)

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Setup installs the global logger. The returned cleanup closes the log file
// and restores the discard logger.
func Setup(cfg Config) (func() error, error) {
	w := cfg.Writer
	var f *os.File
	var path string

	if w == nil {
		root := filepath.Clean(cfg.Root)
		if cfg.Root == "" {
			root = "."
		}

		dir := filepath.Join(root, dirName, "logs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			reset()
			return nil, err
		}

		path = filepath.Join(dir, fileName)
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			reset()
			return nil, err
		}
		w = f
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Debug("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discard()
		return cerr
	}

	return cleanup, nil
}

// L returns the current global logger; a discard logger before Setup.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the active log file, empty when logging to a Writer or discarding.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}
