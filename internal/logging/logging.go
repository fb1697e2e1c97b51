// Package logging provides opt-in file-based logging for codesearch.
//
// By default, logging goes to stderr at Info level. With --debug, logs also
// go to a file under ~/.codesearch/logs/ at Debug level.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// FilePath is the path to the log file. Empty means no file logging.
	FilePath string
}

// DefaultConfig returns the non-debug default: Info level, stderr only.
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// DebugConfig returns the --debug configuration: Debug level, stderr plus
// a log file under the user's home directory.
func DebugConfig() Config {
	return Config{Level: "debug", FilePath: DefaultLogPath()}
}

// DefaultLogPath returns ~/.codesearch/logs/codesearch.log.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".codesearch", "logs", "codesearch.log")
}

// Setup builds a slog.Logger per cfg and installs it as the process default.
// It returns a cleanup function that must be called before process exit to
// flush and close the log file, if one was opened.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	level := parseLevel(cfg.Level)

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	cleanup := func() {}

	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, f)
		cleanup = func() { _ = f.Close() }
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
