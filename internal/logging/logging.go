package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// FileName is the log file created inside the log directory
const FileName = "todolink.log"

// Init initializes the logging system, writing logs to ~/.todolink/logs/todolink.log.
// With verbose set, every record is mirrored to stderr as well.
func Init(verbose bool) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitDir(filepath.Join(homeDir, ".todolink", "logs"), verbose)
}

// InitDir is Init with an explicit log directory.
// Uses text format for human readability.
func InitDir(logDir string, verbose bool) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	var out io.Writer = file
	if verbose {
		out = io.MultiWriter(file, os.Stderr)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags)

	return nil
}

// Discard installs a logger that drops everything, for commands run from tests
func Discard() {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(Logger)
}
