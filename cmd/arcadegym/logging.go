package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-gym/internal/config"
	"github.com/vovakirdan/arcade-gym/internal/games/arena"
)

// logFileName lives in ~/.arcadegym while the terminal UI owns the screen.
const logFileName = "arcadegym.log"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcadegym",
		Level:           level,
	})
}

// useLogFile redirects the app logger to the log file for the lifetime
// of a full-screen session. The returned func restores stderr logging.
func useLogFile() (restore func(), err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locate home directory: %w", err)
	}
	dir := filepath.Join(home, config.UserDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	prev := app.logger
	app.logger = newLogger(f, app.level)
	arena.SetLogger(app.logger)
	return func() {
		app.logger = prev
		arena.SetLogger(prev)
		f.Close()
	}, nil
}
