// Package logging routes slog to a rotating file. The TUI owns the
// terminal, so diagnostics never go to stdout or stderr.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the default logger. With debug false only info and above
// is written.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	writer := &lumberjack.Logger{
		Filename:   logPath(),
		MaxSize:    5, // MB
		MaxBackups: 2,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})))
}

func logPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "fastkill.log")
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "fastkill", "fastkill.log")
}
