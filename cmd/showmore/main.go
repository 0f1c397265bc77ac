package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error.
		os.Exit(1)
	}
}

// newLogger returns a leveled logger writing to path, or a Nop logger when
// path is empty: the TUI owns the terminal. The returned closer is never nil.
func newLogger(level, path string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, err
	}

	logger := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logger, f.Close, nil
}
