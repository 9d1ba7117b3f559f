// Package logging configures the global zerolog logger. The terminal
// belongs to the TUI, so log output goes to a file under the user cache
// dir, and only when debug logging is enabled. Otherwise the global
// logger is a no-op.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger. When debug is false all log calls
// are discarded.
func Setup(debug bool) error {
	if !debug {
		log.Logger = zerolog.Nop()
		return nil
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(cacheDir, "ayat-atlas")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	log.Logger = zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return nil
}
