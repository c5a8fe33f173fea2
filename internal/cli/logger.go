package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/vijay-prabhu/okapi/internal/config"
)

// NewLogger builds a console logger on w at the configured level
func NewLogger(w io.Writer, cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !useColor(w, cfg.Color),
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger(), nil
}

// useColor reports whether log output should carry ANSI colors.
// In auto mode colors are used only when w is a terminal.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
