// Package logging builds the slog loggers used by the tag helper catalog, binder
// and CLI.
//
// Components accept a *slog.Logger through their configuration. When none is
// provided they use Nop(), so the binding core stays silent by default.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level written.
	Level slog.Level

	// Format is the output format. Anything but FormatJSON writes text.
	Format Format

	// Output receives log entries. Nil means os.Stderr.
	Output io.Writer

	// AddSource adds source file and line to log entries.
	AddSource bool
}

// DefaultConfig is the razor-bind baseline: warnings and errors, as text, on stderr.
// Flags override individual fields.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// New creates a logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}
	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrNop returns logger, or Nop() when logger is nil.
func OrNop(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}

// ParseLevel parses a level name ignoring case. It accepts the slog spellings
// ("debug", "info", "warn", "error", with optional offsets such as "warn+2") and
// "warning".
func ParseLevel(s string) (slog.Level, error) {
	name := s
	if strings.EqualFold(name, "warning") {
		name = "warn"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// ParseFormat parses a format name ignoring case.
func ParseFormat(s string) (Format, error) {
	switch {
	case strings.EqualFold(s, string(FormatText)):
		return FormatText, nil
	case strings.EqualFold(s, string(FormatJSON)):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}
