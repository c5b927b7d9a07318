package observability

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger writes structured lines tagged with the component that emitted
// them. The terminal belongs to the UI, so output normally goes to a file.
type Logger struct {
	logger zerolog.Logger
}

func NewLogger(w io.Writer, component, level string) Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return Logger{logger: zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger()}
}

// OpenFile opens path for appending and returns a logger on it together
// with the file to close on exit. An empty path discards everything.
func OpenFile(path, component, level string) (Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Nop(), io.NopCloser(nil), fmt.Errorf("open log file %s: %w", path, err)
	}
	return NewLogger(f, component, level), f, nil
}

func Nop() Logger {
	return Logger{logger: zerolog.Nop()}
}

// With returns a logger whose lines also carry scope.
func (l Logger) With(scope string) Logger {
	return Logger{logger: l.logger.With().Str("scope", scope).Logger()}
}

func (l Logger) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

func (l Logger) Infof(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}
