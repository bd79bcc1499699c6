package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"property-tax-tracker/internal/config"

	"github.com/rs/zerolog"
)

// Logger is the component-tagged logging interface used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a configured level name onto a zerolog level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// New builds a logger from configuration. The returned closer releases the
// log file, if one was opened.
func New(cfg config.LoggingConfig) (*ZerologAdapter, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	if strings.ToLower(cfg.Format) != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(out, f)
		closer = f
	}

	return NewZerolog(out, level), closer, nil
}

// NewFileOnly builds a logger that writes JSON to cfg.File and nowhere else,
// for front ends that own the terminal. Without a file it discards everything.
func NewFileOnly(cfg config.LoggingConfig) (*ZerologAdapter, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewZerolog(f, level), f, nil
}

// Nop returns a logger that discards everything.
func Nop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
