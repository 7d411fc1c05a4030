package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"clinic/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the process-wide slog.Logger from the env.log section.
func New(params Params) (*slog.Logger, error) {
	return NewWithWriter(os.Stdout, params.Config.Env.Log)
}

// NewWithWriter builds a logger that writes to w. Pretty selects the text handler, otherwise JSON.
func NewWithWriter(w io.Writer, logCfg config.Log) (*slog.Logger, error) {
	level, err := parseLogLevel(logCfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if logCfg.Pretty {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// parseLogLevel converts string log level to slog.Level. An empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
