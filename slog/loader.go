package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mirrordoc"
)

// Ensure LoggingLoader implements mirrordoc.Loader.
var _ mirrordoc.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   mirrordoc.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next mirrordoc.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, path string) (text string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load",
			"path", path,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path)
}
