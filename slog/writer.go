package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mirrordoc"
)

// Ensure LoggingWriter implements mirrordoc.DocumentWriter.
var _ mirrordoc.DocumentWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a DocumentWriter with logging.
type LoggingWriter struct {
	next   mirrordoc.DocumentWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next mirrordoc.DocumentWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteFile delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteFile(ctx context.Context, path string, data []byte) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteFile(ctx, path, data)
}
