package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mirrordoc"
)

// Ensure LoggingParser implements mirrordoc.Parser.
var _ mirrordoc.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging. Pages it returns log
// metadata and body extraction too.
type LoggingParser struct {
	next   mirrordoc.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next mirrordoc.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(rawHTML string) (page mirrordoc.Page, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(rawHTML),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	page, err = p.next.Parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return &loggingPage{next: page, logger: p.logger}, nil
}

type loggingPage struct {
	next   mirrordoc.Page
	logger *slog.Logger
}

func (p *loggingPage) Title() (title string, err error) {
	defer func() {
		p.logger.Debug("title", "title", title, "err", err)
	}()
	return p.next.Title()
}

func (p *loggingPage) ProvenanceComment() (comment string, err error) {
	defer func() {
		p.logger.Debug("provenance", "comment", comment, "err", err)
	}()
	return p.next.ProvenanceComment()
}

func (p *loggingPage) Body() (body string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("sanitize",
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Body()
}
