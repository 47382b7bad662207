package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/mirrordoc"
	"github.com/fwojciec/mirrordoc/fs"
	"github.com/fwojciec/mirrordoc/goquery"
	mdjson "github.com/fwojciec/mirrordoc/json"
	"github.com/fwojciec/mirrordoc/pipeline"
	mdslog "github.com/fwojciec/mirrordoc/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	encoding := c.Encoding
	if encoding == "" {
		encoding = fs.DefaultEncoding
	}
	if _, err := fs.LookupEncoding(encoding); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mirrordoc.ErrorMessage(err))
		return err
	}

	paths, err := fs.Discover(c.Paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found.")
		return nil
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sanitize := goquery.DefaultSanitizeOptions()
	sanitize.StripStyles = !c.KeepStyles

	batch := &pipeline.Batch{
		Pipeline: &pipeline.Pipeline{
			Loader:      mdslog.NewLoggingLoader(fs.NewLoader(fs.WithEncoding(encoding)), logger),
			Parser:      mdslog.NewLoggingParser(goquery.NewParser(sanitize), logger),
			Encoder:     mdjson.NewEncoder(),
			Writer:      mdslog.NewLoggingWriter(fs.NewWriter(), logger),
			Extractions: deps.Extractions,
			DryRun:      c.DryRun,
		},
		Concurrency: c.Concurrency,
	}

	results, err := batch.Run(deps.Ctx, paths, func(e pipeline.ProgressEvent) {
		logger.Info("progress", "path", e.Path, "completed", e.Completed, "total", e.Total)
	})

	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.InputPath, describe(r.Err))
		case c.DryRun:
			_, _ = deps.Stdout.Write(r.JSON)
		default:
			fmt.Fprintf(deps.Stdout, "wrote %s\n", r.OutputPath)
		}
	}

	if err != nil {
		return err
	}
	if failed := pipeline.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d pages failed", len(failed), len(results))
	}
	return nil
}

// describe renders err with its stage and code when it carries them.
func describe(err error) string {
	msg := err.Error()
	var appErr *mirrordoc.Error
	if errors.As(err, &appErr) {
		msg = fmt.Sprintf("%s (%s)", appErr.Message, appErr.Code)
	}
	if stage := mirrordoc.ErrorStage(err); stage != "" {
		return fmt.Sprintf("%s failed: %s", stage, msg)
	}
	return msg
}
