package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/mirrordoc"
)

// Run executes the log command.
func (c *LogCmd) Run(deps *Dependencies) error {
	if deps.Extractions == nil {
		err := fmt.Errorf("no extraction log configured. Pass --db or set MIRRORDOC_DB")
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if c.ID != "" {
		return c.show(deps)
	}

	filter := mirrordoc.ExtractionFilter{Limit: c.Limit}
	if c.Status != "" {
		status := mirrordoc.ExtractionStatus(c.Status)
		if status != mirrordoc.ExtractionOK && status != mirrordoc.ExtractionFailed {
			err := mirrordoc.Errorf(mirrordoc.EINVALID, "invalid status %q, want ok or failed", c.Status)
			fmt.Fprintf(deps.Stderr, "error: %s\n", mirrordoc.ErrorMessage(err))
			return err
		}
		filter.Status = &status
	}
	if c.Path != "" {
		filter.InputPath = &c.Path
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mirrordoc.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions recorded.")
		return nil
	}

	for _, e := range extractions {
		created := e.CreatedAt.Local().Format(time.DateTime)
		if e.Status == mirrordoc.ExtractionOK {
			fmt.Fprintf(deps.Stdout, "%s  %s  ok      %s  %s  %s\n", e.ID, created, e.InputPath, e.URL, e.ScrapeDate)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  failed  %s  %s/%s: %s\n", e.ID, created, e.InputPath, e.Stage, e.ErrorCode, e.ErrorMessage)
	}

	return nil
}

// show prints a single extraction, one field per line.
func (c *LogCmd) show(deps *Dependencies) error {
	e, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mirrordoc.ErrorMessage(err))
		return err
	}

	field := func(name, value string) {
		fmt.Fprintf(deps.Stdout, "%-12s %s\n", name+":", value)
	}
	field("id", e.ID)
	field("created", e.CreatedAt.Local().Format(time.DateTime))
	field("input", e.InputPath)
	field("status", string(e.Status))
	if e.Status == mirrordoc.ExtractionFailed {
		field("stage", string(e.Stage))
		field("code", e.ErrorCode)
		field("message", e.ErrorMessage)
		return nil
	}
	if e.OutputPath != "" {
		field("output", e.OutputPath)
	}
	field("title", e.Title)
	field("url", e.URL)
	field("scrape date", e.ScrapeDate)
	field("body hash", e.BodyHash)
	return nil
}
