package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/mirrordoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Extractions is nil unless an extraction log database is configured.
	Extractions mirrordoc.ExtractionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"MIRRORDOC_DB" help:"SQLite database recording every extraction (disabled when empty)"`
	Verbose bool   `short:"v" help:"Log every pipeline stage to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract documents from mirrored HTML pages"`
	Log     LogCmd     `cmd:"" help:"List recorded extractions"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Paths       []string `arg:"" help:"HTML files or mirror directories"`
	Encoding    string   `default:"utf-8" env:"MIRRORDOC_ENCODING" help:"Encoding of the input pages (WHATWG label)"`
	KeepStyles  bool     `help:"Keep <style> elements and style attributes in the body"`
	Concurrency int      `short:"c" default:"1" help:"Pages processed in parallel"`
	DryRun      bool     `help:"Print documents to stdout instead of writing files"`
}

// LogCmd is the "log" subcommand.
type LogCmd struct {
	ID     string `name:"id" help:"Show every field of a single extraction"`
	Status string `help:"Only show extractions with this status (ok or failed)"`
	Path   string `help:"Only show extractions of this input file"`
	Limit  int    `default:"20" help:"Maximum number of extractions to show"`
}
