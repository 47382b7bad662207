// Package pipeline turns one mirrored page into one JSON document. Each page
// moves through a fixed sequence of states and either reaches StateDone or
// stops in StateFailed; output is only written once every earlier state has
// been reached.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mirrordoc"
)

// State is a step reached by a page in the pipeline.
type State string

// States in the order a successful page reaches them.
const (
	StateStart             State = "start"
	StateLoaded            State = "loaded"
	StateParsed            State = "parsed"
	StateMetadataExtracted State = "metadata_extracted"
	StateBodySanitized     State = "body_sanitized"
	StateAssembled         State = "assembled"
	StateWritten           State = "written"
	StateDone              State = "done"

	// StateFailed is terminal; the failing stage is on Result.Err.
	StateFailed State = "failed"
)

// Pipeline extracts documents from mirrored pages. A Pipeline holds no
// per-page state and may process many pages concurrently.
type Pipeline struct {
	Loader  mirrordoc.Loader
	Parser  mirrordoc.Parser
	Encoder mirrordoc.Encoder
	Writer  mirrordoc.DocumentWriter

	// Extractions, if set, receives one record per processed page.
	Extractions mirrordoc.ExtractionService

	// DryRun stops after StateAssembled without writing output.
	DryRun bool
}

// Result holds the outcome of processing a single page.
type Result struct {
	InputPath  string
	OutputPath string

	// States lists every state entered, starting with StateStart.
	States []State

	Document *mirrordoc.Document
	JSON     []byte
	Err      error
}

// State returns the last state the page reached.
func (r *Result) State() State {
	return r.States[len(r.States)-1]
}

func (r *Result) enter(s State) {
	r.States = append(r.States, s)
}

// Process runs the page at inputPath through the pipeline. The returned
// error, also stored on the result, is a *mirrordoc.StageError naming the
// stage that failed.
//
// If recording to Extractions fails for a page that otherwise succeeded,
// the page stays in StateDone and the error carries mirrordoc.StageRecord.
func (p *Pipeline) Process(ctx context.Context, inputPath string) (*Result, error) {
	r := &Result{
		InputPath:  inputPath,
		OutputPath: mirrordoc.OutputPath(inputPath),
		States:     []State{StateStart},
	}

	if err := p.run(ctx, r); err != nil {
		r.Err = err
		r.enter(StateFailed)
	} else {
		r.enter(StateDone)
	}

	if err := p.record(ctx, r); err != nil && r.Err == nil {
		r.Err = mirrordoc.WrapStage(mirrordoc.StageRecord, err)
	}

	return r, r.Err
}

func (p *Pipeline) run(ctx context.Context, r *Result) error {
	raw, err := p.Loader.Load(ctx, r.InputPath)
	if err != nil {
		return mirrordoc.WrapStage(mirrordoc.StageLoad, err)
	}
	r.enter(StateLoaded)

	page, err := p.Parser.Parse(raw)
	if err != nil {
		return mirrordoc.WrapStage(mirrordoc.StageParse, err)
	}
	r.enter(StateParsed)

	title, prov, err := extractMetadata(page)
	if err != nil {
		return mirrordoc.WrapStage(mirrordoc.StageMetadata, err)
	}
	r.enter(StateMetadataExtracted)

	body, err := page.Body()
	if err != nil {
		return mirrordoc.WrapStage(mirrordoc.StageSanitize, err)
	}
	r.enter(StateBodySanitized)

	doc := &mirrordoc.Document{
		Title:      title,
		URL:        prov.SourceURL,
		ScrapeDate: prov.CapturedAt,
		Body:       body,
	}
	data, err := p.Encoder.Encode(doc)
	if err != nil {
		return mirrordoc.WrapStage(mirrordoc.StageAssemble, err)
	}
	r.Document = doc
	r.JSON = data
	r.enter(StateAssembled)

	if p.DryRun {
		return nil
	}

	if err := p.Writer.WriteFile(ctx, r.OutputPath, data); err != nil {
		return mirrordoc.WrapStage(mirrordoc.StageWrite, err)
	}
	r.enter(StateWritten)

	return nil
}

func extractMetadata(page mirrordoc.Page) (string, *mirrordoc.Provenance, error) {
	title, err := page.Title()
	if err != nil {
		return "", nil, err
	}
	comment, err := page.ProvenanceComment()
	if err != nil {
		return "", nil, err
	}
	prov, err := mirrordoc.NewProvenance(comment)
	if err != nil {
		return "", nil, err
	}
	return title, prov, nil
}

func (p *Pipeline) record(ctx context.Context, r *Result) error {
	if p.Extractions == nil {
		return nil
	}

	e := &mirrordoc.Extraction{
		InputPath: r.InputPath,
		Status:    mirrordoc.ExtractionOK,
	}
	if r.Err != nil {
		e.Status = mirrordoc.ExtractionFailed
		e.Stage = mirrordoc.ErrorStage(r.Err)
		e.ErrorCode = mirrordoc.ErrorCode(r.Err)
		e.ErrorMessage = errorMessage(r.Err)
	} else {
		if !p.DryRun {
			e.OutputPath = r.OutputPath
		}
		e.Title = r.Document.Title
		e.URL = r.Document.URL
		e.ScrapeDate = r.Document.ScrapeDate
		e.BodyHash = computeHash(r.Document.Body)
	}

	return p.Extractions.CreateExtraction(ctx, e)
}

// errorMessage keeps the text of errors that carry no application message.
func errorMessage(err error) string {
	var appErr *mirrordoc.Error
	if !errors.As(err, &appErr) {
		var se *mirrordoc.StageError
		if errors.As(err, &se) {
			return se.Err.Error()
		}
		return err.Error()
	}
	return mirrordoc.ErrorMessage(err)
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
