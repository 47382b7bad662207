package mirrordoc

import (
	"context"
	"time"
)

// ExtractionStatus is the outcome of one pipeline run.
type ExtractionStatus string

// ExtractionStatus values.
const (
	ExtractionOK     ExtractionStatus = "ok"
	ExtractionFailed ExtractionStatus = "failed"
)

// Extraction records the outcome of processing one page. It is a run log
// entry, not a stored copy of the document.
type Extraction struct {
	ID           string           `json:"id"`
	InputPath    string           `json:"inputPath"`
	OutputPath   string           `json:"outputPath"`
	Status       ExtractionStatus `json:"status"`
	Stage        Stage            `json:"stage"`
	ErrorCode    string           `json:"errorCode"`
	ErrorMessage string           `json:"errorMessage"`
	Title        string           `json:"title"`
	URL          string           `json:"url"`
	ScrapeDate   string           `json:"scrapeDate"`
	BodyHash     string           `json:"bodyHash"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.InputPath == "" {
		return Errorf(EINVALID, "extraction input path required")
	}
	switch e.Status {
	case ExtractionOK, ExtractionFailed:
	default:
		return Errorf(EINVALID, "invalid extraction status %q", e.Status)
	}
	return nil
}

// ExtractionService represents a service for recording pipeline runs.
type ExtractionService interface {
	// CreateExtraction records a new extraction.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter, newest
	// first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	Status    *ExtractionStatus `json:"status"`
	InputPath *string           `json:"inputPath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
