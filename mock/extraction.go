package mock

import (
	"context"

	"github.com/fwojciec/mirrordoc"
)

var _ mirrordoc.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of mirrordoc.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, e *mirrordoc.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*mirrordoc.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter mirrordoc.ExtractionFilter) ([]*mirrordoc.Extraction, error)
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, e *mirrordoc.Extraction) error {
	return s.CreateExtractionFn(ctx, e)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*mirrordoc.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter mirrordoc.ExtractionFilter) ([]*mirrordoc.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}
