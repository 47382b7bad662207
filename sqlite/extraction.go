package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/mirrordoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ mirrordoc.ExtractionService = (*ExtractionService)(nil)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const extractionColumns = `id, input_path, output_path, status, stage, error_code, error_message,
	title, url, scrape_date, body_hash, created_at`

// ExtractionService implements mirrordoc.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// CreateExtraction records a new extraction, assigning its ID and
// creation time.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *mirrordoc.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}

	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (`+extractionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.InputPath, e.OutputPath, string(e.Status), string(e.Stage), e.ErrorCode, e.ErrorMessage,
		e.Title, e.URL, e.ScrapeDate, e.BodyHash, e.CreatedAt.Format(timeLayout))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*mirrordoc.Extraction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+extractionColumns+` FROM extractions WHERE id = ?`, id)
	e, err := scanExtraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mirrordoc.Errorf(mirrordoc.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter mirrordoc.ExtractionFilter) ([]*mirrordoc.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + extractionColumns + " FROM extractions WHERE 1=1")

	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.InputPath != nil {
		query.WriteString(" AND input_path = ?")
		args = append(args, *filter.InputPath)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPage(&query, &args, filter)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*mirrordoc.Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row scanner) (*mirrordoc.Extraction, error) {
	var e mirrordoc.Extraction
	var createdAt string

	if err := row.Scan(&e.ID, &e.InputPath, &e.OutputPath, &e.Status, &e.Stage, &e.ErrorCode,
		&e.ErrorMessage, &e.Title, &e.URL, &e.ScrapeDate, &e.BodyHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	e.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &e, nil
}

// appendPage adds the filter's LIMIT and OFFSET. SQLite only accepts an
// OFFSET after a LIMIT, so an offset alone gets an unbounded LIMIT -1.
func appendPage(query *strings.Builder, args *[]any, filter mirrordoc.ExtractionFilter) {
	switch {
	case filter.Limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, filter.Limit)
	case filter.Offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, filter.Offset)
	}
}
