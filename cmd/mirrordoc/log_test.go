package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/mirrordoc"
	main "github.com/fwojciec/mirrordoc/cmd/mirrordoc"
	"github.com/fwojciec/mirrordoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists extractions with outcome", func(t *testing.T) {
		t.Parallel()

		var gotFilter mirrordoc.ExtractionFilter
		extractions := &mock.ExtractionService{
			FindExtractionsFn: func(_ context.Context, filter mirrordoc.ExtractionFilter) ([]*mirrordoc.Extraction, error) {
				gotFilter = filter
				return []*mirrordoc.Extraction{
					{
						ID:         "ext-123",
						InputPath:  "site/index.html",
						Status:     mirrordoc.ExtractionOK,
						URL:        "http://example.com/",
						ScrapeDate: "2015-04-10",
						CreatedAt:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						InputPath:    "site/broken.html",
						Status:       mirrordoc.ExtractionFailed,
						Stage:        mirrordoc.StageMetadata,
						ErrorCode:    mirrordoc.EMISSINGTITLE,
						ErrorMessage: "page has no <title> element",
						CreatedAt:    time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractions: extractions,
		}

		err := (&main.LogCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 20, gotFilter.Limit)
		assert.Nil(t, gotFilter.Status)
		output := stdout.String()
		assert.Contains(t, output, "ext-123  ")
		assert.Contains(t, output, "ok      site/index.html  http://example.com/  2015-04-10")
		assert.Contains(t, output, "failed  site/broken.html  metadata/missing_title: page has no <title> element")
	})

	t.Run("passes status and path filters", func(t *testing.T) {
		t.Parallel()

		var gotFilter mirrordoc.ExtractionFilter
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Extractions: &mock.ExtractionService{
				FindExtractionsFn: func(_ context.Context, filter mirrordoc.ExtractionFilter) ([]*mirrordoc.Extraction, error) {
					gotFilter = filter
					return nil, nil
				},
			},
		}

		err := (&main.LogCmd{Status: "failed", Path: "a.html"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, mirrordoc.ExtractionFailed, *gotFilter.Status)
		require.NotNil(t, gotFilter.InputPath)
		assert.Equal(t, "a.html", *gotFilter.InputPath)
	})

	t.Run("shows a single extraction by ID", func(t *testing.T) {
		t.Parallel()

		var gotID string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Extractions: &mock.ExtractionService{
				FindExtractionByIDFn: func(_ context.Context, id string) (*mirrordoc.Extraction, error) {
					gotID = id
					return &mirrordoc.Extraction{
						ID:         id,
						InputPath:  "site/index.html",
						OutputPath: "site/index.html.json",
						Status:     mirrordoc.ExtractionOK,
						Title:      "Example",
						URL:        "http://example.com/",
						ScrapeDate: "2015-04-10",
						BodyHash:   "0123456789abcdef",
						CreatedAt:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					}, nil
				},
			},
		}

		err := (&main.LogCmd{ID: "ext-123", Limit: 20}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "ext-123", gotID)
		output := stdout.String()
		assert.Contains(t, output, "id:          ext-123\n")
		assert.Contains(t, output, "output:      site/index.html.json\n")
		assert.Contains(t, output, "url:         http://example.com/\n")
		assert.Contains(t, output, "body hash:   0123456789abcdef\n")
		assert.NotContains(t, output, "stage:")
	})

	t.Run("shows failure details of a single extraction", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Extractions: &mock.ExtractionService{
				FindExtractionByIDFn: func(_ context.Context, id string) (*mirrordoc.Extraction, error) {
					return &mirrordoc.Extraction{
						ID:           id,
						InputPath:    "site/broken.html",
						Status:       mirrordoc.ExtractionFailed,
						Stage:        mirrordoc.StageMetadata,
						ErrorCode:    mirrordoc.EMISSINGTITLE,
						ErrorMessage: "page has no <title> element",
					}, nil
				},
			},
		}

		err := (&main.LogCmd{ID: "ext-456"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "stage:       metadata\n")
		assert.Contains(t, output, "code:        missing_title\n")
		assert.Contains(t, output, "message:     page has no <title> element\n")
		assert.NotContains(t, output, "url:")
	})

	t.Run("reports unknown extraction ID", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Extractions: &mock.ExtractionService{
				FindExtractionByIDFn: func(context.Context, string) (*mirrordoc.Extraction, error) {
					return nil, mirrordoc.Errorf(mirrordoc.ENOTFOUND, "extraction not found")
				},
			},
		}

		err := (&main.LogCmd{ID: "missing"}).Run(deps)

		assert.Equal(t, mirrordoc.ENOTFOUND, mirrordoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "extraction not found")
	})

	t.Run("shows message when nothing is recorded", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Extractions: &mock.ExtractionService{
				FindExtractionsFn: func(context.Context, mirrordoc.ExtractionFilter) ([]*mirrordoc.Extraction, error) {
					return nil, nil
				},
			},
		}

		err := (&main.LogCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No extractions recorded.")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      &bytes.Buffer{},
			Stderr:      stderr,
			Extractions: &mock.ExtractionService{},
		}

		err := (&main.LogCmd{Status: "pending"}).Run(deps)

		assert.Equal(t, mirrordoc.EINVALID, mirrordoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid status")
	})

	t.Run("fails without an extraction log", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.LogCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--db")
	})

	t.Run("returns service errors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Extractions: &mock.ExtractionService{
				FindExtractionsFn: func(context.Context, mirrordoc.ExtractionFilter) ([]*mirrordoc.Extraction, error) {
					return nil, errors.New("disk I/O error")
				},
			},
		}

		err := (&main.LogCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
