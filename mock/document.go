package mock

import (
	"context"

	"github.com/fwojciec/mirrordoc"
)

var _ mirrordoc.Encoder = (*Encoder)(nil)

// Encoder is a mock implementation of mirrordoc.Encoder.
type Encoder struct {
	EncodeFn func(doc *mirrordoc.Document) ([]byte, error)
}

func (e *Encoder) Encode(doc *mirrordoc.Document) ([]byte, error) {
	return e.EncodeFn(doc)
}

var _ mirrordoc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of mirrordoc.DocumentWriter.
type DocumentWriter struct {
	WriteFileFn func(ctx context.Context, path string, data []byte) error
}

func (w *DocumentWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	return w.WriteFileFn(ctx, path, data)
}
