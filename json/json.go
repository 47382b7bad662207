// Package json encodes extracted documents as indented JSON.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/fwojciec/mirrordoc"
)

// Ensure Encoder implements mirrordoc.Encoder at compile time.
var _ mirrordoc.Encoder = (*Encoder)(nil)

// Indent is the indentation used for every nesting level.
const Indent = "  "

// Encoder writes documents as pretty-printed JSON with keys in field order:
// title, url, scrape_date, body. HTML characters are not escaped and the
// output ends with a single newline.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode validates doc and returns its JSON encoding.
func (e *Encoder) Encode(doc *mirrordoc.Document) ([]byte, error) {
	if doc == nil {
		return nil, mirrordoc.Errorf(mirrordoc.EINVALID, "document required")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, mirrordoc.Errorf(mirrordoc.EINTERNAL, "failed to encode document: %v", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a document previously written by Encoder. Unknown keys are
// rejected.
func Decode(data []byte) (*mirrordoc.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc mirrordoc.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, mirrordoc.Errorf(mirrordoc.EINVALID, "failed to decode document: %v", err)
	}
	return &doc, nil
}
