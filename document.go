package mirrordoc

import "context"

// Document is the canonical record produced for one mirrored page.
// Field order is significant: it is the key order of the encoded JSON.
type Document struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	ScrapeDate string `json:"scrape_date"`
	Body       string `json:"body"`
}

// Validate returns an error if the document contains invalid fields.
// Title and body may legitimately be empty.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.ScrapeDate == "" {
		return Errorf(EINVALID, "document scrape date required")
	}
	return nil
}

// OutputPath returns the path a document extracted from inputPath is
// written to.
func OutputPath(inputPath string) string {
	return inputPath + ".json"
}

// Loader reads a captured page and decodes it to text.
type Loader interface {
	// Load returns the full decoded content of the page at path.
	// Returns EDECODE if the bytes are not valid in the configured encoding,
	// ENOTFOUND if the file does not exist and EINTERNAL if it cannot be read.
	Load(ctx context.Context, path string) (string, error)
}

// Encoder serializes documents.
type Encoder interface {
	// Encode returns the serialized document. Identical documents always
	// encode to identical bytes.
	Encode(doc *Document) ([]byte, error)
}

// DocumentWriter persists encoded documents.
type DocumentWriter interface {
	// WriteFile replaces the file at path with data. Readers never observe
	// a partially written file. Returns EWRITE on failure.
	WriteFile(ctx context.Context, path string, data []byte) error
}
