package mirrordoc

// Parser turns page text into a queryable Page.
type Parser interface {
	// Parse normalizes line breaks and parses rawHTML leniently.
	// Malformed markup is recovered from; only input that cannot be read
	// as HTML at all fails with EPARSE.
	Parse(rawHTML string) (Page, error)
}

// Page is a parsed mirrored page. It is owned by a single extraction and
// must not be shared.
type Page interface {
	// Title returns the flattened text of the page's only <title> element.
	// Returns EMISSINGTITLE if there is not exactly one.
	Title() (string, error)

	// ProvenanceComment returns the text of the first comment, in document
	// order, that carries the HTTrack signature. Later ones are ignored.
	// Returns EMISSINGPROVENANCE if there is none.
	ProvenanceComment() (string, error)

	// Body returns the sanitized plain text of the <body> element, with a
	// newline after every paragraph and line break.
	Body() (string, error)
}
