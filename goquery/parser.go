// Package goquery implements page parsing, metadata extraction and body
// sanitization for mirrored HTML using goquery and golang.org/x/net/html.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mirrordoc"
)

// Ensure Parser implements mirrordoc.Parser at compile time.
var _ mirrordoc.Parser = (*Parser)(nil)

// Ensure Page implements mirrordoc.Page at compile time.
var _ mirrordoc.Page = (*Page)(nil)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// CollapseLineBreaks replaces every run of CR and LF characters with a
// single space, so that comments wrapped over several lines match a
// single-line pattern.
func CollapseLineBreaks(s string) string {
	return lineBreaks.ReplaceAllString(s, " ")
}

// Parser parses mirrored pages with the error-tolerant HTML5 parser.
type Parser struct {
	sanitizer *Sanitizer
}

// NewParser creates a new Parser whose pages sanitize their body with opts.
func NewParser(opts SanitizeOptions) *Parser {
	return &Parser{sanitizer: NewSanitizer(opts)}
}

// Parse collapses line breaks in rawHTML and parses the result.
func (p *Parser) Parse(rawHTML string) (mirrordoc.Page, error) {
	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return &Page{doc: doc, sanitizer: p.sanitizer}, nil
}

// Parse collapses line breaks in rawHTML and returns the parsed document.
// Malformed markup is repaired by the parser; blank input is rejected.
func Parse(rawHTML string) (*goquery.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mirrordoc.Errorf(mirrordoc.EPARSE, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(CollapseLineBreaks(rawHTML)))
	if err != nil {
		return nil, mirrordoc.Errorf(mirrordoc.EPARSE, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// Page is a parsed mirrored page.
type Page struct {
	doc       *goquery.Document
	sanitizer *Sanitizer
}

// Title returns the text of the page's only <title> element.
func (p *Page) Title() (string, error) {
	return ExtractTitle(p.doc)
}

// ProvenanceComment returns the first HTTrack provenance comment.
func (p *Page) ProvenanceComment() (string, error) {
	return ExtractProvenanceComment(p.doc)
}

// Body returns the sanitized text of the page's <body>. The parsed tree is
// left untouched.
func (p *Page) Body() (string, error) {
	body := p.doc.Find("body")
	if body.Length() != 1 {
		// Frameset documents have no body.
		return "", mirrordoc.Errorf(mirrordoc.EPARSE, "page has %d <body> elements, want exactly one", body.Length())
	}
	return p.sanitizer.Sanitize(body).Text(), nil
}
