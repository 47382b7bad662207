package mock

import "github.com/fwojciec/mirrordoc"

var _ mirrordoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of mirrordoc.Parser.
type Parser struct {
	ParseFn func(rawHTML string) (mirrordoc.Page, error)
}

func (p *Parser) Parse(rawHTML string) (mirrordoc.Page, error) {
	return p.ParseFn(rawHTML)
}

var _ mirrordoc.Page = (*Page)(nil)

// Page is a mock implementation of mirrordoc.Page.
type Page struct {
	TitleFn             func() (string, error)
	ProvenanceCommentFn func() (string, error)
	BodyFn              func() (string, error)
}

func (p *Page) Title() (string, error) {
	return p.TitleFn()
}

func (p *Page) ProvenanceComment() (string, error) {
	return p.ProvenanceCommentFn()
}

func (p *Page) Body() (string, error) {
	return p.BodyFn()
}
