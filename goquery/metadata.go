package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mirrordoc"
	"golang.org/x/net/html"
)

// ExtractTitle returns the flattened text of the document's <title>.
// Exactly one <title> element must exist.
func ExtractTitle(doc *goquery.Document) (string, error) {
	titles := doc.Find("title")
	switch n := titles.Length(); n {
	case 1:
		return titles.Text(), nil
	case 0:
		return "", mirrordoc.Errorf(mirrordoc.EMISSINGTITLE, "page has no <title> element")
	default:
		return "", mirrordoc.Errorf(mirrordoc.EMISSINGTITLE, "page has %d <title> elements, want exactly one", n)
	}
}

// ExtractProvenanceComment returns the trimmed text of the first comment,
// in document order, containing mirrordoc.ProvenanceMarker. Comments outside
// the <html> element are searched too.
//
// HTTrack sometimes writes the comment twice; the first one wins.
func ExtractProvenanceComment(doc *goquery.Document) (string, error) {
	for _, root := range doc.Nodes {
		if n := findComment(root, isProvenance); n != nil {
			return strings.TrimSpace(n.Data), nil
		}
	}
	return "", mirrordoc.Errorf(mirrordoc.EMISSINGPROVENANCE, "page has no %q comment", mirrordoc.ProvenanceMarker)
}

func isProvenance(n *html.Node) bool {
	return strings.Contains(n.Data, mirrordoc.ProvenanceMarker)
}

// findComment returns the first comment node under n, depth first, for
// which match returns true.
func findComment(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.CommentNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findComment(c, match); found != nil {
			return found
		}
	}
	return nil
}
