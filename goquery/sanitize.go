package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Elements removed together with their content. The parser reads iframe
// and noscript content as raw text, so it cannot serve as fallback.
const removedElements = "script, noscript, link, meta, applet, iframe, frame, frameset, input, button, select, textarea"

// Elements replaced by their content. Embedded objects keep their fallback
// markup; void ones (embed, param) simply disappear.
const unwrappedElements = "object, embed, param, layer, form, blink, marquee"

// Attributes whose value may carry a javascript: URL.
var urlAttributes = map[string]bool{
	"href":       true,
	"src":        true,
	"action":     true,
	"formaction": true,
	"background": true,
}

// SanitizeOptions configures a Sanitizer. Scripts, comments, links, frames
// and form controls are always removed.
type SanitizeOptions struct {
	// StripStyles removes <style> elements and style attributes.
	StripStyles bool
}

// DefaultSanitizeOptions returns the options used when none are given.
func DefaultSanitizeOptions() SanitizeOptions {
	return SanitizeOptions{StripStyles: true}
}

// Sanitizer removes non-content markup from an HTML subtree.
type Sanitizer struct {
	opts SanitizeOptions
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer(opts SanitizeOptions) *Sanitizer {
	return &Sanitizer{opts: opts}
}

// Sanitize returns a cleaned deep copy of sel; sel itself is not modified.
//
// After stripping, a newline is inserted directly after every <p> and <br>
// so the flattened text keeps visual line breaks. The newline is skipped
// when the following text already starts with one, which makes Sanitize
// idempotent on trees built from line-break-collapsed input.
func (s *Sanitizer) Sanitize(sel *goquery.Selection) *goquery.Selection {
	clean := sel.Clone()

	for _, n := range clean.Nodes {
		removeComments(n)
	}
	clean.Find(removedElements).Remove()
	if s.opts.StripStyles {
		clean.Find("style").Remove()
	}
	clean.Find(unwrappedElements).Each(func(_ int, el *goquery.Selection) {
		unwrap(el.Get(0))
	})
	for _, n := range clean.Nodes {
		cleanAttributes(n, s.opts.StripStyles)
	}
	clean.Find("p, br").Each(func(_ int, el *goquery.Selection) {
		appendLineBreak(el.Get(0))
	})

	return clean
}

func removeComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			removeComments(c)
		}
		c = next
	}
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}

// cleanAttributes drops event handlers, javascript: URLs and, if
// stripStyles is set, inline styles from n and its descendants.
func cleanAttributes(n *html.Node, stripStyles bool) {
	if n.Type == html.ElementNode && len(n.Attr) > 0 {
		kept := make([]html.Attribute, 0, len(n.Attr))
		for _, a := range n.Attr {
			key := strings.ToLower(a.Key)
			switch {
			case strings.HasPrefix(key, "on"):
				continue
			case stripStyles && key == "style":
				continue
			case urlAttributes[key] && isJavaScriptURL(a.Val):
				continue
			}
			kept = append(kept, a)
		}
		n.Attr = kept
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cleanAttributes(c, stripStyles)
	}
}

func isJavaScriptURL(v string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(v)), "javascript:")
}

// appendLineBreak puts a newline at the start of the text following n.
func appendLineBreak(n *html.Node) {
	if next := n.NextSibling; next != nil && next.Type == html.TextNode {
		if !strings.HasPrefix(next.Data, "\n") {
			next.Data = "\n" + next.Data
		}
		return
	}
	if n.Parent == nil {
		return
	}
	n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: "\n"}, n.NextSibling)
}
