package goquery_test

import (
	"testing"

	"github.com/fwojciec/mirrordoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	body := func(t *testing.T, inner string) string {
		t.Helper()
		return "<html><head><title>T</title></head><body>" + inner + "</body></html>"
	}

	t.Run("removes scripts, styles and comments", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(body(t, `<script>var x = 1;</script><style>p { color: red }</style><!-- note --><p>Keep</p><noscript><p>Enable JS</p></noscript>`))
		require.NoError(t, err)

		clean := goquery.NewSanitizer(goquery.DefaultSanitizeOptions()).Sanitize(doc.Find("body"))

		assert.Equal(t, "Keep\n", clean.Text())
		html, err := clean.Html()
		require.NoError(t, err)
		assert.NotContains(t, html, "<script")
		assert.NotContains(t, html, "<style")
		assert.NotContains(t, html, "<!--")
		assert.NotContains(t, html, "noscript")
	})

	t.Run("keeps styles when not stripping them", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(body(t, `<style>p{}</style><p style="color:red">Keep</p><script>x()</script>`))
		require.NoError(t, err)

		clean := goquery.NewSanitizer(goquery.SanitizeOptions{StripStyles: false}).Sanitize(doc.Find("body"))

		assert.Equal(t, "p{}Keep\n", clean.Text())
		html, err := clean.Html()
		require.NoError(t, err)
		assert.Contains(t, html, `style="color:red"`)
		assert.NotContains(t, html, "<script")
	})

	t.Run("removes event handlers, inline styles and javascript URLs", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(body(t, `<p onclick="steal()" style="color:red" class="lead">Hi</p><a href="javascript:alert(1)">bad</a><a href="/ok" onMouseOver="x()">ok</a>`))
		require.NoError(t, err)

		clean := goquery.NewSanitizer(goquery.DefaultSanitizeOptions()).Sanitize(doc.Find("body"))

		html, err := clean.Html()
		require.NoError(t, err)
		assert.Contains(t, html, `class="lead"`)
		assert.Contains(t, html, `href="/ok"`)
		assert.NotContains(t, html, "onclick")
		assert.NotContains(t, html, "onmouseover")
		assert.NotContains(t, html, "style=")
		assert.NotContains(t, html, "javascript:")
		assert.Equal(t, "Hi\nbadok", clean.Text())
	})

	t.Run("removes applets, frames and form controls", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(body(t, `<object data="a.swf"><p>fallback</p></object><embed src="b.swf"><iframe src="c.html">frame</iframe><applet code="A.class">applet text</applet><form action="/search"><p>Search</p><input name="q"><button>Go</button><select><option>one</option></select><textarea>draft</textarea></form>`))
		require.NoError(t, err)

		clean := goquery.NewSanitizer(goquery.DefaultSanitizeOptions()).Sanitize(doc.Find("body"))

		assert.Equal(t, "fallback\nSearch\n", clean.Text())
		html, err := clean.Html()
		require.NoError(t, err)
		assert.NotContains(t, html, "<form")
		assert.NotContains(t, html, "<object")
		assert.NotContains(t, html, "<embed")
		assert.NotContains(t, html, "<iframe")
		assert.NotContains(t, html, "<applet")
		assert.Contains(t, html, "<p>Search</p>")
	})

	t.Run("keeps fallback content of embedded objects", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(body(t, `<object data="movie.swf"><param name="quality" value="high">fallback text</object><embed src="x.swf">end`))
		require.NoError(t, err)

		clean := goquery.NewSanitizer(goquery.DefaultSanitizeOptions()).Sanitize(doc.Find("body"))

		html, err := clean.Html()
		require.NoError(t, err)
		assert.Equal(t, "fallback textend", html)
	})

	t.Run("unwraps blink and marquee", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(body(t, `<marquee>Sale <blink>now</blink></marquee>`))
		require.NoError(t, err)

		clean := goquery.NewSanitizer(goquery.DefaultSanitizeOptions()).Sanitize(doc.Find("body"))

		html, err := clean.Html()
		require.NoError(t, err)
		assert.Equal(t, "Sale now", html)
	})

	t.Run("adds newline after paragraphs and line breaks", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			inner string
			want  string
		}{
			{inner: `<p>Hello<br>World</p>`, want: "Hello\nWorld\n"},
			{inner: `<p>One</p><p>Two</p>`, want: "One\nTwo\n"},
			{inner: `a<br>b<br/>c`, want: "a\nb\nc"},
			{inner: `<p>One</p>Tail`, want: "One\nTail"},
			{inner: `<div><p>Nested</p></div>`, want: "Nested\n"},
			{inner: `<p>One</p> <p>Two</p>`, want: "One\n Two\n"},
			{inner: `<br><br>`, want: "\n\n"},
			// Text that already starts with a newline gets no second one.
			{inner: `<p>a</p>&#10;b<br>&#10;c`, want: "a\nb\nc"},
		}

		for _, tt := range tests {
			doc, err := goquery.Parse(body(t, tt.inner))
			require.NoError(t, err)

			clean := goquery.NewSanitizer(goquery.DefaultSanitizeOptions()).Sanitize(doc.Find("body"))

			assert.Equal(t, tt.want, clean.Text(), tt.inner)
		}
	})

	t.Run("does not modify the original tree", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(body(t, `<p style="x">Keep</p><script>x()</script><!-- c -->`))
		require.NoError(t, err)
		before, err := doc.Find("body").Html()
		require.NoError(t, err)

		_ = goquery.NewSanitizer(goquery.DefaultSanitizeOptions()).Sanitize(doc.Find("body"))

		after, err := doc.Find("body").Html()
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Equal(t, 1, doc.Find("body script").Length())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(body(t, `<div onclick="x()"><p style="c">One<br>Two</p><script>s()</script><!-- c --><style>p{}</style><form><p>Three</p><input></form></div>Tail<br>`))
		require.NoError(t, err)
		s := goquery.NewSanitizer(goquery.DefaultSanitizeOptions())

		once := s.Sanitize(doc.Find("body"))
		twice := s.Sanitize(once)

		onceHTML, err := once.Html()
		require.NoError(t, err)
		twiceHTML, err := twice.Html()
		require.NoError(t, err)
		assert.Equal(t, onceHTML, twiceHTML)
		assert.Equal(t, once.Text(), twice.Text())
		assert.Equal(t, "One\nTwo\nThree\nTail\n", twice.Text())
	})
}
