// Package fs reads mirrored pages from and writes documents to the local
// filesystem.
package fs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/mirrordoc"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Ensure Loader implements mirrordoc.Loader at compile time.
var _ mirrordoc.Loader = (*Loader)(nil)

// DefaultEncoding is the encoding HTTrack writes pages in.
const DefaultEncoding = "utf-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads whole pages from disk and decodes them with a fixed encoding.
type Loader struct {
	encoding string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEncoding sets the encoding label (e.g. "utf-8", "windows-1252")
// used to decode pages. Labels follow the WHATWG Encoding Standard.
func WithEncoding(label string) LoaderOption {
	return func(l *Loader) {
		l.encoding = label
	}
}

// NewLoader creates a new Loader. Pages are decoded as UTF-8 unless
// WithEncoding is given.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the file at path and decodes it. Returns ENOTFOUND for a
// missing file, EINTERNAL for other read failures and EDECODE only for
// bytes invalid in the configured encoding.
func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", mirrordoc.Errorf(mirrordoc.ENOTFOUND, "input file %q not found", path)
	} else if err != nil {
		return "", mirrordoc.Errorf(mirrordoc.EINTERNAL, "failed to read %q: %v", path, err)
	}

	return Decode(data, l.encoding)
}

// LookupEncoding resolves an encoding label. Returns EINVALID for labels
// the WHATWG Encoding Standard does not define.
func LookupEncoding(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, mirrordoc.Errorf(mirrordoc.EINVALID, "unknown encoding %q", label)
	}
	return enc, nil
}

// Decode converts data to a string using the encoding named by label.
// UTF-8 input is validated strictly; a leading byte order mark is dropped.
func Decode(data []byte, label string) (string, error) {
	enc, err := LookupEncoding(label)
	if err != nil {
		return "", err
	}

	if name, _ := htmlindex.Name(enc); name == DefaultEncoding {
		data = bytes.TrimPrefix(data, utf8BOM)
		if i := invalidUTF8Offset(data); i >= 0 {
			return "", mirrordoc.Errorf(mirrordoc.EDECODE, "invalid utf-8 at byte %d", i)
		}
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", mirrordoc.Errorf(mirrordoc.EDECODE, "failed to decode %s: %v", label, err)
	}
	return string(decoded), nil
}

// invalidUTF8Offset returns the offset of the first invalid UTF-8 sequence
// in data, or -1 if data is valid.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
