package mirrordoc

import (
	"regexp"
	"time"
)

// ProvenanceMarker identifies the comment HTTrack leaves in every page it
// mirrors.
const ProvenanceMarker = "HTTrack Website Copier"

// Provenance is the origin of a mirrored page.
type Provenance struct {
	SourceURL  string
	CapturedAt string // YYYY-MM-DD
}

// provenancePattern matches HTTrack's comment, with or without the comment
// delimiters, e.g.
//
//	Mirrored from example.com/page by HTTrack Website Copier/3.x [XR&CO'2014], Fri, 10 Apr 2015 11:18:21 GMT
var provenancePattern = regexp.MustCompile(
	`^(?:<!--\s*)?Mirrored from (.+) by HTTrack Website Copier/\S+ \[[^\]]*\], (.+?)\s*(?:-->)?$`)

// ParseProvenance extracts the source URL and raw capture datetime from the
// text of a provenance comment. HTTrack drops the URL scheme, so "http://" is
// always prepended; pages mirrored over https are recorded as http.
func ParseProvenance(comment string) (url, rawDatetime string, err error) {
	m := provenancePattern.FindStringSubmatch(comment)
	if m == nil {
		return "", "", Errorf(EPROVENANCEFORMAT, "unrecognized provenance comment %q", comment)
	}
	return "http://" + m[1], m[2], nil
}

const provenanceDatetimeLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// time.Parse tolerates fractional seconds and lower-case names that HTTrack
// never writes; this rejects them up front.
var provenanceDatetimePattern = regexp.MustCompile(
	`^[A-Z][a-z]{2}, \d{2} [A-Z][a-z]{2} \d{4} \d{2}:\d{2}:\d{2} GMT$`)

// NormalizeDatetime converts an HTTrack timestamp such as
// "Fri, 10 Apr 2015 11:18:21 GMT" to its ISO-8601 date, "2015-04-10".
func NormalizeDatetime(raw string) (string, error) {
	if !provenanceDatetimePattern.MatchString(raw) {
		return "", Errorf(EDATETIMEFORMAT, "unrecognized datetime %q", raw)
	}
	t, err := time.Parse(provenanceDatetimeLayout, raw)
	if err != nil {
		return "", Errorf(EDATETIMEFORMAT, "unrecognized datetime %q: %v", raw, err)
	}
	return t.Format(time.DateOnly), nil
}

// NewProvenance parses a provenance comment into its URL and capture date.
func NewProvenance(comment string) (*Provenance, error) {
	url, raw, err := ParseProvenance(comment)
	if err != nil {
		return nil, err
	}
	date, err := NormalizeDatetime(raw)
	if err != nil {
		return nil, err
	}
	return &Provenance{SourceURL: url, CapturedAt: date}, nil
}
