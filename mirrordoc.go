// Package mirrordoc turns pages saved by the HTTrack website copier into
// canonical JSON documents (title, source URL, capture date and plain body
// text) ready for a search index.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, fs/).
package mirrordoc
