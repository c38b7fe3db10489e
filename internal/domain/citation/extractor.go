// Package citation finds exhibit and article/section references in
// arbitration text spans.
//
// Two independent pattern scans run over the same text, exhibit first, then
// article, preserving every match's original offset.  Because the exhibit
// marker word is optional the exhibit pattern also captures ordinary
// capitalized tokens; that over-matching is a known property of the
// heuristic and is deliberately preserved rather than silently tightened —
// downstream set comparisons rely on it behaving identically on both sides
// of a document pair.  The two scans are not deduplicated against each
// other, so a token may be counted by both.
package citation

import (
	"regexp"

	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// DefaultContextRadius is the number of characters kept on each side of a
// match.
const DefaultContextRadius = 50

var (
	// exhibitPattern: optional case-insensitive marker word, then a
	// capitalized alphanumeric-with-hyphen token, e.g. "Exhibit C-12",
	// "Ex. R-4", or a bare "C-12".
	exhibitPattern = regexp.MustCompile(`(?:(?i:exhibit|exh\.|ex\.)\s+)?\b([A-Z][A-Za-z0-9-]+)\b`)

	// articlePattern: case-insensitive section marker, then one or more
	// dot-separated digit groups, e.g. "Article 25.1", "§ 12".
	articlePattern = regexp.MustCompile(`(?i)(?:article|section|clause|art\.|§)\s*(\d+(?:\.\d+)*)`)
)

// Extractor scans text spans for citations.  The zero value is not usable;
// construct with NewExtractor.
type Extractor struct {
	contextRadius int
}

// NewExtractor returns an Extractor keeping radius characters of context on
// each side of a match.  A non-positive radius falls back to the default.
func NewExtractor(radius int) *Extractor {
	if radius <= 0 {
		radius = DefaultContextRadius
	}
	return &Extractor{contextRadius: radius}
}

// Extract returns every citation found in text: all exhibit matches in scan
// order, then all article matches in scan order.  Extraction is a total,
// deterministic function of its input — re-running yields identical results.
func (e *Extractor) Extract(text string) []analysis.Citation {
	out := make([]analysis.Citation, 0)

	for _, m := range exhibitPattern.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, analysis.Citation{
			Kind:        analysis.CitationExhibit,
			ID:          text[m[2]:m[3]],
			MatchedText: text[m[0]:m[1]],
			Position:    m[0],
			Context:     e.context(text, m[0], m[1]),
		})
	}

	for _, m := range articlePattern.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, analysis.Citation{
			Kind:        analysis.CitationArticle,
			ID:          text[m[2]:m[3]],
			MatchedText: text[m[0]:m[1]],
			Position:    m[0],
			Context:     e.context(text, m[0], m[1]),
		})
	}

	return out
}

// context returns the text surrounding [start,end), clipped to bounds.
func (e *Extractor) context(text string, start, end int) string {
	lo := start - e.contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + e.contextRadius
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}

// Extract runs a default-radius extraction.  Convenience for callers that
// do not carry an Extractor.
func Extract(text string) []analysis.Citation {
	return NewExtractor(DefaultContextRadius).Extract(text)
}

// IDSet returns the set of citation ids, ignoring kind.  Used by the
// comparator's citation-divergence flag.
func IDSet(citations []analysis.Citation) map[string]struct{} {
	set := make(map[string]struct{}, len(citations))
	for _, c := range citations {
		set[c.ID] = struct{}{}
	}
	return set
}
