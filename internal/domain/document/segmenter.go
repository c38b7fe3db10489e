// Package document holds the paragraph segmenter and the in-memory document
// store.  A Document's text is treated as immutable once stored; paragraphs
// are recomputed on demand and never cached across calls.
package document

import (
	"regexp"
	"strings"

	"github.com/veritaslex/arbilens/internal/domain/citation"
	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// MinParagraphChars is the default minimum trimmed length of a kept
// paragraph.
const MinParagraphChars = 20

// paragraphBreak matches one or more blank lines, where a blank line is a
// whitespace-only line.
var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Segmenter splits documents into analyzable paragraphs enriched with
// citations, matched concepts, and a word count.
type Segmenter struct {
	registry  *concept.Registry
	extractor *citation.Extractor
	minChars  int
}

// NewSegmenter constructs a Segmenter.  A nil extractor gets the default
// context radius; a non-positive minChars gets the default minimum length.
func NewSegmenter(registry *concept.Registry, extractor *citation.Extractor, minChars int) *Segmenter {
	if extractor == nil {
		extractor = citation.NewExtractor(citation.DefaultContextRadius)
	}
	if minChars <= 0 {
		minChars = MinParagraphChars
	}
	return &Segmenter{registry: registry, extractor: extractor, minChars: minChars}
}

// Segment splits text on blank-line boundaries and returns the kept
// paragraphs.  Candidates are trimmed; those shorter than the minimum length
// are dropped without renumbering, so Index reflects the pre-filter position
// and the returned indices are not necessarily contiguous.
func (s *Segmenter) Segment(text string) []analysis.Paragraph {
	blocks := paragraphBreak.Split(text, -1)

	out := make([]analysis.Paragraph, 0, len(blocks))
	for i, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if len(trimmed) < s.minChars {
			continue
		}
		out = append(out, analysis.Paragraph{
			Index:     i,
			Text:      trimmed,
			Citations: s.extractor.Extract(trimmed),
			Concepts:  s.registry.ConceptsIn(trimmed),
			WordCount: len(strings.Fields(trimmed)),
		})
	}
	return out
}

// CountBreaksBefore returns the number of blank-line paragraph breaks in
// text before byte offset pos.  The argument miner derives its 1-based
// paragraph numbers from this.
func CountBreaksBefore(text string, pos int) int {
	if pos > len(text) {
		pos = len(text)
	}
	if pos < 0 {
		pos = 0
	}
	return len(paragraphBreak.FindAllStringIndex(text[:pos], -1))
}
