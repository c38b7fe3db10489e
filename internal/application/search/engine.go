// Package search implements concept-expanding lexical search over a set of
// plain-text documents.
//
// Scoring is an unbounded additive heuristic: callers must not assume an
// upper bound of 1.  Each expanded term found in a paragraph contributes,
// so a paragraph matching many variations accumulates proportionally.
package search

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/internal/domain/document"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/logging"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/prometheus"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// Scoring weights.  Fixed, not configurable: thresholds tune relevance,
// the weights define it.
const (
	termWeight     = 0.2
	citationBonus  = 0.1
	conceptBonus   = 0.2
	contextRadius  = 100
	scorePrecision = 1000 // round scores to 3 decimals
)

// Engine scores every paragraph of every supplied document against a
// concept-expanded query.
type Engine struct {
	registry  *concept.Registry
	segmenter *document.Segmenter
	logger    logging.Logger
	metrics   *prometheus.Metrics
}

// NewEngine constructs a search Engine.  logger and metrics may be nil.
func NewEngine(registry *concept.Registry, segmenter *document.Segmenter, logger logging.Logger, metrics *prometheus.Metrics) *Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Engine{
		registry:  registry,
		segmenter: segmenter,
		logger:    logger.Named("search"),
		metrics:   metrics,
	}
}

// Search scores every paragraph of every document in documents and returns
// the hits with score ≥ threshold, sorted descending by score.  Ties keep
// encounter order: documents are iterated in sorted-id order, paragraphs in
// document order.  An empty document map yields an empty result.
func (e *Engine) Search(query string, documents map[string]string, threshold float64) []analysis.SearchResult {
	start := time.Now()

	terms := e.expandTerms(query)
	queryConcepts := e.queryConcepts(query)
	queryWords := tokenSet(query)

	ids := make([]string, 0, len(documents))
	for id := range documents {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := make([]analysis.SearchResult, 0)
	for _, id := range ids {
		text := documents[id]
		for _, para := range e.segmenter.Segment(text) {
			score := e.score(para, terms, queryWords, queryConcepts)
			if score < threshold {
				continue
			}
			results = append(results, analysis.SearchResult{
				DocID:         id,
				Paragraph:     para,
				Score:         score,
				ContextWindow: contextWindow(text, para.Text),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if e.metrics != nil {
		e.metrics.SearchesTotal.Inc()
		e.metrics.SearchDuration.Observe(time.Since(start).Seconds())
		e.metrics.SearchResultCount.Observe(float64(len(results)))
	}
	e.logger.Debug("search finished",
		logging.String("query", query),
		logging.Float64("threshold", threshold),
		logging.Int("documents", len(documents)),
		logging.Int("results", len(results)))

	return results
}

// expandTerms builds the expanded term set: the lowercased query as a single
// phrase term, plus the name and all variations of every concept that
// appears (name or variation) as a substring of the query.
func (e *Engine) expandTerms(query string) map[string]struct{} {
	lower := strings.ToLower(query)
	terms := map[string]struct{}{lower: {}}

	for _, c := range e.registry.List() {
		if !conceptInQuery(c, lower) {
			continue
		}
		terms[strings.ToLower(c.Name)] = struct{}{}
		for _, v := range c.Variations {
			terms[strings.ToLower(v)] = struct{}{}
		}
	}
	return terms
}

// queryConcepts returns the concepts whose *name* is a substring of the
// query; only these drive the concept-intersection bonus.
func (e *Engine) queryConcepts(query string) map[string]struct{} {
	lower := strings.ToLower(query)
	out := make(map[string]struct{})
	for _, c := range e.registry.List() {
		if strings.Contains(lower, strings.ToLower(c.Name)) {
			out[c.Name] = struct{}{}
		}
	}
	return out
}

func conceptInQuery(c analysis.Concept, lowerQuery string) bool {
	if strings.Contains(lowerQuery, strings.ToLower(c.Name)) {
		return true
	}
	for _, v := range c.Variations {
		if strings.Contains(lowerQuery, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// score computes the additive relevance of one paragraph.
func (e *Engine) score(para analysis.Paragraph, terms, queryWords, queryConcepts map[string]struct{}) float64 {
	paraLower := strings.ToLower(para.Text)

	score := 0.0
	for term := range terms {
		if strings.Contains(paraLower, term) {
			score += termWeight
		}
	}

	score += jaccard(queryWords, tokenSet(para.Text))

	if len(para.Citations) > 0 {
		score += citationBonus
	}

	for _, name := range para.Concepts {
		if _, ok := queryConcepts[name]; ok {
			score += conceptBonus
			break
		}
	}

	return math.Round(score*scorePrecision) / scorePrecision
}

// tokenSet lowercases and whitespace-tokenizes s into a set.
func tokenSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		out[w] = struct{}{}
	}
	return out
}

// jaccard returns |a∩b| / |a∪b|, or 0 when either set is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// contextWindow locates the paragraph's trimmed text in the raw document and
// returns 100 characters of surrounding context on each side, clipped to
// bounds.  When the paragraph text occurs more than once the first
// occurrence is used — an accepted limitation.
func contextWindow(docText, paraText string) string {
	idx := strings.Index(docText, paraText)
	if idx < 0 {
		return paraText
	}
	lo := idx - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := idx + len(paraText) + contextRadius
	if hi > len(docText) {
		hi = len(docText)
	}
	return docText[lo:hi]
}
