// Package comparison pairs paragraphs across two documents, measures their
// textual similarity, and classifies whether a difference is substantial —
// a divergence in citations, concepts, numeric content, or negation, as
// opposed to purely stylistic rewording.
package comparison

import (
	"regexp"
	"sort"
	"time"

	"github.com/veritaslex/arbilens/internal/domain/citation"
	"github.com/veritaslex/arbilens/internal/domain/document"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/logging"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/prometheus"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// DefaultPairingThreshold is the minimum similarity ratio before two
// paragraphs are considered related enough to diff in detail.
const DefaultPairingThreshold = 0.5

var (
	// numberPattern captures integers, decimals, and percentages.
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?%?`)

	// negationPattern counts negation words.  Counts, not sets: swapping
	// one negation word for another in equal number is not flagged — a
	// deliberately coarse heuristic.
	negationPattern = regexp.MustCompile(`(?i)\b(?:not|never|no|cannot)\b`)
)

// Comparator runs all-pairs paragraph comparison over a document store.
type Comparator struct {
	store            *document.Store
	segmenter        *document.Segmenter
	logger           logging.Logger
	metrics          *prometheus.Metrics
	pairingThreshold float64
}

// NewComparator constructs a Comparator.  A non-positive threshold falls
// back to the default; logger and metrics may be nil.
func NewComparator(store *document.Store, segmenter *document.Segmenter, threshold float64, logger logging.Logger, metrics *prometheus.Metrics) *Comparator {
	if threshold <= 0 {
		threshold = DefaultPairingThreshold
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Comparator{
		store:            store,
		segmenter:        segmenter,
		logger:           logger.Named("comparison"),
		metrics:          metrics,
		pairingThreshold: threshold,
	}
}

// Compare pairs every paragraph of doc1 with every paragraph of doc2 (full
// cross product, not an alignment — one paragraph may appear in several
// records), keeps pairs whose similarity exceeds the pairing threshold, and
// returns records sorted ascending by similarity, most-different first.
//
// An unknown document id yields an empty result, not an error.  When
// focusOnSubstance is true, records with no substantive divergence are
// dropped.
func (c *Comparator) Compare(doc1ID, doc2ID string, focusOnSubstance bool) []analysis.ComparisonRecord {
	start := time.Now()

	doc1, ok1 := c.store.Get(doc1ID)
	doc2, ok2 := c.store.Get(doc2ID)
	if !ok1 || !ok2 {
		c.logger.Warn("comparison requested for unknown document",
			logging.String("doc1", doc1ID), logging.String("doc2", doc2ID),
			logging.Bool("doc1_found", ok1), logging.Bool("doc2_found", ok2))
		return []analysis.ComparisonRecord{}
	}

	paras1 := c.segmenter.Segment(doc1.Text)
	paras2 := c.segmenter.Segment(doc2.Text)

	records := make([]analysis.ComparisonRecord, 0)
	for _, p1 := range paras1 {
		for _, p2 := range paras2 {
			sim := SimilarityRatio(p1.Text, p2.Text)
			if sim <= c.pairingThreshold {
				continue
			}

			ops := LineDiff(p1.Text, p2.Text)
			left, right := RenderHTML(ops)
			flags := classify(p1, p2)

			rec := analysis.ComparisonRecord{
				Doc1ID:        doc1ID,
				Doc2ID:        doc2ID,
				Para1:         p1,
				Para2:         p2,
				Similarity:    sim,
				Ops:           ops,
				RenderedDiff1: left,
				RenderedDiff2: right,
				Flags:         flags,
				IsSubstantial: flags.CitationDiff || flags.ConceptDiff || flags.NumberDiff || flags.NegationDiff,
			}
			if focusOnSubstance && !rec.IsSubstantial {
				continue
			}
			records = append(records, rec)
		}
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Similarity < records[j].Similarity })

	if c.metrics != nil {
		c.metrics.ComparisonsTotal.Inc()
		c.metrics.ComparisonDuration.Observe(time.Since(start).Seconds())
	}
	c.logger.Debug("comparison finished",
		logging.String("doc1", doc1ID), logging.String("doc2", doc2ID),
		logging.Int("pairs", len(records)),
		logging.Bool("focus_on_substance", focusOnSubstance))

	return records
}

// classify computes the four substantive-difference flags for a paragraph
// pair.
func classify(p1, p2 analysis.Paragraph) analysis.DiffFlags {
	return analysis.DiffFlags{
		CitationDiff: !setsEqual(citation.IDSet(p1.Citations), citation.IDSet(p2.Citations)),
		ConceptDiff:  !setsEqual(stringSet(p1.Concepts), stringSet(p2.Concepts)),
		NumberDiff:   !setsEqual(numberSet(p1.Text), numberSet(p2.Text)),
		NegationDiff: negationCount(p1.Text) != negationCount(p2.Text),
	}
}

func stringSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, s := range items {
		out[s] = struct{}{}
	}
	return out
}

func numberSet(text string) map[string]struct{} {
	return stringSet(numberPattern.FindAllString(text, -1))
}

func negationCount(text string) int {
	return len(negationPattern.FindAllString(text, -1))
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
