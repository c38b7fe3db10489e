// Package argument mines candidate rhetorical arguments from document text
// with a fixed battery of regular patterns, then aggregates the results by
// document and by concept for side-by-side party comparison.
//
// The miner is deliberately heuristic: it keeps every pattern match,
// including overlapping captures of the same sentence, and relies on the
// recorded provenance to let a reader verify each hit against the source.
package argument

import (
	"fmt"
	"strings"
	"time"

	"github.com/veritaslex/arbilens/internal/domain/citation"
	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/internal/domain/document"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/logging"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/prometheus"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// DefaultContextRadius is the number of characters kept on each side of a
// match when building an argument's context window.
const DefaultContextRadius = 100

// Miner scans document text for argument statements.
type Miner struct {
	registry      *concept.Registry
	extractor     *citation.Extractor
	patterns      []pattern
	contextRadius int
	logger        logging.Logger
	metrics       *prometheus.Metrics
}

// NewMiner constructs a Miner over the given registry.  Logger and metrics
// may be nil.
func NewMiner(registry *concept.Registry, logger logging.Logger, metrics *prometheus.Metrics) *Miner {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Miner{
		registry:      registry,
		extractor:     citation.NewExtractor(citation.DefaultContextRadius),
		patterns:      patternBattery(),
		contextRadius: DefaultContextRadius,
		logger:        logger.Named("argument"),
		metrics:       metrics,
	}
}

// Extract runs the full pattern battery over text and returns one Argument
// per match, in battery order then match-offset order.  Citations are
// extracted from each argument's context window; concepts are matched
// against the captured statement only.
func (m *Miner) Extract(text, docID string) []analysis.Argument {
	start := time.Now()

	args := make([]analysis.Argument, 0)
	for _, p := range m.patterns {
		for _, idx := range p.Re.FindAllStringSubmatchIndex(text, -1) {
			gs, ge := idx[2*p.Group], idx[2*p.Group+1]
			if gs < 0 {
				continue
			}
			statement := strings.TrimSpace(text[gs:ge])
			if statement == "" {
				continue
			}

			pos := idx[0]
			ctx := contextWindow(text, idx[0], idx[1], m.contextRadius)
			paraNum := 1 + document.CountBreaksBefore(text, pos)

			args = append(args, analysis.Argument{
				Text:            statement,
				Context:         ctx,
				ParagraphNumber: paraNum,
				Position:        pos,
				DocID:           docID,
				PatternUsed:     p.ID,
				Citations:       m.extractor.Extract(ctx),
				Concepts:        m.registry.ConceptsIn(statement),
				Provenance:      FormatProvenance(docID, paraNum, pos),
			})
		}
	}

	if m.metrics != nil {
		m.metrics.ExtractionsTotal.Inc()
		m.metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
		m.metrics.ArgumentsExtracted.Add(float64(len(args)))
	}
	m.logger.Debug("argument extraction finished",
		logging.String("doc_id", docID),
		logging.Int("arguments", len(args)),
		logging.Duration("elapsed", time.Since(start)))
	return args
}

// FormatProvenance builds the display string that traces an argument back to
// its source location.
func FormatProvenance(docID string, paragraphNumber, position int) string {
	return fmt.Sprintf("%s, para %d, offset %d", docID, paragraphNumber, position)
}

func contextWindow(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
