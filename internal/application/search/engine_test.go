package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/internal/domain/document"
)

func newTestEngine() *Engine {
	registry := concept.NewRegistry()
	return NewEngine(registry, document.NewSegmenter(registry, nil, 0), nil, nil)
}

func TestSearchEmptyDocumentSet(t *testing.T) {
	e := newTestEngine()
	assert.Empty(t, e.Search("force majeure", map[string]string{}, 0.1))
	assert.Empty(t, e.Search("", map[string]string{}, 0.9))
}

func TestSearchConceptExpansionFindsVariation(t *testing.T) {
	e := newTestEngine()
	docs := map[string]string{
		"award": "The event was an act of god beyond anyone's control, exceeding expectations here for safety.",
	}

	results := e.Search("force majeure", docs, 0.3)
	require.Len(t, results, 1)
	assert.Equal(t, "award", results[0].DocID)
	assert.GreaterOrEqual(t, results[0].Score, 0.3)
	assert.Contains(t, results[0].Paragraph.Concepts, "force majeure")
}

func TestSearchThresholdFilters(t *testing.T) {
	e := newTestEngine()
	docs := map[string]string{
		"d1": "Entirely unrelated text about shipping schedules and cargo manifests.",
	}

	results := e.Search("force majeure", docs, 0.3)
	assert.Empty(t, results)
}

func TestSearchScoresAccumulatePerTerm(t *testing.T) {
	e := newTestEngine()
	// Contains the concept name and two variations: three term hits plus
	// the concept bonus and citation bonus.
	rich := "The force majeure event was an act of god arising from unforeseeable circumstances under Article 7."
	poor := "The force majeure clause was invoked late in the proceedings again."

	results := e.Search("force majeure", map[string]string{"rich": rich, "poor": poor}, 0.1)
	require.Len(t, results, 2)
	assert.Equal(t, "rich", results[0].DocID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchSortedDescendingStableTies(t *testing.T) {
	e := newTestEngine()
	// Identical paragraphs in two documents produce identical scores; the
	// tie must keep sorted-document-id encounter order.
	text := "The tribunal awarded damages as compensation for the proven breach."
	results := e.Search("damages", map[string]string{"b-doc": text, "a-doc": text}, 0.1)

	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "a-doc", results[0].DocID)
	assert.Equal(t, "b-doc", results[1].DocID)
}

func TestSearchScoreRounding(t *testing.T) {
	e := newTestEngine()
	docs := map[string]string{
		"d": "Compensation for damages was sought by the claimant in full.",
	}
	results := e.Search("damages compensation claim", docs, 0.05)
	require.NotEmpty(t, results)
	for _, r := range results {
		scaled := r.Score * 1000
		assert.InDelta(t, scaled, float64(int64(scaled+0.5)), 1e-9)
	}
}

func TestSearchContextWindow(t *testing.T) {
	e := newTestEngine()
	prefix := "INTRODUCTION SECTION WITH PLENTY OF LEADING MATERIAL TO CLIP AGAINST.\n\n"
	para := "The tribunal awarded damages as compensation for the breach."
	docs := map[string]string{"d": prefix + para}

	results := e.Search("damages", docs, 0.1)
	require.NotEmpty(t, results)
	assert.Contains(t, results[0].ContextWindow, para)
	// Window reaches back into the preceding material.
	assert.Contains(t, results[0].ContextWindow, "LEADING MATERIAL")
}

func TestSearchMultipleParagraphsNotDeduplicated(t *testing.T) {
	e := newTestEngine()
	text := "The claimant seeks damages for breach.\n\nThe respondent contests the damages claimed in every respect."
	results := e.Search("damages", map[string]string{"d": text}, 0.1)
	assert.Len(t, results, 2)
}
