package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/internal/domain/document"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

func newTestComparator(t *testing.T, docs map[string]string) *Comparator {
	t.Helper()
	store := document.NewStore()
	for id, text := range docs {
		_, err := store.Put(document.Document{ID: id, Text: text})
		require.NoError(t, err)
	}
	registry := concept.NewRegistry()
	return NewComparator(store, document.NewSegmenter(registry, nil, 0), 0, nil, nil)
}

func TestCompareUnknownDocumentYieldsEmpty(t *testing.T) {
	c := newTestComparator(t, map[string]string{"d1": "A paragraph that is long enough to keep."})

	assert.Empty(t, c.Compare("d1", "ghost", false))
	assert.Empty(t, c.Compare("ghost", "d1", false))
}

func TestCompareDocumentWithItself(t *testing.T) {
	text := "The tribunal finds the claim admissible in principle.\n\nThe respondent shall bear the costs of the proceedings."
	c := newTestComparator(t, map[string]string{"d": text})

	records := c.Compare("d", "d", false)
	require.NotEmpty(t, records)

	identical := 0
	for _, r := range records {
		if r.Para1.Index == r.Para2.Index {
			identical++
			assert.Equal(t, 1.0, r.Similarity)
			assert.False(t, r.Flags.CitationDiff)
			assert.False(t, r.Flags.ConceptDiff)
			assert.False(t, r.Flags.NumberDiff)
			assert.False(t, r.Flags.NegationDiff)
			assert.False(t, r.IsSubstantial)
		}
	}
	assert.Equal(t, 2, identical)
}

func TestCompareArticleNumberChange(t *testing.T) {
	c := newTestComparator(t, map[string]string{
		"v1": "The tribunal finds Article 5 applies.",
		"v2": "The tribunal finds Article 6 applies.",
	})

	records := c.Compare("v1", "v2", false)
	require.Len(t, records, 1)

	r := records[0]
	assert.Greater(t, r.Similarity, 0.5)
	assert.True(t, r.Flags.CitationDiff, "article ids 5 vs 6 must flag a citation divergence")
	assert.True(t, r.Flags.NumberDiff)
	assert.True(t, r.IsSubstantial)
}

func TestCompareNegationCountHeuristic(t *testing.T) {
	c := newTestComparator(t, map[string]string{
		"a": "The parties agreed the delivery was not completed on schedule.",
		"b": "The parties agreed the delivery was completed on schedule.",
		// Same negation count as "a", different negation word.
		"c": "The parties agreed the delivery was never completed on schedule.",
	})

	dropped := c.Compare("a", "b", false)
	require.Len(t, dropped, 1)
	assert.True(t, dropped[0].Flags.NegationDiff)

	swapped := c.Compare("a", "c", false)
	require.Len(t, swapped, 1)
	// Counts match, so swapping one negation word for another is not flagged.
	assert.False(t, swapped[0].Flags.NegationDiff)
}

func TestCompareFocusOnSubstanceDropsStylisticPairs(t *testing.T) {
	c := newTestComparator(t, map[string]string{
		"a": "the tribunal will deliberate upon the evidence submitted here.",
		"b": "the tribunal will deliberate upon the evidence submitted there.",
	})

	all := c.Compare("a", "b", false)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsSubstantial)

	substantial := c.Compare("a", "b", true)
	assert.Empty(t, substantial)
}

func TestCompareSortedAscendingBySimilarity(t *testing.T) {
	text1 := "The applicable law is the law of the seat of arbitration.\n\nThe hearing shall be held in Geneva in the spring."
	text2 := "The applicable law is the law of the seat of arbitration.\n\nThe hearing shall be held in Geneva in the autumn season."
	c := newTestComparator(t, map[string]string{"x": text1, "y": text2})

	records := c.Compare("x", "y", false)
	require.NotEmpty(t, records)
	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i-1].Similarity, records[i].Similarity)
	}
}

func TestCompareUnrelatedParagraphsNeverPaired(t *testing.T) {
	c := newTestComparator(t, map[string]string{
		"a": "Costs follow the event.",
		"b": "Having weighed the documentary record, the expert testimony and the parties' post-hearing submissions, the tribunal is satisfied that the claimant has discharged its burden of proof on every head of claim advanced in this phase.",
	})
	assert.Empty(t, c.Compare("a", "b", false))
}

func TestLineDiffAndRendering(t *testing.T) {
	a := "shared opening line\nremoved middle line\nshared closing line"
	b := "shared opening line\nadded middle line\nshared closing line"

	ops := LineDiff(a, b)
	var tags []analysis.DiffOpTag
	for _, op := range ops {
		tags = append(tags, op.Tag)
	}
	assert.Equal(t, []analysis.DiffOpTag{
		analysis.DiffCommon, analysis.DiffRemoved, analysis.DiffAdded, analysis.DiffCommon,
	}, tags)

	left, right := RenderHTML(ops)
	assert.Contains(t, left, `<span class="diff-removed">removed middle line</span>`)
	assert.NotContains(t, left, "added middle line")
	assert.Contains(t, right, `<span class="diff-added">added middle line</span>`)
	assert.NotContains(t, right, "removed middle line")
}

func TestRenderHTMLEscapes(t *testing.T) {
	ops := []analysis.DiffOp{{Tag: analysis.DiffCommon, Line: `a <b> & "c"`}}
	left, right := RenderHTML(ops)
	assert.Equal(t, left, right)
	assert.Contains(t, left, "&lt;b&gt;")
	assert.NotContains(t, left, "<b>")
}

func TestSimilarityRatioCaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, SimilarityRatio("The Tribunal DECIDES.", "the tribunal decides."))
	assert.Less(t, SimilarityRatio("wholly different text", "nothing in common at all"), 0.5)
}
