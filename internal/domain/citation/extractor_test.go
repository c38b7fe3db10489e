package citation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

func idsOfKind(cs []analysis.Citation, kind analysis.CitationKind) []string {
	var out []string
	for _, c := range cs {
		if c.Kind == kind {
			out = append(out, c.ID)
		}
	}
	return out
}

func TestExtractExhibitWithMarker(t *testing.T) {
	cs := Extract("as shown in Exhibit C-12 and confirmed by exh. R-4.")

	exhibits := idsOfKind(cs, analysis.CitationExhibit)
	assert.Contains(t, exhibits, "C-12")
	assert.Contains(t, exhibits, "R-4")
}

func TestExtractArticleReferences(t *testing.T) {
	cs := Extract("Pursuant to Article 25.1 and section 7, see also § 12.")

	articles := idsOfKind(cs, analysis.CitationArticle)
	assert.Equal(t, []string{"25.1", "7", "12"}, articles)
}

func TestExhibitOverMatchingIsPreserved(t *testing.T) {
	// The optional marker means ordinary capitalized tokens match too.
	cs := Extract("The tribunal finds Article 5 applies.")

	exhibits := idsOfKind(cs, analysis.CitationExhibit)
	assert.Contains(t, exhibits, "The")
	assert.Contains(t, exhibits, "Article")

	articles := idsOfKind(cs, analysis.CitationArticle)
	assert.Equal(t, []string{"5"}, articles)
}

func TestExhibitScanPrecedesArticleScan(t *testing.T) {
	cs := Extract("Article 3 then Exhibit B-1.")
	require.NotEmpty(t, cs)

	sawArticle := false
	for _, c := range cs {
		if c.Kind == analysis.CitationArticle {
			sawArticle = true
		}
		if c.Kind == analysis.CitationExhibit {
			assert.False(t, sawArticle, "exhibit citations must all precede article citations")
		}
	}
	assert.True(t, sawArticle)
}

func TestPositionsAndContextClipping(t *testing.T) {
	text := "Exhibit C-1 opens the record."
	cs := Extract(text)
	require.NotEmpty(t, cs)

	first := cs[0]
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "Exhibit C-1", first.MatchedText)
	// Context is clipped to the text bounds.
	assert.True(t, strings.HasPrefix(first.Context, "Exhibit C-1"))
	assert.LessOrEqual(t, len(first.Context), len(text))
}

func TestContextRadius(t *testing.T) {
	pad := strings.Repeat("x", 80)
	text := pad + " Exhibit C-9 " + pad
	e := NewExtractor(10)

	var hit analysis.Citation
	for _, c := range e.Extract(text) {
		if c.ID == "C-9" {
			hit = c
		}
	}
	require.NotZero(t, hit.MatchedText)
	assert.Len(t, hit.Context, len(hit.MatchedText)+20)
}

func TestExtractIsIdempotent(t *testing.T) {
	text := "Exhibit C-12 contradicts Article 5.2; see also clause 9 and R-44."
	first := Extract(text)
	second := Extract(text)
	assert.Equal(t, first, second)
}

func TestExtractEmptyText(t *testing.T) {
	assert.Empty(t, Extract(""))
}

func TestIDSetIgnoresKind(t *testing.T) {
	cs := []analysis.Citation{
		{Kind: analysis.CitationExhibit, ID: "5"},
		{Kind: analysis.CitationArticle, ID: "5"},
		{Kind: analysis.CitationArticle, ID: "7"},
	}
	set := IDSet(cs)
	assert.Len(t, set, 2)
}
