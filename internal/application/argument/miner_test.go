package argument

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

func newTestMiner() *Miner {
	return NewMiner(concept.NewRegistry(), nil, nil)
}

func byPattern(args []analysis.Argument) map[string][]analysis.Argument {
	out := make(map[string][]analysis.Argument)
	for _, a := range args {
		out[a.PatternUsed] = append(out[a.PatternUsed], a)
	}
	return out
}

func TestExtractReportingAndRebuttal(t *testing.T) {
	text := "The claimant contends that the transfer was void. The respondent disputes this outcome entirely."
	args := newTestMiner().Extract(text, "memorial")

	require.GreaterOrEqual(t, len(args), 2)
	grouped := byPattern(args)

	reporting := grouped["reporting_verb"]
	require.Len(t, reporting, 1)
	assert.Equal(t, "the transfer was void", reporting[0].Text)

	rebuttal := grouped["rebuttal_verb"]
	require.Len(t, rebuttal, 1)
	assert.Equal(t, "this outcome entirely", rebuttal[0].Text)

	for _, a := range args {
		assert.Equal(t, 1, a.ParagraphNumber)
		assert.Equal(t, "memorial", a.DocID)
	}
}

func TestExtractOverlappingPatternsKeepBoth(t *testing.T) {
	// "The claimant contends that ..." satisfies both the bare reporting-verb
	// rule and the party-named rule; no deduplication happens.
	text := "The claimant contends that notice was never given."
	grouped := byPattern(newTestMiner().Extract(text, "d"))

	assert.Len(t, grouped["reporting_verb"], 1)
	require.Len(t, grouped["party_reporting"], 1)
	assert.Equal(t, "notice was never given", grouped["party_reporting"][0].Text)
}

func TestExtractAttributionCapturesSecondGroup(t *testing.T) {
	text := "According to the expert report, the damages were overstated."
	grouped := byPattern(newTestMiner().Extract(text, "d"))

	require.Len(t, grouped["attribution"], 1)
	a := grouped["attribution"][0]
	assert.Equal(t, "the damages were overstated", a.Text)
	assert.Contains(t, a.Concepts, "damages")
}

func TestExtractEnumeratorAndObservation(t *testing.T) {
	text := "Firstly, the contract was never signed by either party. The tribunal notes that liability is therefore established."
	grouped := byPattern(newTestMiner().Extract(text, "d"))

	require.Len(t, grouped["enumerator"], 1)
	assert.Equal(t, "the contract was never signed by either party", grouped["enumerator"][0].Text)

	require.Len(t, grouped["observation_verb"], 1)
	obs := grouped["observation_verb"][0]
	assert.Equal(t, "liability is therefore established", obs.Text)
	assert.Contains(t, obs.Concepts, "liability")
}

func TestExtractParagraphNumberCountsBlankLineBreaks(t *testing.T) {
	text := "The procedural history is set out above and not repeated here.\n\n" +
		"The tribunal concludes that the claim is time-barred."
	grouped := byPattern(newTestMiner().Extract(text, "award"))

	require.Len(t, grouped["concluding_verb"], 1)
	a := grouped["concluding_verb"][0]
	assert.Equal(t, 2, a.ParagraphNumber)
	assert.Equal(t, strings.Index(text, "concludes"), a.Position)
	assert.Equal(t, FormatProvenance("award", 2, a.Position), a.Provenance)
}

func TestExtractCitationsComeFromContextWindow(t *testing.T) {
	// Article 12 sits before the matched sentence but inside the 100-char
	// context radius, so it is attached to the argument.
	text := "Article 12 governs notice periods. The respondent submits that the notice was defective."
	grouped := byPattern(newTestMiner().Extract(text, "d"))

	require.Len(t, grouped["reporting_verb"], 1)
	ids := make([]string, 0)
	for _, c := range grouped["reporting_verb"][0].Citations {
		if c.Kind == analysis.CitationArticle {
			ids = append(ids, c.ID)
		}
	}
	assert.Contains(t, ids, "12")
}

func TestExtractNoMatchesYieldsEmpty(t *testing.T) {
	args := newTestMiner().Extract("Plain narrative text with no rhetorical markers at all", "d")
	assert.Empty(t, args)
}
