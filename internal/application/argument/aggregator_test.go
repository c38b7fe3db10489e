package argument

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

func arg(text string, concepts []string, citations ...analysis.Citation) analysis.Argument {
	return analysis.Argument{Text: text, Concepts: concepts, Citations: citations}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize("d1", nil)

	assert.Equal(t, "d1", s.DocID)
	assert.Zero(t, s.Count)
	assert.Empty(t, s.Arguments)
	assert.Empty(t, s.Concepts)
	assert.Empty(t, s.Citations)
	assert.Empty(t, s.ByConcept)
}

func TestSummarizeGroupsByConcept(t *testing.T) {
	cit := analysis.Citation{Kind: analysis.CitationArticle, ID: "9"}
	args := []analysis.Argument{
		arg("a1", []string{"damages", "liability"}, cit),
		arg("a2", []string{"damages"}, cit),
		arg("a3", nil),
	}

	s := Summarize("d1", args)

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, []string{"damages", "liability"}, s.Concepts)
	// Citations concatenate without deduplication.
	assert.Len(t, s.Citations, 2)

	require.Len(t, s.ByConcept["damages"], 2)
	assert.Equal(t, "a1", s.ByConcept["damages"][0].Text)
	assert.Equal(t, "a2", s.ByConcept["damages"][1].Text)
	require.Len(t, s.ByConcept["liability"], 1)
	assert.Equal(t, "a1", s.ByConcept["liability"][0].Text)
}

func TestBuildComparativeTableEmptySummaries(t *testing.T) {
	rows := BuildComparativeTable(Summarize("c", nil), Summarize("r", nil))
	assert.Empty(t, rows)
}

func TestBuildComparativeTableAlignsConcepts(t *testing.T) {
	claimant := Summarize("memorial", []analysis.Argument{
		arg("c1", []string{"damages"}),
		arg("c2", []string{"jurisdiction"}),
	})
	respondent := Summarize("counter-memorial", []analysis.Argument{
		arg("r1", []string{"damages"}),
		arg("r2", []string{"termination"}),
	})

	rows := BuildComparativeTable(claimant, respondent)
	require.Len(t, rows, 3)

	assert.Equal(t, "damages", rows[0].Concept)
	require.Len(t, rows[0].ClaimantArguments, 1)
	require.Len(t, rows[0].RespondentArguments, 1)
	assert.Equal(t, "c1", rows[0].ClaimantArguments[0].Text)
	assert.Equal(t, "r1", rows[0].RespondentArguments[0].Text)

	assert.Equal(t, "jurisdiction", rows[1].Concept)
	assert.Len(t, rows[1].ClaimantArguments, 1)
	assert.Empty(t, rows[1].RespondentArguments)

	assert.Equal(t, "termination", rows[2].Concept)
	assert.Empty(t, rows[2].ClaimantArguments)
	assert.Len(t, rows[2].RespondentArguments, 1)
}

func TestMineThenAggregateEndToEnd(t *testing.T) {
	miner := newTestMiner()

	claimantArgs := miner.Extract(
		"The claimant submits that the damages claimed are fully substantiated.", "memorial")
	respondentArgs := miner.Extract(
		"The respondent argues that the damages are speculative. The respondent denies any liability whatsoever.", "counter-memorial")

	rows := BuildComparativeTable(
		Summarize("memorial", claimantArgs),
		Summarize("counter-memorial", respondentArgs))
	require.NotEmpty(t, rows)

	assert.Equal(t, "damages", rows[0].Concept)
	assert.NotEmpty(t, rows[0].ClaimantArguments)
	assert.NotEmpty(t, rows[0].RespondentArguments)
}
