package argument

import (
	"sort"

	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// Summarize aggregates the arguments mined from one document or one logical
// party group.  An empty argument list yields a zero-valued summary with
// non-nil empty collections.
func Summarize(docID string, args []analysis.Argument) analysis.ArgumentSummary {
	summary := analysis.ArgumentSummary{
		DocID:     docID,
		Count:     len(args),
		Arguments: args,
		Concepts:  []string{},
		Citations: []analysis.Citation{},
		ByConcept: map[string][]analysis.Argument{},
	}
	if len(args) == 0 {
		if summary.Arguments == nil {
			summary.Arguments = []analysis.Argument{}
		}
		return summary
	}

	seen := make(map[string]struct{})
	for _, arg := range args {
		// Citations concatenate without deduplication; the same citation
		// appearing in two overlapping contexts is counted twice.
		summary.Citations = append(summary.Citations, arg.Citations...)
		for _, name := range arg.Concepts {
			summary.ByConcept[name] = append(summary.ByConcept[name], arg)
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				summary.Concepts = append(summary.Concepts, name)
			}
		}
	}
	sort.Strings(summary.Concepts)
	return summary
}

// BuildComparativeTable lines up two party summaries concept by concept.
// One row is emitted per concept appearing in either summary, sorted by
// concept name; a concept neither side argues never produces a row.
func BuildComparativeTable(claimant, respondent analysis.ArgumentSummary) []analysis.ComparativeRow {
	union := make(map[string]struct{}, len(claimant.ByConcept)+len(respondent.ByConcept))
	for name := range claimant.ByConcept {
		union[name] = struct{}{}
	}
	for name := range respondent.ByConcept {
		union[name] = struct{}{}
	}

	names := make([]string, 0, len(union))
	for name := range union {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]analysis.ComparativeRow, 0, len(names))
	for _, name := range names {
		left := claimant.ByConcept[name]
		right := respondent.ByConcept[name]
		if len(left) == 0 && len(right) == 0 {
			continue
		}
		if left == nil {
			left = []analysis.Argument{}
		}
		if right == nil {
			right = []analysis.Argument{}
		}
		rows = append(rows, analysis.ComparativeRow{
			Concept:             name,
			ClaimantArguments:   left,
			RespondentArguments: right,
		})
	}
	return rows
}
