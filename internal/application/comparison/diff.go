package comparison

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// SimilarityRatio returns the case-insensitive sequence-similarity of two
// texts in [0, 1], computed character-wise.  Identical texts score 1.0.
func SimilarityRatio(a, b string) float64 {
	aChars := strings.Split(strings.ToLower(a), "")
	bChars := strings.Split(strings.ToLower(b), "")
	return difflib.NewMatcher(aChars, bChars).Ratio()
}

// LineDiff computes the structured line-level diff of two paragraph texts.
// The result is a flat operation sequence: common lines appear once, lines
// unique to a become removed ops, lines unique to b become added ops.
// Replacement ranges fold into their removed lines followed by their added
// lines, so every diff line carries exactly one of the three tags.
func LineDiff(a, b string) []analysis.DiffOp {
	aLines := strings.Split(a, "\n")
	bLines := strings.Split(b, "\n")

	ops := make([]analysis.DiffOp, 0, len(aLines)+len(bLines))
	for _, oc := range difflib.NewMatcher(aLines, bLines).GetOpCodes() {
		switch oc.Tag {
		case 'e':
			for _, line := range aLines[oc.I1:oc.I2] {
				ops = append(ops, analysis.DiffOp{Tag: analysis.DiffCommon, Line: line})
			}
		case 'd':
			for _, line := range aLines[oc.I1:oc.I2] {
				ops = append(ops, analysis.DiffOp{Tag: analysis.DiffRemoved, Line: line})
			}
		case 'i':
			for _, line := range bLines[oc.J1:oc.J2] {
				ops = append(ops, analysis.DiffOp{Tag: analysis.DiffAdded, Line: line})
			}
		case 'r':
			for _, line := range aLines[oc.I1:oc.I2] {
				ops = append(ops, analysis.DiffOp{Tag: analysis.DiffRemoved, Line: line})
			}
			for _, line := range bLines[oc.J1:oc.J2] {
				ops = append(ops, analysis.DiffOp{Tag: analysis.DiffAdded, Line: line})
			}
		}
	}
	return ops
}
