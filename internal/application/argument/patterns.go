package argument

import "regexp"

// pattern is one tagged rule of the mining battery.  Group is the index of
// the capture group holding the argument statement; everything before it is
// attribution scaffolding.
type pattern struct {
	ID    string
	Re    *regexp.Regexp
	Group int
}

// patternBattery is applied in order on every extraction run.  The order is
// part of the output contract: arguments are emitted per pattern, then per
// match offset, so provenance stays reproducible across runs.
//
// Each rule captures a statement ending at the first following period.  The
// rules overlap on purpose: a sentence like "The claimant contends that X."
// is caught by both reporting_verb and party_reporting, and both matches are
// kept.
func patternBattery() []pattern {
	return []pattern{
		{
			ID:    "reporting_verb",
			Re:    regexp.MustCompile(`(?i)\b(?:contends|submits|argues|claims|asserts)\s+that\s+([^.]+)\.`),
			Group: 1,
		},
		{
			ID:    "attribution",
			Re:    regexp.MustCompile(`(?i)\baccording\s+to\s+([^,]+),\s*([^.]+)\.`),
			Group: 2,
		},
		{
			ID:    "enumerator",
			Re:    regexp.MustCompile(`(?i)\b(?:firstly|secondly|thirdly|finally|furthermore|moreover|in addition),\s*([^.]+)\.`),
			Group: 1,
		},
		{
			ID:    "concluding_verb",
			Re:    regexp.MustCompile(`(?i)\b(?:concludes|maintains|alleges)\s+that\s+([^.]+)\.`),
			Group: 1,
		},
		{
			ID:    "observation_verb",
			Re:    regexp.MustCompile(`(?i)\b(?:points\s+out|notes|observes)\s+that\s+([^.]+)\.`),
			Group: 1,
		},
		{
			ID:    "party_reporting",
			Re:    regexp.MustCompile(`(?i)\bthe\s+(?:claimant|respondent|appellant|defendant)[^.]*?\s(?:contends|submits|argues|claims|asserts)\s+that\s+([^.]+)\.`),
			Group: 1,
		},
		{
			ID:    "rebuttal_verb",
			Re:    regexp.MustCompile(`(?i)\b(?:disagrees\s+with|disputes|counters|rebuts|refutes|denies)\s+([^.]+)\.`),
			Group: 1,
		},
	}
}
