// Package analysis defines the shared data types exchanged between the
// ArbiLens analysis engine and its collaborators.  No behavior lives here —
// only plain data types, mirroring the boundary between the engine's domain
// services and the HTTP/CLI surfaces.
package analysis

// CitationKind distinguishes the two reference families the extractor
// recognises in arbitration texts.
type CitationKind string

const (
	// CitationExhibit is an exhibit reference, e.g. "Exhibit C-12" or a bare
	// alphanumeric token such as "C-12".
	CitationExhibit CitationKind = "exhibit"

	// CitationArticle is an article/section reference, e.g. "Article 25.1".
	CitationArticle CitationKind = "article"
)

// Citation is a single reference found in a text span.  Citations are
// produced fresh on every extraction call and are never persisted apart from
// the paragraph or argument that owns them.
type Citation struct {
	// Kind is the reference family that matched.
	Kind CitationKind `json:"kind"`

	// ID is the reference identifier: the token for exhibits ("C-12"), the
	// dotted number for articles ("25.1").
	ID string `json:"id"`

	// MatchedText is the full matched span including any marker word.
	MatchedText string `json:"matched_text"`

	// Position is the byte offset of the match in the scanned text.
	Position int `json:"position"`

	// Context is the surrounding text, 50 characters on each side clipped to
	// the bounds of the scanned span.
	Context string `json:"context"`
}

// Concept is a canonical legal concept name together with its registered
// lexical variations.  Matching against text is case-insensitive substring
// containment of the name or any variation.
type Concept struct {
	Name       string   `json:"name"`
	Variations []string `json:"variations"`
}

// Paragraph is one analyzable unit of a document, produced by the segmenter.
type Paragraph struct {
	// Index is the paragraph's 0-based position before short paragraphs are
	// filtered out, so indices are not necessarily contiguous.
	Index int `json:"index"`

	// Text is the trimmed paragraph text.
	Text string `json:"text"`

	// Citations holds every reference found in the paragraph.
	Citations []Citation `json:"citations"`

	// Concepts is the set of registered concept names matched by the text.
	Concepts []string `json:"concepts"`

	// WordCount is the whitespace-token count of Text.
	WordCount int `json:"word_count"`
}

// SearchResult is one ranked hit of a concept-expanded search.  Scores are an
// unbounded additive heuristic; callers must not assume an upper bound.
type SearchResult struct {
	DocID     string    `json:"doc_id"`
	Paragraph Paragraph `json:"paragraph"`

	// Score is rounded to three decimals.
	Score float64 `json:"score"`

	// ContextWindow is the raw-document text surrounding the paragraph's
	// first occurrence, 100 characters on each side.
	ContextWindow string `json:"context_window"`
}

// DiffOpTag classifies one line of a paragraph-pair diff.
type DiffOpTag string

const (
	DiffCommon  DiffOpTag = "common"
	DiffRemoved DiffOpTag = "removed"
	DiffAdded   DiffOpTag = "added"
)

// DiffOp is one structured line-level diff operation.  The comparator returns
// these so callers can choose their own rendering; the bundled HTML renderer
// is one such caller.
type DiffOp struct {
	Tag  DiffOpTag `json:"tag"`
	Line string    `json:"line"`
}

// DiffFlags records which substantive-difference heuristics fired for a
// paragraph pair.
type DiffFlags struct {
	// CitationDiff is set when the citation id sets differ (ids only, kind
	// ignored).
	CitationDiff bool `json:"citation_diff"`

	// ConceptDiff is set when the matched concept sets differ.
	ConceptDiff bool `json:"concept_diff"`

	// NumberDiff is set when the sets of numeric tokens differ.
	NumberDiff bool `json:"number_diff"`

	// NegationDiff is set when the counts of negation words differ.  Counts,
	// not sets: equal counts of different negation words do not flag.
	NegationDiff bool `json:"negation_diff"`
}

// ComparisonRecord is one compared paragraph pair whose similarity exceeded
// the pairing threshold.  A single paragraph may appear in several records;
// pairing is an all-pairs scan, not a bipartite matching.
type ComparisonRecord struct {
	Doc1ID string    `json:"doc1_id"`
	Doc2ID string    `json:"doc2_id"`
	Para1  Paragraph `json:"para1"`
	Para2  Paragraph `json:"para2"`

	// Similarity is the case-insensitive sequence-similarity ratio in [0,1].
	Similarity float64 `json:"similarity"`

	// Ops is the structured line diff of the two paragraph texts.
	Ops []DiffOp `json:"ops"`

	// RenderedDiff1 and RenderedDiff2 are the parallel HTML-safe renderings
	// of the diff for the left and right paragraph respectively.
	RenderedDiff1 string `json:"rendered_diff1"`
	RenderedDiff2 string `json:"rendered_diff2"`

	Flags DiffFlags `json:"flags"`

	// IsSubstantial is the logical OR of the four flags.
	IsSubstantial bool `json:"is_substantial"`
}

// Argument is one candidate rhetorical argument extracted by the miner.  The
// same sentence may be captured by more than one pattern; no cross-pattern
// deduplication is performed.
type Argument struct {
	// Text is the trimmed captured argument statement.
	Text string `json:"text"`

	// Context is the surrounding text, 100 characters on each side clipped
	// to document bounds.
	Context string `json:"context"`

	// ParagraphNumber is 1-based: one plus the count of blank-line paragraph
	// breaks preceding the match.
	ParagraphNumber int `json:"paragraph_number"`

	// Position is the byte offset of the match in the document text.
	Position int `json:"position"`

	DocID string `json:"doc_id"`

	// PatternUsed identifies the rule that produced this argument.
	PatternUsed string `json:"pattern_used"`

	// Citations are extracted from Context, not from Text alone.
	Citations []Citation `json:"citations"`

	// Concepts are matched against Text, not the wider Context.
	Concepts []string `json:"concepts"`

	// Provenance combines document id, paragraph number and offset into a
	// display string that traces the argument to its exact source location.
	Provenance string `json:"provenance"`
}

// ArgumentSummary aggregates the arguments extracted from one document or
// one logical party group.
type ArgumentSummary struct {
	DocID     string     `json:"doc_id"`
	Count     int        `json:"count"`
	Arguments []Argument `json:"arguments"`

	// Concepts is the sorted union of every argument's concept set.
	Concepts []string `json:"concepts"`

	// Citations concatenates every argument's citations without
	// deduplication.
	Citations []Citation `json:"citations"`

	// ByConcept maps each concept to the arguments mentioning it; one
	// argument may appear under several concepts.
	ByConcept map[string][]Argument `json:"by_concept"`
}

// ComparativeRow is one row of the claimant-versus-respondent argument table.
type ComparativeRow struct {
	Concept             string     `json:"concept"`
	ClaimantArguments   []Argument `json:"claimant_arguments"`
	RespondentArguments []Argument `json:"respondent_arguments"`
}
