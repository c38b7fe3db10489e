package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veritaslex/arbilens/internal/application/comparison"
	"github.com/veritaslex/arbilens/pkg/errors"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// Comparison view modes.  "all" returns every paired record; "citation" and
// "concept" keep only records whose corresponding flag is set.
const (
	ViewAll      = "all"
	ViewCitation = "citation"
	ViewConcept  = "concept"
)

// CompareHandler exposes paragraph-pair comparison between two documents.
type CompareHandler struct {
	comparator *comparison.Comparator
}

// NewCompareHandler constructs a CompareHandler.
func NewCompareHandler(comparator *comparison.Comparator) *CompareHandler {
	return &CompareHandler{comparator: comparator}
}

// RegisterRoutes mounts the compare endpoint.
func (h *CompareHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/compare", h.Compare)
}

type compareRequest struct {
	Doc1ID string `json:"doc1_id" binding:"required"`
	Doc2ID string `json:"doc2_id" binding:"required"`

	// FocusOnSubstance drops purely stylistic pairs before any view filter.
	FocusOnSubstance bool `json:"focus_on_substance"`

	// View selects the record filter: all (default), citation, or concept.
	View string `json:"view"`
}

// Compare handles POST /api/v1/compare.
func (h *CompareHandler) Compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	view := req.View
	if view == "" {
		view = ViewAll
	}
	if view != ViewAll && view != ViewCitation && view != ViewConcept {
		respondError(c, errors.InvalidParam("view must be one of all, citation, concept").WithDetail(req.View))
		return
	}

	records := h.comparator.Compare(req.Doc1ID, req.Doc2ID, req.FocusOnSubstance)
	records = filterByView(records, view)

	c.JSON(http.StatusOK, gin.H{
		"doc1_id": req.Doc1ID,
		"doc2_id": req.Doc2ID,
		"view":    view,
		"records": records,
		"count":   len(records),
	})
}

func filterByView(records []analysis.ComparisonRecord, view string) []analysis.ComparisonRecord {
	if view == ViewAll {
		return records
	}
	out := make([]analysis.ComparisonRecord, 0, len(records))
	for _, r := range records {
		switch view {
		case ViewCitation:
			if r.Flags.CitationDiff {
				out = append(out, r)
			}
		case ViewConcept:
			if r.Flags.ConceptDiff {
				out = append(out, r)
			}
		}
	}
	return out
}
