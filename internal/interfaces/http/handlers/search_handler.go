package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veritaslex/arbilens/internal/application/search"
	"github.com/veritaslex/arbilens/internal/domain/document"
	"github.com/veritaslex/arbilens/pkg/errors"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// Recommended threshold bounds.  Values outside are rejected rather than
// clamped so callers notice misconfiguration.
const (
	minSearchThreshold = 0.1
	maxSearchThreshold = 0.9
)

// SearchHandler exposes concept-expanding search over the stored documents.
type SearchHandler struct {
	engine           *search.Engine
	store            *document.Store
	defaultThreshold float64
}

// NewSearchHandler constructs a SearchHandler.  A non-positive
// defaultThreshold falls back to 0.3.
func NewSearchHandler(engine *search.Engine, store *document.Store, defaultThreshold float64) *SearchHandler {
	if defaultThreshold <= 0 {
		defaultThreshold = 0.3
	}
	return &SearchHandler{engine: engine, store: store, defaultThreshold: defaultThreshold}
}

// RegisterRoutes mounts the search endpoint.
func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/search", h.Search)
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`

	// Threshold overrides the server default when non-nil.
	Threshold *float64 `json:"threshold"`

	// DocIDs restricts the search to a subset of documents; empty means all.
	DocIDs []string `json:"doc_ids"`
}

// Search handles POST /api/v1/search.
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	threshold := h.defaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
		if threshold < minSearchThreshold || threshold > maxSearchThreshold {
			respondError(c, errors.New(errors.ErrCodeThresholdInvalid,
				fmt.Sprintf("threshold must be in [%g, %g]", minSearchThreshold, maxSearchThreshold)))
			return
		}
	}

	documents := h.store.TextMap()
	if len(req.DocIDs) > 0 {
		subset := make(map[string]string, len(req.DocIDs))
		for _, id := range req.DocIDs {
			if text, ok := documents[id]; ok {
				subset[id] = text
			}
		}
		documents = subset
	}

	results := h.engine.Search(req.Query, documents, threshold)
	if results == nil {
		results = []analysis.SearchResult{}
	}
	c.JSON(http.StatusOK, gin.H{
		"query":     req.Query,
		"threshold": threshold,
		"results":   results,
		"count":     len(results),
	})
}
