package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veritaslex/arbilens/internal/domain/document"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/prometheus"
	"github.com/veritaslex/arbilens/pkg/errors"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// DocumentHandler manages the in-memory document set.  Text arrives already
// decoded; file-format conversion happens upstream of this API.
type DocumentHandler struct {
	store     *document.Store
	segmenter *document.Segmenter
	metrics   *prometheus.Metrics
}

// NewDocumentHandler constructs a DocumentHandler.  Metrics may be nil.
func NewDocumentHandler(store *document.Store, segmenter *document.Segmenter, metrics *prometheus.Metrics) *DocumentHandler {
	return &DocumentHandler{store: store, segmenter: segmenter, metrics: metrics}
}

// RegisterRoutes mounts document endpoints under /documents.
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dr := rg.Group("/documents")
	dr.POST("", h.Create)
	dr.GET("", h.List)
	dr.GET("/:id", h.Get)
	dr.GET("/:id/paragraphs", h.Paragraphs)
	dr.DELETE("/:id", h.Delete)
}

type createDocumentRequest struct {
	ID   string `json:"id"`
	Text string `json:"text" binding:"required"`
	Role string `json:"role"`
}

type documentResponse struct {
	ID   string `json:"id"`
	Role string `json:"role,omitempty"`

	// Chars is the raw text length; the text itself is not echoed back.
	Chars int `json:"chars"`
}

// Create handles POST /api/v1/documents.
func (h *DocumentHandler) Create(c *gin.Context) {
	var req createDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	id, err := h.store.Put(document.Document{ID: req.ID, Text: req.Text, Role: req.Role})
	if err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.DocumentsStored.Set(float64(h.store.Len()))
	}
	c.JSON(http.StatusCreated, documentResponse{ID: id, Role: req.Role, Chars: len(req.Text)})
}

// List handles GET /api/v1/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	docs := h.store.List()
	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentResponse{ID: d.ID, Role: d.Role, Chars: len(d.Text)})
	}
	c.JSON(http.StatusOK, gin.H{"documents": out, "count": len(out)})
}

// Get handles GET /api/v1/documents/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, ok := h.store.Get(c.Param("id"))
	if !ok {
		respondError(c, errors.New(errors.ErrCodeDocumentNotFound, "document not found").WithDetail(c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": doc.ID, "role": doc.Role, "text": doc.Text})
}

// Paragraphs handles GET /api/v1/documents/:id/paragraphs, returning the
// enriched segmentation of one document.
func (h *DocumentHandler) Paragraphs(c *gin.Context) {
	doc, ok := h.store.Get(c.Param("id"))
	if !ok {
		respondError(c, errors.New(errors.ErrCodeDocumentNotFound, "document not found").WithDetail(c.Param("id")))
		return
	}
	paras := h.segmenter.Segment(doc.Text)
	if paras == nil {
		paras = []analysis.Paragraph{}
	}
	c.JSON(http.StatusOK, gin.H{"id": doc.ID, "paragraphs": paras, "count": len(paras)})
}

// Delete handles DELETE /api/v1/documents/:id.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.store.Remove(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.DocumentsStored.Set(float64(h.store.Len()))
	}
	c.Status(http.StatusNoContent)
}
