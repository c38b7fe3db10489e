package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/prometheus"
	"github.com/veritaslex/arbilens/pkg/errors"
)

// ConceptHandler exposes concept-registry CRUD.  Every accepted edit takes
// effect for all subsequent searches and extractions.
type ConceptHandler struct {
	registry *concept.Registry
	metrics  *prometheus.Metrics
}

// NewConceptHandler constructs a ConceptHandler.  Metrics may be nil.
func NewConceptHandler(registry *concept.Registry, metrics *prometheus.Metrics) *ConceptHandler {
	return &ConceptHandler{registry: registry, metrics: metrics}
}

// RegisterRoutes mounts concept endpoints under /concepts.
func (h *ConceptHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cr := rg.Group("/concepts")
	cr.GET("", h.List)
	cr.POST("", h.Create)
	cr.PUT("/:name", h.Update)
	cr.DELETE("/:name", h.Delete)
}

type conceptRequest struct {
	Name       string   `json:"name"`
	Variations []string `json:"variations" binding:"required"`
}

// List handles GET /api/v1/concepts.
func (h *ConceptHandler) List(c *gin.Context) {
	concepts := h.registry.List()
	c.JSON(http.StatusOK, gin.H{"concepts": concepts, "count": len(concepts)})
}

// Create handles POST /api/v1/concepts.
func (h *ConceptHandler) Create(c *gin.Context) {
	var req conceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}
	if err := h.registry.Add(req.Name, req.Variations); err != nil {
		h.recordEdit("add", err)
		respondError(c, err)
		return
	}
	h.recordEdit("add", nil)
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

// Update handles PUT /api/v1/concepts/:name, replacing the full variation
// list of an existing concept.
func (h *ConceptHandler) Update(c *gin.Context) {
	var req conceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}
	name := c.Param("name")
	if err := h.registry.UpdateVariations(name, req.Variations); err != nil {
		h.recordEdit("update", err)
		respondError(c, err)
		return
	}
	h.recordEdit("update", nil)
	c.JSON(http.StatusOK, gin.H{"name": name})
}

// Delete handles DELETE /api/v1/concepts/:name.
func (h *ConceptHandler) Delete(c *gin.Context) {
	if err := h.registry.Remove(c.Param("name")); err != nil {
		h.recordEdit("remove", err)
		respondError(c, err)
		return
	}
	h.recordEdit("remove", nil)
	c.Status(http.StatusNoContent)
}

func (h *ConceptHandler) recordEdit(op string, err error) {
	if h.metrics == nil {
		return
	}
	if err != nil {
		h.metrics.RegistryEdits.WithLabelValues(op, "rejected").Inc()
		h.metrics.ErrorsTotal.WithLabelValues(errors.GetCode(err).String()).Inc()
		return
	}
	h.metrics.RegistryEdits.WithLabelValues(op, "applied").Inc()
	h.metrics.ConceptsTotal.Set(float64(h.registry.Len()))
}
