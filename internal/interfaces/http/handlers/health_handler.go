package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports the health of one internal component.
type HealthChecker interface {
	Name() string
	Check() error
}

// HealthHandler serves liveness and readiness probes.  The engine has no
// external dependencies, so readiness only verifies internal components
// (seeded registry, document store reachability).
type HealthHandler struct {
	checkers []HealthChecker
	version  string
	startAt  time.Time
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(version string, checkers ...HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers, version: version, startAt: time.Now()}
}

// RegisterRoutes mounts the probes at the engine root, outside /api/v1.
func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)
}

// Liveness handles GET /healthz.  It confirms the process is serving and
// never consults components.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startAt).Round(time.Second).String(),
	})
}

type componentStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Readiness handles GET /readyz.  Any failing checker turns the probe 503.
func (h *HealthHandler) Readiness(c *gin.Context) {
	components := make([]componentStatus, 0, len(h.checkers))
	ready := true
	for _, chk := range h.checkers {
		st := componentStatus{Name: chk.Name(), Status: "ok"}
		if err := chk.Check(); err != nil {
			st.Status = "failed"
			st.Error = err.Error()
			ready = false
		}
		components = append(components, st)
	}

	status := http.StatusOK
	body := gin.H{"status": "ready", "components": components}
	if !ready {
		status = http.StatusServiceUnavailable
		body["status"] = "not ready"
	}
	c.JSON(status, body)
}
