package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veritaslex/arbilens/internal/application/argument"
	"github.com/veritaslex/arbilens/internal/domain/document"
	"github.com/veritaslex/arbilens/pkg/errors"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// ArgumentHandler exposes argument mining and the claimant/respondent
// comparative table.
type ArgumentHandler struct {
	miner *argument.Miner
	store *document.Store
}

// NewArgumentHandler constructs an ArgumentHandler.
func NewArgumentHandler(miner *argument.Miner, store *document.Store) *ArgumentHandler {
	return &ArgumentHandler{miner: miner, store: store}
}

// RegisterRoutes mounts argument endpoints under /arguments.
func (h *ArgumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ar := rg.Group("/arguments")
	ar.POST("/extract", h.Extract)
	ar.POST("/table", h.Table)
}

type extractRequest struct {
	DocID string `json:"doc_id" binding:"required"`
}

// Extract handles POST /api/v1/arguments/extract: mines one stored document
// and returns its argument summary.
func (h *ArgumentHandler) Extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	doc, ok := h.store.Get(req.DocID)
	if !ok {
		respondError(c, errors.New(errors.ErrCodeDocumentNotFound, "document not found").WithDetail(req.DocID))
		return
	}

	args := h.miner.Extract(doc.Text, doc.ID)
	c.JSON(http.StatusOK, argument.Summarize(doc.ID, args))
}

type tableRequest struct {
	// ClaimantRole and RespondentRole are matched as case-insensitive
	// substrings against each stored document's role label.
	ClaimantRole   string `json:"claimant_role"`
	RespondentRole string `json:"respondent_role"`
}

// Table handles POST /api/v1/arguments/table: partitions the stored
// documents by role, mines both sides, and lines their arguments up concept
// by concept.
func (h *ArgumentHandler) Table(c *gin.Context) {
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}
	if req.ClaimantRole == "" {
		req.ClaimantRole = "claimant"
	}
	if req.RespondentRole == "" {
		req.RespondentRole = "respondent"
	}

	claimantIDs := h.store.IDsByRole(req.ClaimantRole)
	respondentIDs := h.store.IDsByRole(req.RespondentRole)
	if len(claimantIDs) == 0 && len(respondentIDs) == 0 {
		respondError(c, errors.New(errors.ErrCodeRoleUnassigned,
			"no stored document matches either role label"))
		return
	}

	claimant := argument.Summarize(req.ClaimantRole, h.mineAll(claimantIDs))
	respondent := argument.Summarize(req.RespondentRole, h.mineAll(respondentIDs))
	rows := argument.BuildComparativeTable(claimant, respondent)

	c.JSON(http.StatusOK, gin.H{
		"claimant":   claimant,
		"respondent": respondent,
		"rows":       rows,
	})
}

func (h *ArgumentHandler) mineAll(ids []string) []analysis.Argument {
	args := make([]analysis.Argument, 0)
	for _, id := range ids {
		if doc, ok := h.store.Get(id); ok {
			args = append(args, h.miner.Extract(doc.Text, doc.ID)...)
		}
	}
	return args
}
