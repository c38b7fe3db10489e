// Package handlers contains the gin HTTP handlers for the ArbiLens API.
// Handlers translate between JSON request/response envelopes and the
// application services; no analysis logic lives here.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veritaslex/arbilens/pkg/errors"
)

// ErrorResponse is the standard error envelope returned on every failure.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// respondError maps an error to its HTTP status via the error-code tables
// and writes the standard envelope.  Unknown error types are masked as an
// internal error so stack detail never leaks to clients.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	ae := errors.FromError(err)
	if ae == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    errors.ErrCodeInternal.String(),
			Message: errors.DefaultMessageForCode(errors.ErrCodeInternal),
		})
		return
	}

	c.JSON(errors.HTTPStatusForCode(ae.Code), ErrorResponse{
		Code:    ae.Code.String(),
		Message: ae.Message,
		Detail:  ae.Detail,
	})
}

// respondInvalid rejects a request whose body failed binding.
func respondInvalid(c *gin.Context, err error) {
	respondError(c, errors.InvalidParam("invalid request body").WithCause(err))
}
