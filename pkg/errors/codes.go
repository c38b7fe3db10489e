package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeBadRequest    ErrorCode = "COMMON_002"
	ErrCodeNotFound      ErrorCode = "COMMON_003"
	ErrCodeConflict      ErrorCode = "COMMON_004"
	ErrCodeValidation    ErrorCode = "COMMON_005"
	ErrCodeSerialization ErrorCode = "COMMON_006"

	CodeOK      = ErrorCode("OK")
	CodeUnknown = ErrorCode("UNKNOWN")
)

// Concept registry error codes.  A rejected registry edit leaves the
// registry unchanged.
const (
	ErrCodeConceptExists    ErrorCode = "REG_001"
	ErrCodeConceptNotFound  ErrorCode = "REG_002"
	ErrCodeVariationsEmpty  ErrorCode = "REG_003"
	ErrCodeConceptNameEmpty ErrorCode = "REG_004"
	ErrCodeSeedFileInvalid  ErrorCode = "REG_005"
)

// Document error codes.
const (
	ErrCodeDocumentNotFound ErrorCode = "DOC_001"
	ErrCodeDocumentEmpty    ErrorCode = "DOC_002"
	// ErrCodeExtractionFailed is reserved for upload-boundary collaborators
	// reporting a text-decoding failure; a document that fails decoding must
	// never enter the document map.
	ErrCodeExtractionFailed ErrorCode = "DOC_003"
)

// Analysis error codes.
const (
	ErrCodeThresholdInvalid ErrorCode = "ANA_001"
	ErrCodeRoleUnassigned   ErrorCode = "ANA_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:      http.StatusInternalServerError,
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeConflict:      http.StatusConflict,
	ErrCodeValidation:    http.StatusUnprocessableEntity,
	ErrCodeSerialization: http.StatusInternalServerError,

	ErrCodeConceptExists:    http.StatusConflict,
	ErrCodeConceptNotFound:  http.StatusNotFound,
	ErrCodeVariationsEmpty:  http.StatusBadRequest,
	ErrCodeConceptNameEmpty: http.StatusBadRequest,
	ErrCodeSeedFileInvalid:  http.StatusInternalServerError,

	ErrCodeDocumentNotFound: http.StatusNotFound,
	ErrCodeDocumentEmpty:    http.StatusBadRequest,
	ErrCodeExtractionFailed: http.StatusUnprocessableEntity,

	ErrCodeThresholdInvalid: http.StatusBadRequest,
	ErrCodeRoleUnassigned:   http.StatusBadRequest,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:      "internal server error",
	ErrCodeBadRequest:    "bad request",
	ErrCodeNotFound:      "resource not found",
	ErrCodeConflict:      "resource conflict",
	ErrCodeValidation:    "validation failed",
	ErrCodeSerialization: "serialization failed",

	ErrCodeConceptExists:    "concept already exists",
	ErrCodeConceptNotFound:  "concept not found",
	ErrCodeVariationsEmpty:  "concept variations must not be empty",
	ErrCodeConceptNameEmpty: "concept name must not be empty",
	ErrCodeSeedFileInvalid:  "failed to load concept seed file",

	ErrCodeDocumentNotFound: "document not found",
	ErrCodeDocumentEmpty:    "document text must not be empty",
	ErrCodeExtractionFailed: "document text extraction failed",

	ErrCodeThresholdInvalid: "invalid score threshold",
	ErrCodeRoleUnassigned:   "document has no claimant/respondent role",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError reports whether the ErrorCode maps to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// ModuleForCode returns the module prefix of an ErrorCode ("REG", "DOC", ...).
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
