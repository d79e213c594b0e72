package dto

import (
	"net/http"
	"strings"
)

// Error codes the HTTP layer raises itself
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidID    = "INVALID_ID"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall through to the prefix rules in GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidID:    http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeInternal:     http.StatusInternalServerError,

	"VALIDATION_ERROR": http.StatusBadRequest,
	"INVALID_INPUT":    http.StatusBadRequest,

	"USER_NOT_FOUND": http.StatusNotFound,
	"ITEM_NOT_FOUND": http.StatusNotFound,

	"INVALID_TRANSITION":   http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"ITEM_ALREADY_EXISTS":  http.StatusConflict,
	"STALL_ALREADY_EXISTS": http.StatusConflict,
	"USERNAME_TAKEN":       http.StatusConflict,
	"ALREADY_OCCUPIED":     http.StatusConflict,
	"STALL_NOT_VACANT":     http.StatusConflict,
	"EMPTY_ORDER":          http.StatusConflict,

	"THRESHOLD_EXCEEDED":          http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":          http.StatusUnprocessableEntity,
	"MISSING_ID_ARTIFACT":         http.StatusUnprocessableEntity,
	"NOT_YET_EFFECTIVE":           http.StatusUnprocessableEntity,
	"APPROVAL_NOT_PERMITTED":      http.StatusForbidden,
	"CHECK_REQUEST_NOT_PERMITTED": http.StatusForbidden,
	"RELEASE_NOT_PERMITTED":       http.StatusForbidden,

	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"TENANT_INACTIVE":     http.StatusForbidden,

	"STORAGE_CORRUPT":     http.StatusInternalServerError,
	"PARTIAL_FAILURE":     http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
	"UNDER_MAINTENANCE":   http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// Unlisted INVALID_* and MISSING_* codes are client errors, everything
// else unknown is treated as an internal failure.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasPrefix(code, "MISSING_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
