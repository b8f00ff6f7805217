package errors

import (
	"errors"
	"net/http"
)

// ErrorDetail is the body of an API error response.
type ErrorDetail struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the envelope returned by handlers on failure.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse builds the response body for an error, exposing only the
// hint and reportable details, never the internal message chain.
func NewErrorResponse(err error) ErrorResponse {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ErrorResponse{
			Success: false,
			Error: ErrorDetail{
				Message: ie.Hint(),
				Details: ie.Details(),
			},
		}
	}
	return ErrorResponse{
		Success: false,
		Error:   ErrorDetail{Message: "An unexpected error occurred"},
	}
}

// HTTPStatusFromErr maps an error class to an HTTP status code.
func HTTPStatusFromErr(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsInvalidOperation(err):
		return http.StatusUnprocessableEntity
	case IsPermissionDenied(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
