package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every API
// endpoint and by the recovery middleware.
type ErrorResponse struct {
	Message      string    `json:"message" example:"bid not found"`              // Human-readable summary
	ErrorDetails string    `json:"error,omitempty" example:"sql: no rows"`       // Underlying error text, if any
	Timestamp    time.Time `json:"timestamp" example:"2025-01-02T15:04:05.999Z"` // When the error response was built
}

// Error makes ErrorResponse usable as an error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
