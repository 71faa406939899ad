package dto

import "time"

// APIResponse is the uniform response envelope. Every endpoint, success or
// failure, returns this shape.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewSuccessResponse creates a success envelope around a payload
func NewSuccessResponse(message string, payload interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// NewErrorResponse creates a failure envelope with a nil payload
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   message,
		Payload:   nil,
		Timestamp: time.Now().UTC(),
	}
}

// NewErrorResponseWithDetails creates a failure envelope carrying detail data,
// used for field-level validation errors.
func NewErrorResponseWithDetails(message string, details interface{}) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   message,
		Payload:   details,
		Timestamp: time.Now().UTC(),
	}
}
