package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeBadRequest       ErrorCode = "REQ_001"
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInternalServer   ErrorCode = "SRV_001"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string      `json:"error" example:"Airline not found."`
	Code    ErrorCode   `json:"code,omitempty" example:"RES_001"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorResponse creates an error body
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: message,
		Code:  code,
	}
}

// WithDetails adds additional details to the error
func (e *ErrorResponse) WithDetails(details interface{}) *ErrorResponse {
	e.Details = details
	return e
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
