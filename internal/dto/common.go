package dto

// ErrorResponse is the failure envelope every error translates into.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// ErrorDetail carries a nested error message inside an otherwise successful
// response body.
type ErrorDetail struct {
	Message string `json:"message"`
}

// MessageResponse is the plain success envelope for mutations without a
// generated identifier.
type MessageResponse struct {
	Message string `json:"message"`
}
