package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ROUTE_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response defines the unified envelope the error handler emits
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}
