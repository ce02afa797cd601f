// Package dto defines the HTTP response envelopes and error codes.
package dto

// ListResponse is the shape of every list endpoint: the items plus the total
// count. The consumer front end binds this exact contract.
type ListResponse struct {
	Data  any   `json:"data"`
	Total int64 `json:"total"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope. Upstream error text never reaches the
// client; Message is always a sanitized description.
type ErrorResponse struct {
	Error     ErrorInfo `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// NewListResponse creates a list response
func NewListResponse(data any, total int64) ListResponse {
	return ListResponse{Data: data, Total: total}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     ErrorInfo{Code: code, Message: message},
		RequestID: requestID,
	}
}

// ListRequest represents common list/pagination request parameters
type ListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
}
