package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Belkouche/jarvis-sub000/internal/shared/errors"
)

// APIResponse is the standard envelope for all HTTP responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo describes an error in an API response.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse wraps a paginated list.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// NewListResponse builds a ListResponse with the derived page count.
func NewListResponse(items interface{}, total int64, page, pageSize int) ListResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// OKResponse sends a 200 response.
func OKResponse(c *gin.Context, data interface{}, message ...string) {
	response := APIResponse{Success: true, Data: data}
	if len(message) > 0 {
		response.Message = message[0]
	}
	c.JSON(http.StatusOK, response)
}

// CreatedResponse sends a 201 response.
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	response := APIResponse{Success: true, Data: data}
	if len(message) > 0 {
		response.Message = message[0]
	} else {
		response.Message = "resource created"
	}
	c.JSON(http.StatusCreated, response)
}

// ErrorResponse sends an error response with an explicit status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   &ErrorInfo{Type: "error", Message: message},
	})
}

// ErrorResponseWithError maps an error to the right status code and envelope.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, APIResponse{
			Success: false,
			Error: &ErrorInfo{
				Type:    string(appErr.Type),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Error:   &ErrorInfo{Type: string(errors.ErrorTypeInternal), Message: "internal server error"},
	})
}
