package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the error taxonomy onto HTTP statuses.
// Upstream failures surface the upstream's message; everything else
// collapses to a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUpstreamNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrUpstreamUnavailable):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrInvalidSnapshot):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrHistoryStore):
		log.Printf("history store error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
