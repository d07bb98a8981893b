package middleware

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
)

// UnifiedResponse is the envelope every API response is wrapped in
type UnifiedResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Meta       interface{} `json:"meta,omitempty"`
}

// responseWriter wraps gin.ResponseWriter to capture the handler output
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
}

// UnifiedResponseMiddleware transforms all handler responses into the
// standard envelope. Handlers keep writing plain gin.H payloads; error
// bodies use the "error" key, list handlers may attach "meta".
func UnifiedResponseMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldSkipUnifiedResponse(c) {
			c.Next()
			return
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			status:         200,
		}
		c.Writer = w

		c.Next()

		statusCode := w.status
		unified := transformToUnifiedResponse(c, w.body.String(), statusCode)

		w.ResponseWriter.Header().Set("Content-Type", "application/json")
		w.ResponseWriter.WriteHeader(statusCode)
		json.NewEncoder(w.ResponseWriter).Encode(unified)
	}
}

// transformToUnifiedResponse converts the captured handler output into
// the envelope
func transformToUnifiedResponse(c *gin.Context, originalResponse string, statusCode int) UnifiedResponse {
	isSuccess := statusCode >= 200 && statusCode < 300

	unified := UnifiedResponse{
		Success:    isSuccess,
		StatusCode: statusCode,
		Message:    getAutoMessage(c.Request.Method, statusCode, isSuccess),
	}

	if originalResponse == "" {
		return unified
	}

	var originalData interface{}
	if err := json.Unmarshal([]byte(originalResponse), &originalData); err != nil {
		unified.Data = originalResponse
		return unified
	}

	dataMap, isMap := originalData.(map[string]interface{})
	if !isMap {
		unified.Data = originalData
		return unified
	}

	if msg, exists := dataMap["message"]; exists {
		if msgStr, ok := msg.(string); ok && msgStr != "" {
			unified.Message = msgStr
		}
	}

	if !isSuccess {
		if errMsg, exists := dataMap["error"]; exists {
			if errStr, ok := errMsg.(string); ok && errStr != "" {
				unified.Message = errStr
			}
		}
		return unified
	}

	if meta, exists := dataMap["meta"]; exists {
		unified.Meta = meta
	}

	if data, exists := dataMap["data"]; exists {
		unified.Data = data
	} else {
		unified.Data = originalData
	}

	return unified
}

// getAutoMessage generates fallback success/error messages
func getAutoMessage(method string, statusCode int, isSuccess bool) string {
	if isSuccess {
		switch method {
		case "POST":
			return "Record created successfully"
		case "PUT", "PATCH":
			return "Record updated successfully"
		case "DELETE":
			return "Record deleted successfully"
		case "GET":
			return "Data retrieved successfully"
		default:
			return "Operation completed successfully"
		}
	}

	switch statusCode {
	case 400:
		return "Invalid request data"
	case 401:
		return "Authentication required"
	case 403:
		return "Permission denied"
	case 404:
		return "Resource not found"
	case 409:
		return "Resource already exists"
	case 422:
		return "Validation failed"
	case 429:
		return "Too many requests"
	case 500:
		return "Internal server error"
	default:
		return "Operation failed"
	}
}

// shouldSkipUnifiedResponse checks if the request path should skip the
// envelope (docs, health probes)
func shouldSkipUnifiedResponse(c *gin.Context) bool {
	path := c.Request.URL.Path

	excludePaths := []string{
		"/swagger",
		"/docs",
		"/health",
	}

	for _, excludePath := range excludePaths {
		if strings.HasPrefix(path, excludePath) {
			return true
		}
	}

	return false
}
