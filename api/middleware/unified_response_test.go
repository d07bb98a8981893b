package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveUnified(t *testing.T, handler gin.HandlerFunc, method, path string) (*httptest.ResponseRecorder, UnifiedResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(UnifiedResponseMiddleware())
	router.Handle(method, path, handler)

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var unified UnifiedResponse
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unified))
	}
	return w, unified
}

func TestEnvelopeWrapsSuccess(t *testing.T) {
	w, unified := serveUnified(t, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Website created successfully",
			"data":    gin.H{"name": "My Shop"},
		})
	}, http.MethodGet, "/api/websites")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, unified.Success)
	assert.Equal(t, http.StatusOK, unified.StatusCode)
	assert.Equal(t, "Website created successfully", unified.Message)

	data, ok := unified.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "My Shop", data["name"])
}

func TestEnvelopeUsesErrorKeyOnFailure(t *testing.T) {
	w, unified := serveUnified(t, func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Website not found"})
	}, http.MethodGet, "/api/websites/123")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, unified.Success)
	assert.Equal(t, "Website not found", unified.Message)
	assert.Nil(t, unified.Data)
}

func TestEnvelopeCarriesMeta(t *testing.T) {
	_, unified := serveUnified(t, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data": []string{"a", "b"},
			"meta": gin.H{"total": 2, "page": 1},
		})
	}, http.MethodGet, "/api/websites")

	require.NotNil(t, unified.Meta)
	meta, ok := unified.Meta.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, meta["total"])
}

func TestEnvelopeAutoMessages(t *testing.T) {
	_, unified := serveUnified(t, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": 1}})
	}, http.MethodPost, "/api/websites")
	assert.Equal(t, "Record created successfully", unified.Message)

	_, unified = serveUnified(t, func(c *gin.Context) {
		c.JSON(http.StatusTooManyRequests, gin.H{})
	}, http.MethodPost, "/api/auth/send-otp")
	assert.Equal(t, "Too many requests", unified.Message)
}

func TestHealthEndpointSkipsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(UnifiedResponseMiddleware())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "statusCode")
	assert.Contains(t, w.Body.String(), "healthy")
}
