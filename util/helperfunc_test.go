package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHelper(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestResponseHelpers_StatusCodes(t *testing.T) {
	errParams := APIErrorParams{Msg: "failed", Err: errors.New("boom")}

	tests := []struct {
		name    string
		fn      func(c *gin.Context)
		status  int
		success bool
	}{
		{"not found", func(c *gin.Context) { CallErrorNotFound(c, errParams) }, http.StatusNotFound, false},
		{"user error", func(c *gin.Context) { CallUserError(c, errParams) }, http.StatusBadRequest, false},
		{"too many requests", func(c *gin.Context) { CallTooManyRequests(c, errParams) }, http.StatusTooManyRequests, false},
		{"server error", func(c *gin.Context) { CallServerError(c, errParams) }, http.StatusInternalServerError, false},
		{"unavailable", func(c *gin.Context) { CallServiceUnavailable(c, errParams) }, http.StatusServiceUnavailable, false},
		{"ok", func(c *gin.Context) { CallSuccessOK(c, APISuccessParams{Msg: "ok"}) }, http.StatusOK, true},
		{"created", func(c *gin.Context) { CallSuccessCreated(c, APISuccessParams{Msg: "ok"}) }, http.StatusCreated, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := runHelper(t, tt.fn)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.success, resp.Success)
			if !tt.success {
				assert.Equal(t, "boom", resp.Error)
				assert.Equal(t, "failed", resp.Msg)
			}
		})
	}
}

func TestCallValidationError_IncludesFields(t *testing.T) {
	w, resp := runHelper(t, func(c *gin.Context) {
		CallValidationError(c, APIErrorParams{Msg: "Invalid log", Err: errors.New("validation failed")},
			map[string]string{"source_ip": "enter a valid IPv4 or IPv6 address"})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	fields, ok := data["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "enter a valid IPv4 or IPv6 address", fields["source_ip"])
}
