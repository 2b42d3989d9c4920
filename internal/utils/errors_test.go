package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/portfolio/internal/api/dto/common"
)

func performError(t *testing.T, status int, code common.ErrorCode) common.APIResponse {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		HandleAPIError(c, errors.New("upstream said no"), status, code, "Something failed")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, status, w.Code)

	var body common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleAPIErrorHidesServerErrorDetails(t *testing.T) {
	body := performError(t, http.StatusInternalServerError, common.ErrCodeInternalServer)

	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	assert.Equal(t, "Something failed", body.Error.Message)
	assert.Nil(t, body.Error.Details)
}

func TestHandleAPIErrorShowsClientErrorDetailsOutsideRelease(t *testing.T) {
	body := performError(t, http.StatusBadRequest, common.ErrCodeBadRequest)

	require.NotNil(t, body.Error)
	assert.Equal(t, "upstream said no", body.Error.Details)
}
