//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"mask-ledger/internal/handler/httperr"
	"mask-ledger/internal/handler/middleware"
	"mask-ledger/internal/pkg/config"
	"mask-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandling(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})
	router.GET("/silent", func(_ *gin.Context) {})
	router.GET("/public", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errors.New("bad input"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.New(http.StatusBadRequest, "count must be a non-negative integer", nil),
		})
	})

	t.Run("パニックは500に変換される", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("何も書かないハンドラは500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("未書き込みの公開エラーはMetaのまま返す", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "count must be a non-negative integer")
	})
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowCredentials: true,
	}

	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/users/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/users/", map[string]string{"Origin": "http://client.test"})
	assert.Equal(t, http.StatusOK, req.Code)
	assert.Equal(t, "*", req.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, req.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddlewareListedOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.CORSConfig{
		AllowOrigins:     []string{"http://client.test"},
		AllowMethods:     []string{"GET", "POST"},
		AllowCredentials: true,
	}

	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/users/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/users/", map[string]string{"Origin": "http://client.test"})
	assert.Equal(t, http.StatusOK, req.Code)
	assert.Equal(t, "http://client.test", req.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", req.Header().Get("Access-Control-Allow-Credentials"))
}
