//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"mask-ledger/internal/handler/middleware"
	"mask-ledger/internal/pkg/config"
	"mask-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("上限を超えると429", func(t *testing.T) {
		lim, err := middleware.NewPurchaseLimiter(config.RateLimitConfig{Enabled: true, Purchase: "2-M"})
		require.NoError(t, err)

		router := gin.New()
		router.POST("/purchase/", middleware.RateLimit(lim), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		for i := 0; i < 2; i++ {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/purchase/", nil)
			assert.Equal(t, http.StatusCreated, rec.Code, "request %d", i+1)
		}

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/purchase/", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
		httptest.AssertHeaders(t, rec, map[string]string{
			"X-RateLimit-Limit":     "2",
			"X-RateLimit-Remaining": "0",
		})
	})

	t.Run("不正なレート書式はエラー", func(t *testing.T) {
		_, err := middleware.NewPurchaseLimiter(config.RateLimitConfig{Enabled: true, Purchase: "fast"})
		assert.Error(t, err)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.MetricsMiddleware())
	router.GET("/pharmacies/:id/masks/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/pharmacies/7/masks/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
