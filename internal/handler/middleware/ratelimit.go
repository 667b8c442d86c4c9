package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"mask-ledger/internal/handler/httperr"
	"mask-ledger/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

var errRateLimited = errors.New("rate limit exceeded")

// NewPurchaseLimiter builds an in-memory limiter from cfg.Purchase.
func NewPurchaseLimiter(cfg config.RateLimitConfig) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.Purchase)
	if err != nil {
		return nil, fmt.Errorf("invalid purchase rate %q: %w", cfg.Purchase, err)
	}
	slog.Info("Rate limiter initialized", "route", "purchase", "limit", rate.Limit, "period", rate.Period)
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit limits requests per client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, err := limiterInstance.Get(c.Request.Context(), c.ClientIP())
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(ctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(ctx.Remaining, 10))

		if ctx.Reached {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests, please slow down", nil)
			return
		}
	}
}
