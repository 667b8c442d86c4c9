package middleware

import (
	"strconv"
	"time"

	"mask-ledger/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware observes request latency labelled by the matched route
// template, so path parameters do not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
