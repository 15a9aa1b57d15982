package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/money_valuation/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// RequestMetrics records request counts and latencies by route template.
func RequestMetrics(collectors *metrics.HTTPCollectors) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collectors.Observe(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
