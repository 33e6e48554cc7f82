package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/metrics"
)

// Metrics returns a middleware that records HTTP metrics per route pattern
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		// unmatched paths share one label so arbitrary URLs cannot grow cardinality
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
