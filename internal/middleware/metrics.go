package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Etropal00/ewick-ai-function/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics observes every request after the handler chain has finished.
func (m Middleware) Metrics(rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		rec.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
