package middleware

import "github.com/gin-gonic/gin"

// Cors sets the CORS headers before any handler runs, so error paths,
// pre-flights and recovered panics all carry them.
func (m Middleware) Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", m.cors.AllowOrigin)
		h.Set("Access-Control-Allow-Headers", m.cors.AllowHeaders)
		h.Set("Access-Control-Allow-Methods", m.cors.AllowMethods)
		c.Next()
	}
}
