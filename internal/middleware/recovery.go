package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Etropal00/ewick-ai-function/pkg/response"
)

// Recovery turns a panic into a JSON 500 instead of a bare connection reset.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		ctx := c.Request.Context()
		m.l.Errorf(ctx, "middleware.Recovery: panic recovered: %v", recovered)
		response.InternalError(c, fmt.Errorf("panic: %v", recovered))
	})
}
