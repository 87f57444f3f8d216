package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Etropal00/ewick-ai-function/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "ewick-ai-function"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
		"time":    response.DateTime(time.Now()),
	})
}

// readyCheck reports whether the provider credential is configured.
// @Summary Readiness Check
// @Description Check if the API is ready to relay ideas
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	configured := srv.relayUC.CheckCredentials(ctx) == nil
	status := "ready"
	if !configured {
		status = "degraded"
	}

	data := gin.H{
		"status":              status,
		"version":             HealthVersion,
		"service":             ServiceName,
		"provider_configured": configured,
	}
	if srv.gemini != nil {
		data["model"] = srv.gemini.Model()
	}

	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
