package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Etropal00/ewick-ai-function/internal/relay"
	"github.com/Etropal00/ewick-ai-function/pkg/response"
)

// Generate godoc
// @Summary     Turn an idea into a production-ready prompt
// @Description Forwards the idea (and optional system text) to Gemini and returns the first candidate text.
// @Tags        Relay
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Idea and optional system text"
// @Success     200  {object} response.TextResp
// @Success     204  "CORS pre-flight"
// @Failure     400  {object} response.ErrorResp "Missing idea or invalid JSON"
// @Failure     405  {object} response.ErrorResp "Method Not Allowed"
// @Failure     500  {object} response.ErrorResp "Missing API key or upstream failure"
// @Router      /api/v1/ai [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	switch c.Request.Method {
	case http.MethodOptions:
		response.NoContent(c)
		return
	case http.MethodPost:
	default:
		response.Error(c, h.mapError(relay.ErrMethodNotAllowed))
		return
	}

	if err := h.uc.CheckCredentials(ctx); err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "relay.delivery.http.Generate: uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Text(c, output.Text)
}
