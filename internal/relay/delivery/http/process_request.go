package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Etropal00/ewick-ai-function/internal/relay"
)

// processGenerateReq decodes exactly one JSON object from the body.
// An empty body reads as {}; trailing data after the object is rejected.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq

	raw, err := c.GetRawData()
	if err != nil {
		h.l.Warnf(c.Request.Context(), "relay.delivery.http.processGenerateReq: read body: %v", err)
		return generateReq{}, relay.ErrInvalidBody
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return req, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "relay.delivery.http.processGenerateReq: %v", err)
		return generateReq{}, relay.ErrInvalidBody
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		h.l.Warnf(c.Request.Context(), "relay.delivery.http.processGenerateReq: trailing data after JSON object")
		return generateReq{}, relay.ErrInvalidBody
	}

	return req, nil
}
