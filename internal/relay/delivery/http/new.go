package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Etropal00/ewick-ai-function/internal/relay"
	"github.com/Etropal00/ewick-ai-function/pkg/log"
)

// Handler is the public interface for the relay HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc relay.UseCase
}

// New creates a new HTTP handler for the relay domain.
func New(l log.Logger, uc relay.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
