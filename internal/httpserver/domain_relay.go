package httpserver

import (
	"context"

	relayHTTP "github.com/Etropal00/ewick-ai-function/internal/relay/delivery/http"
	relayUC "github.com/Etropal00/ewick-ai-function/internal/relay/usecase"
)

// setupRelayDomain initializes the relay domain and registers its route.
func (srv *HTTPServer) setupRelayDomain(ctx context.Context) error {
	// 1. UseCase
	srv.relayUC = relayUC.New(srv.l, srv.gemini, srv.relayOptions)

	// 2. HTTP Handler
	h := relayHTTP.New(srv.l, srv.relayUC)

	// 3. Routes: every method on the relay path
	relayHTTP.RegisterRoutes(srv.gin, srv.relayPath, h)

	if srv.gemini == nil {
		srv.l.Warnf(ctx, "Relay registered at %s without API key: requests will fail with 500", srv.relayPath)
	} else {
		srv.l.Infof(ctx, "Relay registered at %s (model %s)", srv.relayPath, srv.gemini.Model())
	}
	return nil
}
