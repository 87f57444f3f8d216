package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Etropal00/ewick-ai-function/internal/model"
	pkgErrors "github.com/Etropal00/ewick-ai-function/pkg/errors"
	"github.com/Etropal00/ewick-ai-function/pkg/response"
)

const (
	msgNotFound         = "Not Found"
	msgMethodNotAllowed = "Method Not Allowed"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerFallbacks()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	// CORS first so every later path, recovered panics included, carries it.
	srv.gin.Use(srv.mw.Cors(), srv.mw.RequestID())
	if srv.mode != gin.ReleaseMode && srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}
	srv.gin.Use(srv.mw.Metrics(srv.metrics), srv.mw.Recovery())

	ctx := context.Background()
	cors := srv.mw.CORS()
	srv.l.Infof(ctx, "CORS: origin=%s headers=%s methods=%s", cors.AllowOrigin, cors.AllowHeaders, cors.AllowMethods)
	if srv.environment == string(model.EnvironmentProduction) && cors.AllowOrigin == "*" {
		srv.l.Warnf(ctx, "CORS allows any origin in %s", srv.environment)
	}
}

// registerFallbacks renders JSON for unmatched paths and for methods a
// path does not serve (e.g. PROPFIND on the relay route).
func (srv *HTTPServer) registerFallbacks() {
	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, msgNotFound))
	})
	srv.gin.NoMethod(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusMethodNotAllowed, msgMethodNotAllowed))
	})
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metricsPath != "" {
		srv.gin.GET(srv.metricsPath, srv.metrics.Handler())
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if err := srv.setupRelayDomain(ctx); err != nil {
		return err
	}

	return nil
}
