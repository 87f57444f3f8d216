package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Etropal00/ewick-ai-function/internal/metrics"
	"github.com/Etropal00/ewick-ai-function/internal/middleware"
	"github.com/Etropal00/ewick-ai-function/internal/relay"
	"github.com/Etropal00/ewick-ai-function/pkg/gemini"
	"github.com/Etropal00/ewick-ai-function/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware
	metrics         *metrics.PrometheusRecorder
	metricsPath     string

	// Relay domain
	gemini       gemini.IGemini
	relayPath    string
	relayOptions relay.Options
	relayUC      relay.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	CORS            middleware.CORSConfig

	// MetricsPath serves Prometheus metrics. Empty disables the route.
	MetricsPath string

	// Relay domain. Gemini may be nil when no API key is configured.
	Gemini       gemini.IGemini
	RelayPath    string
	RelayOptions relay.Options
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              middleware.New(logger, cfg.CORS),
		metricsPath:     cfg.MetricsPath,
		relayPath:       cfg.RelayPath,
		relayOptions:    cfg.RelayOptions,
	}
	// Unknown methods and near-miss paths must reach the middleware chain
	// instead of gin's plain-text 404 or a header-less redirect.
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.RedirectTrailingSlash = false

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec, err := metrics.NewPrometheusRecorder(registry)
	if err != nil {
		return nil, err
	}
	srv.metrics = rec
	srv.gemini = metrics.InstrumentGemini(cfg.Gemini, rec)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.relayPath == "" {
		return errors.New("relay path is required")
	}
	return nil
}
