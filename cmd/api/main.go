package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Etropal00/ewick-ai-function/config"
	_ "github.com/Etropal00/ewick-ai-function/docs" // Swagger docs
	"github.com/Etropal00/ewick-ai-function/internal/httpserver"
	"github.com/Etropal00/ewick-ai-function/internal/middleware"
	"github.com/Etropal00/ewick-ai-function/internal/relay"
	"github.com/Etropal00/ewick-ai-function/pkg/gemini"
	"github.com/Etropal00/ewick-ai-function/pkg/log"
)

// @title       ewick-ai-function API
// @description Relays a free-text idea to Gemini and returns a single production-ready prompt.
// @version     1.0
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ewick-ai-function...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini client (optional: without a key every relay call answers 500)
	var geminiClient gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		geminiClient, err = gemini.New(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			APIURL:  cfg.Gemini.APIURL,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Gemini client: ", err)
			return
		}
		logger.Infof(ctx, "Gemini client initialized (model %s)", geminiClient.Model())
	} else {
		logger.Warn(ctx, "GOOGLE_API_KEY is missing: relay requests will fail until it is set")
	}

	safety := make([]gemini.SafetySetting, 0, len(cfg.Relay.SafetySettings))
	for _, s := range cfg.Relay.SafetySettings {
		safety = append(safety, gemini.SafetySetting{Category: s.Category, Threshold: s.Threshold})
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		CORS: middleware.CORSConfig{
			AllowOrigin:  cfg.CORS.AllowOrigin,
			AllowHeaders: cfg.CORS.AllowHeaders,
			AllowMethods: cfg.CORS.AllowMethods,
		},
		MetricsPath: cfg.Metrics.Path,
		Gemini:      geminiClient,
		RelayPath:   cfg.Relay.Path,
		RelayOptions: relay.Options{
			PromptTemplate:  cfg.Relay.PromptTemplate,
			FallbackText:    cfg.Relay.FallbackText,
			Temperature:     cfg.Relay.Temperature,
			MaxOutputTokens: cfg.Relay.MaxOutputTokens,
			SafetySettings:  safety,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
