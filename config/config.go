package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Etropal00/ewick-ai-function/pkg/gemini"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	Metrics    MetricsConfig

	// Provider
	Gemini GeminiConfig

	// Relay endpoint
	Relay RelayConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
}

type CORSConfig struct {
	AllowOrigin  string
	AllowHeaders string
	AllowMethods string
}

type MetricsConfig struct {
	Path string
}

// GeminiConfig holds the Generative Language API settings.
// An empty APIKey is allowed: the relay then answers 500 on every call.
type GeminiConfig struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

type RelayConfig struct {
	Path            string
	PromptTemplate  string
	FallbackText    string
	Temperature     float64
	MaxOutputTokens int
	SafetySettings  []SafetySettingConfig
}

type SafetySettingConfig struct {
	Category  string `yaml:"category"`
	Threshold string `yaml:"threshold"`
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first (existing env wins).
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")

	cfg.CORS.AllowOrigin = v.GetString("cors.allow_origin")
	cfg.CORS.AllowHeaders = v.GetString("cors.allow_headers")
	cfg.CORS.AllowMethods = v.GetString("cors.allow_methods")

	cfg.Metrics.Path = v.GetString("metrics.path")

	// Gemini
	cfg.Gemini.APIKey = v.GetString("gemini.api_key")
	if googleKey := v.GetString("google_api_key"); googleKey != "" {
		cfg.Gemini.APIKey = googleKey
	}
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")

	// Relay
	cfg.Relay.Path = v.GetString("relay.path")
	cfg.Relay.PromptTemplate = v.GetString("relay.prompt_template")
	cfg.Relay.FallbackText = v.GetString("relay.fallback_text")
	cfg.Relay.Temperature = v.GetFloat64("relay.temperature")
	cfg.Relay.MaxOutputTokens = v.GetInt("relay.max_output_tokens")

	if v.IsSet("relay.safety_settings") {
		if settingsList, ok := v.Get("relay.safety_settings").([]interface{}); ok {
			for _, s := range settingsList {
				if settingMap, ok := s.(map[string]interface{}); ok {
					cfg.Relay.SafetySettings = append(cfg.Relay.SafetySettings, SafetySettingConfig{
						Category:  getStringFromMap(settingMap, "category"),
						Threshold: getStringFromMap(settingMap, "threshold"),
					})
				}
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.file_path", "")

	v.SetDefault("cors.allow_origin", "*")
	v.SetDefault("cors.allow_headers", "content-type")
	v.SetDefault("cors.allow_methods", "POST,OPTIONS")

	v.SetDefault("metrics.path", "/metrics")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.api_url", gemini.DefaultAPIURL)
	v.SetDefault("gemini.model", gemini.DefaultModel)
	v.SetDefault("gemini.timeout", gemini.DefaultTimeout.String())

	// Relay defaults
	v.SetDefault("relay.path", "/api/v1/ai")
	v.SetDefault("relay.prompt_template", gemini.IdeaPromptTemplate)
	v.SetDefault("relay.fallback_text", "No text generated.")
	v.SetDefault("relay.temperature", 0)
	v.SetDefault("relay.max_output_tokens", 0)
}

// validate rejects configurations the server cannot start with.
func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if !strings.HasPrefix(cfg.Relay.Path, "/") {
		return fmt.Errorf("relay.path must start with '/', got %q", cfg.Relay.Path)
	}
	if !strings.Contains(cfg.Relay.PromptTemplate, gemini.IdeaPlaceholder) {
		return fmt.Errorf("relay.prompt_template must contain %s", gemini.IdeaPlaceholder)
	}
	if cfg.Metrics.Path != "" && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/', got %q", cfg.Metrics.Path)
	}
	if cfg.Metrics.Path != "" && cfg.Metrics.Path == cfg.Relay.Path {
		return fmt.Errorf("metrics.path and relay.path must differ")
	}
	if cfg.Relay.Temperature < 0 {
		return fmt.Errorf("relay.temperature must not be negative")
	}
	if cfg.Relay.MaxOutputTokens < 0 {
		return fmt.Errorf("relay.max_output_tokens must not be negative")
	}
	for i, s := range cfg.Relay.SafetySettings {
		if s.Category == "" || s.Threshold == "" {
			return fmt.Errorf("relay.safety_settings[%d]: category and threshold are required", i)
		}
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
