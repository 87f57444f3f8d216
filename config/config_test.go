package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Etropal00/ewick-ai-function/pkg/gemini"
)

// isolate runs the test from an empty directory with provider env cleared.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "RELAY_PATH", "HTTP_SERVER_PORT", "RELAY_PROMPT_TEMPLATE", "METRICS_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.Mode != "debug" {
		t.Errorf("unexpected server defaults: %+v", cfg.HTTPServer)
	}
	if cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected shutdown timeout: %v", cfg.HTTPServer.ShutdownTimeout)
	}
	if cfg.Gemini.APIKey != "" {
		t.Errorf("expected no api key, got %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.APIURL != gemini.DefaultAPIURL || cfg.Gemini.Model != gemini.DefaultModel {
		t.Errorf("unexpected gemini defaults: %+v", cfg.Gemini)
	}
	if cfg.Gemini.Timeout != gemini.DefaultTimeout {
		t.Errorf("unexpected gemini timeout: %v", cfg.Gemini.Timeout)
	}
	if cfg.Relay.Path != "/api/v1/ai" {
		t.Errorf("unexpected relay path: %q", cfg.Relay.Path)
	}
	if cfg.Relay.PromptTemplate != gemini.IdeaPromptTemplate {
		t.Errorf("unexpected prompt template: %q", cfg.Relay.PromptTemplate)
	}
	if cfg.Relay.FallbackText == "" {
		t.Errorf("fallback text must have a default")
	}
	if cfg.CORS.AllowOrigin != "*" || cfg.CORS.AllowHeaders != "content-type" || cfg.CORS.AllowMethods != "POST,OPTIONS" {
		t.Errorf("unexpected cors defaults: %+v", cfg.CORS)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("unexpected metrics path: %q", cfg.Metrics.Path)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)

	t.Run("GEMINI_API_KEY", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "from-gemini-env")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Gemini.APIKey != "from-gemini-env" {
			t.Errorf("expected GEMINI_API_KEY, got %q", cfg.Gemini.APIKey)
		}
	})

	t.Run("GOOGLE_API_KEY wins", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "from-gemini-env")
		t.Setenv("GOOGLE_API_KEY", "from-google-env")
		t.Setenv("HTTP_SERVER_PORT", "9090")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Gemini.APIKey != "from-google-env" {
			t.Errorf("expected GOOGLE_API_KEY, got %q", cfg.Gemini.APIKey)
		}
		if cfg.HTTPServer.Port != 9090 {
			t.Errorf("expected port override, got %d", cfg.HTTPServer.Port)
		}
	})
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GOOGLE_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("GOOGLE_API_KEY") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gemini.APIKey != "from-dotenv" {
		t.Errorf("expected key from .env, got %q", cfg.Gemini.APIKey)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)

	yaml := `
http_server:
  port: 9000
gemini:
  model: gemini-2.5-flash
  timeout: 5s
relay:
  path: /.netlify/functions/ai
  prompt_template: "Describe {idea} in one sentence."
  fallback_text: "Ajoute plus de détails à ton idée."
  temperature: 0.4
  max_output_tokens: 256
  safety_settings:
    - category: HARM_CATEGORY_HARASSMENT
      threshold: BLOCK_ONLY_HIGH
    - category: HARM_CATEGORY_DANGEROUS_CONTENT
      threshold: BLOCK_MEDIUM_AND_ABOVE
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 9000 {
		t.Errorf("unexpected port: %d", cfg.HTTPServer.Port)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" || cfg.Gemini.Timeout != 5*time.Second {
		t.Errorf("unexpected gemini config: %+v", cfg.Gemini)
	}
	if cfg.Relay.Path != "/.netlify/functions/ai" {
		t.Errorf("unexpected relay path: %q", cfg.Relay.Path)
	}
	if cfg.Relay.Temperature != 0.4 || cfg.Relay.MaxOutputTokens != 256 {
		t.Errorf("unexpected generation config: %+v", cfg.Relay)
	}
	if !strings.HasPrefix(cfg.Relay.FallbackText, "Ajoute") {
		t.Errorf("unexpected fallback text: %q", cfg.Relay.FallbackText)
	}
	if len(cfg.Relay.SafetySettings) != 2 {
		t.Fatalf("expected 2 safety settings, got %+v", cfg.Relay.SafetySettings)
	}
	if cfg.Relay.SafetySettings[1].Category != "HARM_CATEGORY_DANGEROUS_CONTENT" ||
		cfg.Relay.SafetySettings[1].Threshold != "BLOCK_MEDIUM_AND_ABOVE" {
		t.Errorf("unexpected safety setting: %+v", cfg.Relay.SafetySettings[1])
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"template without placeholder", map[string]string{"RELAY_PROMPT_TEMPLATE": "no placeholder"}, "prompt_template"},
		{"relative path", map[string]string{"RELAY_PATH": "ai"}, "relay.path"},
		{"zero port", map[string]string{"HTTP_SERVER_PORT": "0"}, "http_server.port"},
		{"relative metrics path", map[string]string{"METRICS_PATH": "metrics"}, "metrics.path"},
		{"metrics on relay path", map[string]string{"METRICS_PATH": "/api/v1/ai"}, "metrics.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
