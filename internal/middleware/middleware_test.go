package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Etropal00/ewick-ai-function/internal/middleware"
	"github.com/Etropal00/ewick-ai-function/pkg/log"
	"github.com/Etropal00/ewick-ai-function/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Cors(), mw.RequestID(), mw.Recovery())
	return r
}

func TestCors(t *testing.T) {
	t.Run("Defaults on every response", func(t *testing.T) {
		r := newEngine(middleware.New(&mockLogger{}, middleware.CORSConfig{}))
		r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		r.GET("/bad", func(c *gin.Context) { c.AbortWithStatus(http.StatusBadRequest) })

		for _, path := range []string{"/ok", "/bad", "/missing"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("%s: unexpected allow-origin %q", path, got)
			}
			if got := w.Header().Get("Access-Control-Allow-Headers"); got != "content-type" {
				t.Errorf("%s: unexpected allow-headers %q", path, got)
			}
			if got := w.Header().Get("Access-Control-Allow-Methods"); got != "POST,OPTIONS" {
				t.Errorf("%s: unexpected allow-methods %q", path, got)
			}
		}
	})

	t.Run("Configured values", func(t *testing.T) {
		r := newEngine(middleware.New(&mockLogger{}, middleware.CORSConfig{AllowOrigin: "https://ewick.app"}))
		r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://ewick.app" {
			t.Errorf("unexpected allow-origin %q", got)
		}
	})
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.New(&mockLogger{}, middleware.CORSConfig{}))

	var seen string
	r.GET("/id", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

		id := w.Header().Get(middleware.HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("expected generated uuid, got %q", id)
		}
		if seen != id {
			t.Errorf("context id %q does not match header %q", seen, id)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(middleware.HeaderRequestID, "caller-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got != "caller-42" {
			t.Errorf("expected caller id echoed, got %q", got)
		}
		if seen != "caller-42" {
			t.Errorf("expected caller id in context, got %q", seen)
		}
	})
}

func TestRecovery(t *testing.T) {
	r := newEngine(middleware.New(&mockLogger{}, middleware.CORSConfig{}))
	r.POST("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header missing on recovered panic")
	}

	var resp response.ErrorResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected JSON body: %v", err)
	}
	if resp.Error != response.DefaultErrorMessage || resp.Detail != "panic: kaboom" {
		t.Errorf("unexpected body: %+v", resp)
	}
}
