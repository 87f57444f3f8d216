package middleware

import "github.com/Etropal00/ewick-ai-function/pkg/log"

// CORSConfig holds the values written on every response.
type CORSConfig struct {
	AllowOrigin  string
	AllowHeaders string
	AllowMethods string
}

type Middleware struct {
	l    log.Logger
	cors CORSConfig
}

func New(l log.Logger, cors CORSConfig) Middleware {
	if cors.AllowOrigin == "" {
		cors.AllowOrigin = "*"
	}
	if cors.AllowHeaders == "" {
		cors.AllowHeaders = "content-type"
	}
	if cors.AllowMethods == "" {
		cors.AllowMethods = "POST,OPTIONS"
	}

	return Middleware{
		l:    l,
		cors: cors,
	}
}

// CORS returns the header values in effect, defaults applied.
func (m Middleware) CORS() CORSConfig {
	return m.cors
}
