package http

import (
	"errors"
	"net/http"

	"github.com/Etropal00/ewick-ai-function/internal/relay"
	pkgErrors "github.com/Etropal00/ewick-ai-function/pkg/errors"
	"github.com/Etropal00/ewick-ai-function/pkg/response"
)

// Client-facing messages.
const (
	msgMethodNotAllowed = "Method Not Allowed"
	msgInvalidBody      = "Invalid JSON body."
	msgMissingIdea      = "Missing 'idea' in request body."
	msgMissingAPIKey    = "GOOGLE_API_KEY not set."
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Credentials never reach the detail: the gemini client redacts them.
func (h *handler) mapError(err error) error {
	var upstream *relay.UpstreamError

	switch {
	case errors.Is(err, relay.ErrMethodNotAllowed):
		return pkgErrors.NewHTTPError(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	case errors.Is(err, relay.ErrInvalidBody):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgInvalidBody)
	case errors.Is(err, relay.ErrMissingIdea):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgMissingIdea)
	case errors.Is(err, relay.ErrMissingAPIKey):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, msgMissingAPIKey)
	case errors.As(err, &upstream):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage).
			WithDetail(upstream.Err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage).
			WithDetail(err.Error())
	}
}
