package usecase

import (
	"github.com/Etropal00/ewick-ai-function/internal/relay"
	"github.com/Etropal00/ewick-ai-function/pkg/gemini"
	"github.com/Etropal00/ewick-ai-function/pkg/log"
)

// DefaultFallbackText is returned when the provider produced no text.
const DefaultFallbackText = "No text generated."

// implUseCase is the private implementation of relay.UseCase.
type implUseCase struct {
	l      log.Logger
	client gemini.IGemini
	opts   relay.Options
}

// New creates a relay UseCase. client may be nil when no API key is
// configured; every call then fails with relay.ErrMissingAPIKey.
func New(l log.Logger, client gemini.IGemini, opts relay.Options) relay.UseCase {
	return newImpl(l, client, opts)
}

func newImpl(l log.Logger, client gemini.IGemini, opts relay.Options) *implUseCase {
	if opts.PromptTemplate == "" {
		opts.PromptTemplate = gemini.IdeaPromptTemplate
	}
	if opts.FallbackText == "" {
		opts.FallbackText = DefaultFallbackText
	}

	return &implUseCase{
		l:      l,
		client: client,
		opts:   opts,
	}
}
