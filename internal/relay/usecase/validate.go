package usecase

import (
	"strings"

	"github.com/Etropal00/ewick-ai-function/internal/relay"
)

// validate only rejects a blank idea. system is free text.
func validate(input relay.GenerateInput) error {
	if strings.TrimSpace(input.Idea) == "" {
		return relay.ErrMissingIdea
	}
	return nil
}
