package usecase

import (
	"strings"

	"github.com/Etropal00/ewick-ai-function/internal/relay"
	"github.com/Etropal00/ewick-ai-function/pkg/gemini"
)

// buildPayload builds a single-turn request. The idea is embedded verbatim;
// system text goes through systemInstruction, never into the user turn.
func (uc *implUseCase) buildPayload(input relay.GenerateInput) gemini.GenerateRequest {
	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  gemini.RoleUser,
				Parts: []gemini.Part{{Text: gemini.BuildIdeaPrompt(uc.opts.PromptTemplate, input.Idea)}},
			},
		},
	}

	if strings.TrimSpace(input.System) != "" {
		req.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: input.System}},
		}
	}

	if uc.opts.Temperature > 0 || uc.opts.MaxOutputTokens > 0 {
		req.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     uc.opts.Temperature,
			MaxOutputTokens: uc.opts.MaxOutputTokens,
		}
	}

	if len(uc.opts.SafetySettings) > 0 {
		req.SafetySettings = append([]gemini.SafetySetting(nil), uc.opts.SafetySettings...)
	}

	return req
}
