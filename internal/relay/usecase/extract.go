package usecase

import (
	"strings"

	"github.com/Etropal00/ewick-ai-function/pkg/gemini"
)

// extractText returns the trimmed first candidate text, or the fallback text.
func (uc *implUseCase) extractText(resp *gemini.GenerateResponse) string {
	text, ok := resp.FirstText()
	if !ok {
		return uc.opts.FallbackText
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return uc.opts.FallbackText
	}
	return text
}
