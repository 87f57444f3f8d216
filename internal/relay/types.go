package relay

import "github.com/Etropal00/ewick-ai-function/pkg/gemini"

// --- UseCase Inputs ---

type GenerateInput struct {
	Idea   string
	System string
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Text string
}

// Options controls how payloads are built and responses shaped.
type Options struct {
	PromptTemplate  string
	FallbackText    string
	Temperature     float64
	MaxOutputTokens int
	SafetySettings  []gemini.SafetySetting
}
