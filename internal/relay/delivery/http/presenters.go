package http

import "github.com/Etropal00/ewick-ai-function/internal/relay"

// --- Request DTOs ---

type generateReq struct {
	Idea   string `json:"idea"`
	System string `json:"system"`
}

func (r generateReq) toInput() relay.GenerateInput {
	return relay.GenerateInput{
		Idea:   r.Idea,
		System: r.System,
	}
}
