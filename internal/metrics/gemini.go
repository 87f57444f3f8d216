package metrics

import (
	"context"
	"time"

	"github.com/Etropal00/ewick-ai-function/pkg/gemini"
)

type instrumentedGemini struct {
	next gemini.IGemini
	rec  Recorder
}

// InstrumentGemini wraps client so every GenerateContent call is observed.
// A nil client stays nil.
func InstrumentGemini(client gemini.IGemini, rec Recorder) gemini.IGemini {
	if client == nil || rec == nil {
		return client
	}
	return &instrumentedGemini{next: client, rec: rec}
}

func (g *instrumentedGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	start := time.Now()
	resp, err := g.next.GenerateContent(ctx, req)

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	g.rec.ObserveUpstream(g.next.Model(), outcome, time.Since(start))

	return resp, err
}

func (g *instrumentedGemini) Model() string {
	return g.next.Model()
}
