package usecase

import (
	"context"

	"github.com/Etropal00/ewick-ai-function/internal/relay"
)

// CheckCredentials reports whether a provider client is configured.
func (uc *implUseCase) CheckCredentials(ctx context.Context) error {
	if uc.client == nil {
		return relay.ErrMissingAPIKey
	}
	return nil
}

// Generate runs credentials check, validation, payload build, the provider
// call and text extraction, in that order. Nothing is retried.
func (uc *implUseCase) Generate(ctx context.Context, input relay.GenerateInput) (relay.GenerateOutput, error) {
	if err := uc.CheckCredentials(ctx); err != nil {
		return relay.GenerateOutput{}, err
	}

	if err := validate(input); err != nil {
		return relay.GenerateOutput{}, err
	}

	req := uc.buildPayload(input)

	resp, err := uc.client.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "relay.usecase.Generate: client.GenerateContent: %v", err)
		return relay.GenerateOutput{}, &relay.UpstreamError{Err: err}
	}

	if resp != nil && resp.UsageMetadata != nil {
		uc.l.Infof(ctx, "relay.usecase.Generate: model=%s candidates=%d prompt_tokens=%d output_tokens=%d",
			uc.client.Model(), len(resp.Candidates),
			resp.UsageMetadata.PromptTokenCount, resp.UsageMetadata.CandidatesTokenCount)
	}

	return relay.GenerateOutput{Text: uc.extractText(resp)}, nil
}
