package relay

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// CheckCredentials fails with ErrMissingAPIKey when no provider is configured.
	CheckCredentials(ctx context.Context) error

	// Generate turns one idea into a normalized text answer with a single provider call.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
