package detector

import (
	"context"
	"fmt"
	"strings"
)

// RequestVerdict sends one request to the model and returns the raw
// completion. The credential is checked before any client is built.
func RequestVerdict(ctx context.Context, newLLM LLMFactory, settings LLMSettings, req AnalysisRequest) (string, error) {
	if strings.TrimSpace(settings.APIKey) == "" {
		return "", ErrMissingCredential
	}
	if !settings.Model.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedModel, settings.Model)
	}
	settings.Temperature = 0

	llm, err := newLLM(settings)
	if err != nil {
		return "", &UpstreamError{Model: settings.Model, Err: err}
	}
	raw, err := llm.Complete(ctx, req.Prompt())
	if err != nil {
		return "", &UpstreamError{Model: settings.Model, Err: err}
	}
	return raw, nil
}
