package detector

import (
	"context"
	"encoding/json"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
type MockLLM struct{}

// MockFactory is the LLMFactory for the "mock" provider.
func MockFactory(LLMSettings) (LLMClient, error) {
	return MockLLM{}, nil
}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	claim := strings.TrimPrefix(prompt.User, ClaimPrefix)
	out, err := json.Marshal(Verdict{
		Verdict:         VerdictUncertain,
		Confidence:      "low",
		Explanation:     "Offline mock analysis; no model was consulted for: " + claim,
		SupportingFacts: []string{},
		RedFlags:        []string{"mock provider in use"},
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
