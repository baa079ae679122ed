package detector

import "context"

// LLMClient 抽象大模型客户端，便于替换/Mock。
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings 提供给具体实现的基础配置。
type LLMSettings struct {
	Provider    string
	Model       Model
	APIKey      string
	BaseURL     string
	Temperature float64
}

// LLMFactory builds a client for one analysis. The credential and model
// may change between analyses, so clients are not shared.
type LLMFactory func(settings LLMSettings) (LLMClient, error)
