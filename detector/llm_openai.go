package detector

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAILLM implements LLMClient using the official openai-go SDK (chat completions).
type OpenAILLM struct {
	Model       string
	Temperature float64
	Opts        []option.RequestOption
}

// NewOpenAILLMFromConfig builds the client. SDK retries are disabled:
// a failed call is reported, never repeated.
func NewOpenAILLMFromConfig(cfg *LLMSettings) (*OpenAILLM, error) {
	return newOpenAILLM(cfg, nil)
}

func newOpenAILLM(cfg *LLMSettings, httpClient *http.Client) (*OpenAILLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &OpenAILLM{Model: string(cfg.Model), Temperature: cfg.Temperature, Opts: opts}, nil
}

// OpenAIFactory is the LLMFactory for the "openai" provider.
func OpenAIFactory(settings LLMSettings) (LLMClient, error) {
	return NewOpenAILLMFromConfig(&settings)
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.Opts...)

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(prompt.System),
		openai.UserMessage(prompt.User),
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.Model),
		Messages:    msgs,
		Temperature: openai.Float(o.Temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
