package detector

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const chatCompletion = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o",
  "choices": [{
    "index": 0,
    "finish_reason": "stop",
    "message": {"role": "assistant", "content": "{\"verdict\":\"FAKE\"}"}
  }]
}`

func TestOpenAILLM_Complete(t *testing.T) {
	var body []byte
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, chatCompletion)
	}))
	defer srv.Close()

	llm, err := newOpenAILLM(&LLMSettings{APIKey: "sk-test", Model: ModelGPT4o, BaseURL: srv.URL + "/"}, srv.Client())
	require.NoError(t, err)

	out, err := llm.Complete(context.Background(), Prompt{System: "instruction", User: ClaimPrefix + "claim"})

	require.NoError(t, err)
	assert.Equal(t, `{"verdict":"FAKE"}`, out)
	assert.Equal(t, "/chat/completions", path)
	assert.Equal(t, "Bearer sk-test", auth)

	req := gjson.ParseBytes(body)
	assert.Equal(t, "gpt-4o", req.Get("model").String())
	assert.True(t, req.Get("temperature").Exists())
	assert.Zero(t, req.Get("temperature").Float())
	msgs := req.Get("messages").Array()
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Get("role").String())
	assert.Equal(t, "instruction", msgs[0].Get("content").String())
	assert.Equal(t, "user", msgs[1].Get("role").String())
	assert.Equal(t, "NEWS CLAIM TO VERIFY: claim", msgs[1].Get("content").String())
}

func TestOpenAILLM_ServiceError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"message":"server on fire","type":"server_error"}}`)
	}))
	defer srv.Close()

	llm, err := newOpenAILLM(&LLMSettings{APIKey: "sk-test", Model: ModelGPT4o, BaseURL: srv.URL + "/"}, srv.Client())
	require.NoError(t, err)

	_, err = llm.Complete(context.Background(), Prompt{System: "s", User: "u"})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "requests are not retried")
}

func TestOpenAILLM_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-4o","choices":[]}`)
	}))
	defer srv.Close()

	llm, err := newOpenAILLM(&LLMSettings{APIKey: "sk-test", Model: ModelGPT4o, BaseURL: srv.URL + "/"}, srv.Client())
	require.NoError(t, err)

	_, err = llm.Complete(context.Background(), Prompt{})
	assert.EqualError(t, err, "openai: empty choices")
}

func TestNewOpenAILLMFromConfig(t *testing.T) {
	_, err := NewOpenAILLMFromConfig(nil)
	assert.Error(t, err)

	_, err = NewOpenAILLMFromConfig(&LLMSettings{Model: ModelGPT4o})
	assert.ErrorIs(t, err, ErrMissingCredential)

	_, err = NewOpenAILLMFromConfig(&LLMSettings{APIKey: "sk"})
	assert.Error(t, err)

	llm, err := OpenAIFactory(LLMSettings{APIKey: "sk", Model: ModelGPT4Turbo})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4-turbo", llm.(*OpenAILLM).Model)
}
