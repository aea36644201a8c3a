package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bumpwise/internal/config"
)

func anthropicTestConfig(endpoint string) *config.AnthropicConfig {
	return &config.AnthropicConfig{
		APIKey:      "test-key",
		APIEndpoint: endpoint,
		APIVersion:  "2023-06-01",
		Model:       "test-model",
		MaxTokens:   1500,
		Timeout:     5 * time.Second,
	}
}

func TestAnthropicAnalyze(t *testing.T) {
	var gotReq anthropicRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": `{"item":"x"}`}},
		})
	}))
	defer ts.Close()

	client := NewAnthropic(anthropicTestConfig(ts.URL))
	out, err := client.Analyze(context.Background(), "is sushi safe", nil, WithSystem("be helpful"))

	require.NoError(t, err)
	assert.Equal(t, `{"item":"x"}`, out)
	assert.Equal(t, "be helpful", gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	require.Len(t, gotReq.Messages[0].Content, 1)
	assert.Equal(t, "text", gotReq.Messages[0].Content[0].Type)
}

func TestAnthropicAnalyzeWithImage(t *testing.T) {
	var gotReq anthropicRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "ok"}},
		})
	}))
	defer ts.Close()

	client := NewAnthropic(anthropicTestConfig(ts.URL))
	img := &ImageData{MediaType: "image/png", Base64Data: "aGk="}
	_, err := client.Analyze(context.Background(), "what is this", img)

	require.NoError(t, err)
	require.Len(t, gotReq.Messages[0].Content, 2)
	imageBlock := gotReq.Messages[0].Content[0]
	assert.Equal(t, "image", imageBlock.Type)
	require.NotNil(t, imageBlock.Source)
	assert.Equal(t, "image/png", imageBlock.Source.MediaType)
	assert.Equal(t, "aGk=", imageBlock.Source.Data)
}

func TestAnthropicNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewAnthropic(anthropicTestConfig(ts.URL))
	_, err := client.Analyze(context.Background(), "hello", nil)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusServiceUnavailable, perr.StatusCode)
}

func TestAnthropicMissingTextPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": []map[string]string{}})
	}))
	defer ts.Close()

	client := NewAnthropic(anthropicTestConfig(ts.URL))
	_, err := client.Analyze(context.Background(), "hello", nil)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
}

func TestAnthropicUnavailableWithoutKey(t *testing.T) {
	cfg := anthropicTestConfig("http://unused")
	cfg.APIKey = ""

	client := NewAnthropic(cfg)
	assert.False(t, client.Available())

	_, err := client.Analyze(context.Background(), "hello", nil)
	assert.True(t, errors.Is(err, ErrNoCredentials))
}
