package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"

	"bumpwise/internal/config"
)

// OpenAI is the fallback provider, using chat completions with an inlined
// data-URL image part for vision requests. It also serves as the
// embedding source for the semantic cache.
type OpenAI struct {
	client  *openai.Client
	cfg     *config.OpenAIConfig
	limiter *rate.Limiter
}

func NewOpenAI(cfg *config.OpenAIConfig) *OpenAI {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.APIEndpoint),
	)
	return &OpenAI{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Available() bool { return o.cfg.APIKey != "" }

func (o *OpenAI) Analyze(ctx context.Context, prompt string, image *ImageData, opts ...Option) (string, error) {
	if !o.Available() {
		return "", fmt.Errorf("openai: %w", ErrNoCredentials)
	}

	options := &Options{MaxTokens: o.cfg.MaxTokens}
	for _, opt := range opts {
		opt(options)
	}

	if err := o.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var userMessage openai.ChatCompletionMessageParamUnion
	if image != nil {
		userMessage = openai.UserMessageParts(
			openai.ImagePart(image.DataURL()),
			openai.TextPart(prompt),
		)
	} else {
		userMessage = openai.UserMessage(prompt)
	}

	messages := []openai.ChatCompletionMessageParamUnion{userMessage}
	if options.System != "" {
		messages = append([]openai.ChatCompletionMessageParamUnion{openai.SystemMessage(options.System)}, messages...)
	}

	resp, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model:       openai.F(o.cfg.Model),
			Messages:    openai.F(messages),
			MaxTokens:   openai.F(options.MaxTokens),
			Temperature: openai.F(options.Temperature),
		},
	)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &ProviderError{Provider: o.Name(), StatusCode: apierr.StatusCode, Body: truncate(apierr.Error(), 500)}
		}
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: o.Name(), Body: "no text content in response"}
	}
	return resp.Choices[0].Message.Content, nil
}

// Embed produces an embedding vector for a query, used by the semantic
// cache lookup.
func (o *OpenAI) Embed(ctx context.Context, text string) ([]float64, error) {
	if !o.Available() {
		return nil, fmt.Errorf("openai: %w", ErrNoCredentials)
	}

	resp, err := o.client.Embeddings.New(
		ctx,
		openai.EmbeddingNewParams{
			Model: openai.F(openai.EmbeddingModel(o.cfg.EmbeddingModel)),
			Input: openai.F[openai.EmbeddingNewParamsInputUnion](
				openai.EmbeddingNewParamsInputArrayOfStrings([]string{text}),
			),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("openai: embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, &ProviderError{Provider: o.Name(), Body: "no embedding in response"}
	}
	return resp.Data[0].Embedding, nil
}
