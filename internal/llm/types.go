package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider is the uniform surface the resolver sees: prompt text plus an
// optional image in, raw generated text out. Differences between provider
// wire formats stay inside each implementation.
type Provider interface {
	// Name identifies the provider in logs and error messages.
	Name() string

	// Available reports whether required credentials are configured.
	// Unavailable providers are skipped, not retried.
	Available() bool

	// Analyze sends the prompt (and image, when present) and returns the
	// generated text.
	Analyze(ctx context.Context, prompt string, image *ImageData, opts ...Option) (string, error)
}

// ErrNoCredentials marks a provider that is configured into the chain but
// has no API key.
var ErrNoCredentials = errors.New("provider credentials not configured")

// ProviderError reports a non-success HTTP response or a response missing
// the expected text payload.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s api error: status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s api error: %s", e.Provider, e.Body)
}

type Option func(*Options)

type Options struct {
	System      string
	MaxTokens   int64
	Temperature float64
}

// WithSystem sets the system instruction for the call.
func WithSystem(system string) Option {
	return func(o *Options) { o.System = system }
}

// ImageData is a decoded data URL: the media type and the base64 payload
// as the provider wire formats expect them.
type ImageData struct {
	MediaType  string
	Base64Data string
}

// ParseImageDataURL splits a "data:<mediaType>;base64,<data>" string. A
// malformed URL is a request-construction failure, reported before any
// network call is attempted.
func ParseImageDataURL(dataURL string) (*ImageData, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, fmt.Errorf("image is not a data URL")
	}
	mediaType, data, ok := strings.Cut(rest, ";base64,")
	if !ok || mediaType == "" || data == "" {
		return nil, fmt.Errorf("image data URL has no base64 payload")
	}
	return &ImageData{MediaType: mediaType, Base64Data: data}, nil
}

// DataURL reassembles the data URL form used by providers that inline
// images by URL rather than by source block.
func (i *ImageData) DataURL() string {
	return "data:" + i.MediaType + ";base64," + i.Base64Data
}
