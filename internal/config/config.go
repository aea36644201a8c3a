package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Cache     CacheConfig
	Recalls   RecallsConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"90s"`
}

// AnthropicConfig configures the primary provider. An empty APIKey marks
// the provider unavailable; it is skipped rather than treated as an error.
type AnthropicConfig struct {
	APIKey      string        `envconfig:"ANTHROPIC_API_KEY"`
	APIEndpoint string        `envconfig:"ANTHROPIC_ENDPOINT" default:"https://api.anthropic.com/v1/messages"`
	APIVersion  string        `envconfig:"ANTHROPIC_API_VERSION" default:"2023-06-01"`
	Model       string        `envconfig:"ANTHROPIC_MODEL" default:"claude-sonnet-4-20250514"`
	MaxTokens   int64         `envconfig:"ANTHROPIC_MAX_TOKENS" default:"1500"`
	Timeout     time.Duration `envconfig:"ANTHROPIC_TIMEOUT" default:"60s"`
}

// OpenAIConfig configures the fallback provider and the embedding model
// used for semantic cache lookups.
type OpenAIConfig struct {
	APIKey         string        `envconfig:"OPENAI_API_KEY"`
	APIEndpoint    string        `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model          string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	EmbeddingModel string        `envconfig:"OPENAI_EMBEDDING_MODEL" default:"text-embedding-3-small"`
	MaxTokens      int64         `envconfig:"OPENAI_MAX_TOKENS" default:"1500"`
	Timeout        time.Duration `envconfig:"OPENAI_TIMEOUT" default:"60s"`
}

type CacheConfig struct {
	Enabled bool   `envconfig:"CACHE_ENABLED" default:"true"`
	Path    string `envconfig:"CACHE_PATH" default:"bumpwise-cache.db"`
	// SimilarityThreshold is the minimum cosine similarity for a semantic
	// cache hit, on a 0-1 scale.
	SimilarityThreshold float64 `envconfig:"CACHE_SIMILARITY_THRESHOLD" default:"0.88"`
}

type RecallsConfig struct {
	SourceTimeout time.Duration `envconfig:"RECALLS_SOURCE_TIMEOUT" default:"5s"`
	MaxItems      int           `envconfig:"RECALLS_MAX_ITEMS" default:"30"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
