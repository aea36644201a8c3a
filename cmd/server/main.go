package main

import (
	"log"
	"log/slog"

	"bumpwise/internal/cache"
	"bumpwise/internal/config"
	"bumpwise/internal/kb"
	"bumpwise/internal/llm"
	"bumpwise/internal/recalls"
	"bumpwise/internal/resolver"
	"bumpwise/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	kbStore := kb.New()
	slog.Info("knowledge base loaded", "records", kbStore.Len())

	// Fallback order is fixed configuration: Anthropic first, OpenAI
	// second. Providers without credentials are skipped at call time.
	openaiClient := llm.NewOpenAI(&cfg.OpenAI)
	providers := []llm.Provider{
		llm.NewAnthropic(&cfg.Anthropic),
		openaiClient,
	}

	// The cache is best-effort: if the store cannot be opened the
	// service runs without it.
	var resultCache resolver.Cache
	if cfg.Cache.Enabled {
		store, err := cache.Open(cfg.Cache.Path, openaiClient, cfg.Cache.SimilarityThreshold)
		if err != nil {
			slog.Warn("result cache unavailable, continuing without it", "error", err)
		} else {
			defer store.Close()
			resultCache = store
		}
	}

	res := resolver.New(kbStore, providers, resultCache)
	recallFetcher := recalls.NewFetcher(&cfg.Recalls)

	srv := server.New(*cfg, res, recallFetcher)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
