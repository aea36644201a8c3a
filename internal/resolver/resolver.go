// Package resolver coordinates a safety check: knowledge base first, then
// the result cache, then external providers in fixed fallback order. It
// is the only component that decides which path answers a request.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"bumpwise/apimodels"
	"bumpwise/internal/kb"
	"bumpwise/internal/llm"
)

var (
	// ErrInvalidRequest covers a request with neither query nor image, or
	// a malformed image data URL. Never retried.
	ErrInvalidRequest = errors.New("query or image required")

	// ErrProvidersExhausted is the terminal failure: every configured,
	// available provider was attempted and failed.
	ErrProvidersExhausted = errors.New("all providers failed")
)

// Cache is the resolver's view of the result cache. Get returns nil on a
// miss; Put never reports errors (they are logged by the implementation).
type Cache interface {
	Get(ctx context.Context, normalizedQuery string) *apimodels.Outcome
	Put(ctx context.Context, rawQuery, normalizedQuery string, result *apimodels.Outcome)
}

type Resolver struct {
	kb        *kb.Store
	providers []llm.Provider
	cache     Cache // nil when the cache store is disabled or unreachable
}

// New wires the resolver's collaborators. Provider order is the fallback
// order; cache may be nil.
func New(kbStore *kb.Store, providers []llm.Provider, cache Cache) *Resolver {
	return &Resolver{
		kb:        kbStore,
		providers: providers,
		cache:     cache,
	}
}

// Resolve answers a safety request. It fails only when the request is
// invalid or every downstream path failed.
func (r *Resolver) Resolve(ctx context.Context, req apimodels.SafetyRequest) (*apimodels.Outcome, error) {
	if req.Query == "" && req.Image == "" {
		return nil, ErrInvalidRequest
	}

	var image *llm.ImageData
	if req.Image != "" {
		parsed, err := llm.ParseImageDataURL(req.Image)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		image = parsed
	}

	// Text-only queries get the cheap paths: knowledge base, then cache.
	// Database and cache answers always win over provider answers.
	if image == nil {
		if rec := r.kb.Lookup(req.Query); rec != nil {
			slog.Info("knowledge base hit", "query", req.Query, "item", rec.Item)
			return narrowTrimester(rec, req.Trimester), nil
		}
		if r.cache != nil {
			if hit := r.cache.Get(ctx, kb.Canonicalize(req.Query)); hit != nil {
				slog.Info("cache hit", "query", req.Query)
				hit.FromCache = true
				return narrowTrimester(hit, req.Trimester), nil
			}
		}
	}

	// An image forces the provider path even when the query text is
	// known; a partial knowledge-base signal becomes a prompt hint.
	hint := req.DatabaseHint
	if hint == "" && image != nil && req.Query != "" {
		hint = r.kb.Hint(req.Query)
	}

	prompt := buildUserPrompt(req.Query, image != nil, req.Trimester, hint)

	var lastErr error
	attempted := false
	for _, provider := range r.providers {
		if !provider.Available() {
			slog.Warn("provider unavailable, skipping", "provider", provider.Name())
			continue
		}
		attempted = true

		raw, err := provider.Analyze(ctx, prompt, image, llm.WithSystem(SystemPrompt))
		if err != nil {
			lastErr = err
			slog.Warn("provider call failed, falling back", "provider", provider.Name(), "error", err)
			continue
		}

		out := llm.ParseSafetyResponse(raw, req.Query)
		slog.Info("provider answered", "provider", provider.Name(), "menu", out.IsMenu())

		// Write-through without blocking the response. Image-bearing
		// requests and degraded parses are never cached.
		if image == nil && r.cache != nil && !isDegraded(out) {
			stored := *out
			go r.cache.Put(context.WithoutCancel(ctx), req.Query, kb.Canonicalize(req.Query), &stored)
		}

		return narrowTrimester(out, req.Trimester), nil
	}

	if !attempted {
		slog.Warn("no providers available, returning generic guidance", "query", req.Query)
		return unknownItemResult(req.Query, image != nil), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrProvidersExhausted, lastErr)
}

// narrowTrimester reduces a structured per-trimester note set to the
// single requested trimester's string. Presentation narrowing only; the
// record itself is not re-queried.
func narrowTrimester(out *apimodels.Outcome, trimester int) *apimodels.Outcome {
	if trimester < 1 || trimester > 3 || !out.TrimesterNotes.Structured() {
		return out
	}
	note := out.TrimesterNotes.ForTrimester(trimester)
	if note == "" {
		return out
	}
	narrowed := *out
	narrowed.TrimesterNotes = &apimodels.TrimesterNotes{General: note}
	return &narrowed
}

func isDegraded(out *apimodels.Outcome) bool {
	return slices.Contains(out.Sources, llm.DegradedSource)
}

// unknownItemResult is the answer of last resort when no provider can be
// reached at all: generic consult-your-doctor guidance rather than an
// error or a fabricated verdict.
func unknownItemResult(query string, hasImage bool) *apimodels.Outcome {
	item := query
	if item == "" && hasImage {
		item = "Analyzed item"
	}
	return &apimodels.Outcome{
		Item:        item,
		SafetyLevel: apimodels.SafetyLevelCaution,
		Summary:     fmt.Sprintf("Information about %q during pregnancy should be discussed with your healthcare provider.", item),
		DirectRisks: []string{},
		GeneralRisks: []string{
			"Limited research available for this specific item",
		},
		Recommendations: []string{
			"Consult your OB-GYN or midwife for personalized advice",
			"When in doubt, it's best to avoid until you can confirm safety",
		},
		TrimesterNotes: &apimodels.TrimesterNotes{General: "Consult your healthcare provider for trimester-specific guidance."},
		Sources:        []string{"General pregnancy safety guidelines"},
	}
}
