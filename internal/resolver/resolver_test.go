package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bumpwise/apimodels"
	"bumpwise/internal/kb"
	"bumpwise/internal/llm"
)

type fakeProvider struct {
	name      string
	available bool
	response  string
	err       error

	mu      sync.Mutex
	calls   int
	prompts []string
	images  []*llm.ImageData
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) Analyze(ctx context.Context, prompt string, image *llm.ImageData, opts ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.images = append(f.images, image)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]*apimodels.Outcome
	gets    int
	puts    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*apimodels.Outcome{}}
}

func (c *fakeCache) Get(ctx context.Context, normalizedQuery string) *apimodels.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if out, ok := c.entries[normalizedQuery]; ok {
		copied := *out
		return &copied
	}
	return nil
}

func (c *fakeCache) Put(ctx context.Context, rawQuery, normalizedQuery string, result *apimodels.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	c.entries[normalizedQuery] = result
}

func (c *fakeCache) putCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.puts
}

func providerJSON(t *testing.T, out *apimodels.Outcome) string {
	t.Helper()
	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	return string(encoded)
}

const testImage = "data:image/jpeg;base64,SGVsbG8="

func TestResolveKnowledgeBaseHitMakesNoNetworkCalls(t *testing.T) {
	provider := &fakeProvider{name: "p1", available: true, response: "{}"}
	r := New(kb.New(), []llm.Provider{provider}, nil)

	out, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "alcohol"})

	require.NoError(t, err)
	assert.Equal(t, apimodels.SafetyLevelAvoid, out.SafetyLevel)
	assert.NotEmpty(t, out.DirectRisks)
	assert.Equal(t, 0, provider.calls)
}

func TestResolveIdempotentForKnowledgeBaseQueries(t *testing.T) {
	r := New(kb.New(), nil, nil)

	first, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "sushi"})
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "sushi"})
	require.NoError(t, err)

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestResolveTrimesterNarrowing(t *testing.T) {
	r := New(kb.New(), nil, nil)

	out, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "ibuprofen", Trimester: 2})

	require.NoError(t, err)
	require.NotNil(t, out.TrimesterNotes)
	assert.False(t, out.TrimesterNotes.Structured())
	assert.Equal(t, "Avoid if possible", out.TrimesterNotes.General)
}

func TestResolveAliasHit(t *testing.T) {
	r := New(kb.New(), nil, nil)

	out, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "advil"})

	require.NoError(t, err)
	assert.Equal(t, apimodels.SafetyLevelAvoid, out.SafetyLevel)
	assert.Equal(t, "Ibuprofen / Advil / NSAIDs", out.Item)
}

func TestResolveCacheHitMarkedAndPreferredOverProviders(t *testing.T) {
	cached := &apimodels.Outcome{
		Item:        "Dragon Fruit",
		SafetyLevel: apimodels.SafetyLevelSafe,
		Summary:     "Safe and hydrating.",
	}
	c := newFakeCache()
	c.entries["dragon fruit"] = cached

	provider := &fakeProvider{name: "p1", available: true, response: "{}"}
	r := New(kb.New(), []llm.Provider{provider}, c)

	out, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "  Dragon   Fruit "})

	require.NoError(t, err)
	assert.True(t, out.FromCache)
	assert.Equal(t, "Dragon Fruit", out.Item)
	assert.Equal(t, 0, provider.calls)
}

func TestResolveFallbackOrdering(t *testing.T) {
	expected := &apimodels.Outcome{
		Item:            "Durian",
		SafetyLevel:     apimodels.SafetyLevelSafe,
		Summary:         "Safe in moderation.",
		DirectRisks:     []string{},
		GeneralRisks:    []string{},
		Recommendations: []string{},
		Sources:         []string{"ACOG"},
	}
	p1 := &fakeProvider{name: "p1", available: true, err: errors.New("boom")}
	p2 := &fakeProvider{name: "p2", available: true, response: providerJSON(t, expected)}
	r := New(kb.New(), []llm.Provider{p1, p2}, nil)

	out, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "durian"})

	require.NoError(t, err)
	assert.Equal(t, "Durian", out.Item)
	assert.Equal(t, 1, p1.calls)
	assert.Equal(t, 1, p2.calls)
}

func TestResolveSkipsUnavailableProvider(t *testing.T) {
	expected := &apimodels.Outcome{Item: "Durian", SafetyLevel: apimodels.SafetyLevelSafe, Summary: "ok"}
	p1 := &fakeProvider{name: "p1", available: false}
	p2 := &fakeProvider{name: "p2", available: true, response: providerJSON(t, expected)}
	r := New(kb.New(), []llm.Provider{p1, p2}, nil)

	out, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "durian"})

	require.NoError(t, err)
	assert.Equal(t, "Durian", out.Item)
	assert.Equal(t, 0, p1.calls)
}

func TestResolveAllProvidersFail(t *testing.T) {
	p1 := &fakeProvider{name: "p1", available: true, err: errors.New("down")}
	p2 := &fakeProvider{name: "p2", available: true, err: errors.New("also down")}
	r := New(kb.New(), []llm.Provider{p1, p2}, nil)

	_, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "durian"})

	assert.ErrorIs(t, err, ErrProvidersExhausted)
}

func TestResolveNoProvidersReturnsDegradedGuidance(t *testing.T) {
	r := New(kb.New(), nil, nil)

	out, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "quinoa salad with xyz123"})

	require.NoError(t, err)
	assert.Equal(t, apimodels.SafetyLevelCaution, out.SafetyLevel)
	assert.Contains(t, out.Recommendations[0], "OB-GYN")
}

func TestResolveImageBypassesKnowledgeBaseAndCache(t *testing.T) {
	menu := &apimodels.Outcome{
		MenuAnalysis: true,
		AnalysisType: "menu",
		Items: []apimodels.MenuItem{
			{Item: "Oysters", SafetyLevel: apimodels.SafetyLevelCaution, Summary: "Raw shellfish risk"},
		},
		OverallAdvice: "Ask for cooked options.",
	}
	provider := &fakeProvider{name: "p1", available: true, response: providerJSON(t, menu)}
	c := newFakeCache()
	// Even a query that would hit the knowledge base goes to the
	// provider when an image is attached.
	r := New(kb.New(), []llm.Provider{provider}, c)

	out, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "alcohol", Image: testImage})

	require.NoError(t, err)
	assert.True(t, out.IsMenu())
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 0, c.gets)
	require.NotNil(t, provider.images[0])
	assert.Equal(t, "image/jpeg", provider.images[0].MediaType)
	// Knowledge-base partial signal becomes a prompt hint.
	assert.Contains(t, provider.prompts[0], "This may be related to: Alcohol")
}

func TestResolveImageResultsNeverCached(t *testing.T) {
	menu := &apimodels.Outcome{MenuAnalysis: true, Items: []apimodels.MenuItem{{Item: "x", SafetyLevel: "safe", Summary: "y"}}}
	provider := &fakeProvider{name: "p1", available: true, response: providerJSON(t, menu)}
	c := newFakeCache()
	r := New(kb.New(), []llm.Provider{provider}, c)

	_, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Image: testImage})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, c.putCount())
}

func TestResolveTextResultWrittenThroughToCache(t *testing.T) {
	expected := &apimodels.Outcome{Item: "Durian", SafetyLevel: apimodels.SafetyLevelSafe, Summary: "ok"}
	provider := &fakeProvider{name: "p1", available: true, response: providerJSON(t, expected)}
	c := newFakeCache()
	r := New(kb.New(), []llm.Provider{provider}, c)

	_, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "Durian"})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return c.putCount() == 1 }, time.Second, 10*time.Millisecond)
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Contains(t, c.entries, "durian")
}

func TestResolveDegradedParseNotCached(t *testing.T) {
	provider := &fakeProvider{name: "p1", available: true, response: "total nonsense, no JSON here"}
	c := newFakeCache()
	r := New(kb.New(), []llm.Provider{provider}, c)

	out, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "durian"})
	require.NoError(t, err)
	assert.Equal(t, apimodels.SafetyLevelCaution, out.SafetyLevel)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, c.putCount())
}

func TestResolveInvalidRequests(t *testing.T) {
	r := New(kb.New(), nil, nil)

	_, err := r.Resolve(context.Background(), apimodels.SafetyRequest{})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = r.Resolve(context.Background(), apimodels.SafetyRequest{Image: "not-a-data-url"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestResolveTrimesterDirectiveInPrompt(t *testing.T) {
	provider := &fakeProvider{name: "p1", available: true, response: "{}"}
	r := New(kb.New(), []llm.Provider{provider}, nil)

	_, err := r.Resolve(context.Background(), apimodels.SafetyRequest{Query: "durian", Trimester: 3})

	require.NoError(t, err)
	assert.Contains(t, provider.prompts[0], "trimester 3")
}
