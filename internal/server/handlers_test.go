package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bumpwise/apimodels"
	"bumpwise/internal/config"
	"bumpwise/internal/kb"
	"bumpwise/internal/llm"
	"bumpwise/internal/recalls"
	"bumpwise/internal/resolver"
)

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Name() string    { return "stub" }
func (s *stubProvider) Available() bool { return true }

func (s *stubProvider) Analyze(ctx context.Context, prompt string, image *llm.ImageData, opts ...llm.Option) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testServer(t *testing.T, providers []llm.Provider, recallSources ...string) *Server {
	t.Helper()
	cfg := config.Config{
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "0",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
	}
	res := resolver.New(kb.New(), providers, nil)
	fetcher := recalls.NewFetcher(&config.RecallsConfig{SourceTimeout: time.Second, MaxItems: 30}, recallSources...)
	return New(cfg, res, fetcher)
}

func doCheck(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t, nil, "http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t, nil, "http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/check", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCheckMalformedBody(t *testing.T) {
	s := testServer(t, nil, "http://127.0.0.1:0")

	rec := doCheck(t, s, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckMissingQueryAndImage(t *testing.T) {
	s := testServer(t, nil, "http://127.0.0.1:0")

	rec := doCheck(t, s, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "Query or image required", errResp.Error)
}

func TestCheckInvalidTrimester(t *testing.T) {
	s := testServer(t, nil, "http://127.0.0.1:0")

	for _, trimester := range []int{-1, 4, 99} {
		rec := doCheck(t, s, fmt.Sprintf(`{"query":"sushi","trimester":%d}`, trimester))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "trimester %d", trimester)
	}
}

func TestCheckKnowledgeBaseHit(t *testing.T) {
	s := testServer(t, nil, "http://127.0.0.1:0")

	rec := doCheck(t, s, `{"query":"alcohol"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var out apimodels.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Alcohol", out.Item)
	assert.Equal(t, apimodels.SafetyLevelAvoid, out.SafetyLevel)
	assert.NotEmpty(t, out.DirectRisks)
}

func TestCheckProviderAnswer(t *testing.T) {
	provider := &stubProvider{response: `{"item":"Durian","safetyLevel":"safe","summary":"Fine."}`}
	s := testServer(t, []llm.Provider{provider}, "http://127.0.0.1:0")

	rec := doCheck(t, s, `{"query":"durian"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out apimodels.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Durian", out.Item)
	assert.Equal(t, apimodels.SafetyLevelSafe, out.SafetyLevel)
}

func TestCheckProvidersExhausted(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	s := testServer(t, []llm.Provider{provider}, "http://127.0.0.1:0")

	rec := doCheck(t, s, `{"query":"durian"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var errResp apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "Failed to analyze", errResp.Error)
}

func TestCheckMalformedImage(t *testing.T) {
	s := testServer(t, nil, "http://127.0.0.1:0")

	rec := doCheck(t, s, `{"image":"not-a-data-url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecallsEndpoint(t *testing.T) {
	feed := `<?xml version="1.0"?><rss version="2.0"><channel>
		<item><title>Acme Recalls Cheese Due to Listeria</title><link>https://example.com</link>
		<description>cheese recall</description><pubDate>Mon, 24 Aug 2026 10:00:00 -0400</pubDate></item>
	</channel></rss>`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feed)
	}))
	defer ts.Close()

	s := testServer(t, nil, ts.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recalls", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp apimodels.RecallsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rss-multi", resp.Source)
	require.Len(t, resp.Recalls, 1)
	assert.Equal(t, "Listeria", resp.Recalls[0].Contaminant)
}

func TestRecallsEndpointNeverNull(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer dead.Close()

	s := testServer(t, nil, dead.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recalls", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"recalls":[]`)
}

func TestUnknownRouteNotFound(t *testing.T) {
	s := testServer(t, nil, "http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
