// Package cache stores previously computed text-only results in a local
// sqlite file, keyed by normalized query. Lookup is exact first, then
// semantic: stored query embeddings are compared by cosine similarity and
// the best match above a fixed threshold wins. The cache is best-effort
// and never authoritative; every failure degrades to a miss.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"bumpwise/apimodels"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS results (
	id               TEXT PRIMARY KEY,
	raw_query        TEXT NOT NULL,
	normalized_query TEXT NOT NULL UNIQUE,
	embedding        TEXT,
	payload          TEXT NOT NULL,
	created_at       TIMESTAMP NOT NULL
);
`

// Embedder turns a query into a vector for similarity comparison. A nil
// Embedder (or a failing one) degrades the cache to exact-match-only.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

type Store struct {
	conn      *sql.DB
	embedder  Embedder
	threshold float64
}

func Open(path string, embedder Embedder, threshold float64) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{conn: conn, embedder: embedder, threshold: threshold}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// Get returns the cached outcome for a normalized query, or nil on a
// miss. Store errors are logged and treated as misses.
func (s *Store) Get(ctx context.Context, normalizedQuery string) *apimodels.Outcome {
	var payload string
	err := s.conn.QueryRowContext(
		ctx,
		`SELECT payload FROM results WHERE normalized_query = ?`,
		normalizedQuery,
	).Scan(&payload)
	switch {
	case err == nil:
		return decodePayload(payload)
	case errors.Is(err, sql.ErrNoRows):
		// fall through to semantic lookup
	default:
		slog.Warn("cache lookup failed", "error", err)
		return nil
	}

	return s.semanticGet(ctx, normalizedQuery)
}

func (s *Store) semanticGet(ctx context.Context, normalizedQuery string) *apimodels.Outcome {
	if s.embedder == nil {
		return nil
	}

	queryVec, err := s.embedder.Embed(ctx, normalizedQuery)
	if err != nil {
		slog.Debug("embedding failed, cache degrades to exact-only", "error", err)
		return nil
	}

	rows, err := s.conn.QueryContext(
		ctx,
		`SELECT normalized_query, embedding, payload FROM results WHERE embedding IS NOT NULL`,
	)
	if err != nil {
		slog.Warn("cache similarity scan failed", "error", err)
		return nil
	}
	defer rows.Close()

	var (
		bestScore   float64
		bestPayload string
		bestQuery   string
	)
	for rows.Next() {
		var stored, encoded, payload string
		if err := rows.Scan(&stored, &encoded, &payload); err != nil {
			slog.Warn("cache row scan failed", "error", err)
			return nil
		}
		var vec []float64
		if err := json.Unmarshal([]byte(encoded), &vec); err != nil {
			continue
		}
		score := cosineSimilarity(queryVec, vec)
		if score > bestScore {
			bestScore = score
			bestPayload = payload
			bestQuery = stored
		}
	}
	if err := rows.Err(); err != nil {
		slog.Warn("cache similarity scan failed", "error", err)
		return nil
	}

	if bestScore < s.threshold {
		return nil
	}
	slog.Debug("semantic cache hit", "query", normalizedQuery, "matched", bestQuery, "score", bestScore)
	return decodePayload(bestPayload)
}

// Put stores a result under its normalized query, last-write-wins.
// Errors are logged, never surfaced; the resolver calls this off the
// response path.
func (s *Store) Put(ctx context.Context, rawQuery, normalizedQuery string, result *apimodels.Outcome) {
	payload, err := json.Marshal(result)
	if err != nil {
		slog.Warn("cache write: marshal failed", "error", err)
		return
	}

	var embedding sql.NullString
	if s.embedder != nil {
		if vec, err := s.embedder.Embed(ctx, normalizedQuery); err == nil {
			if encoded, err := json.Marshal(vec); err == nil {
				embedding = sql.NullString{String: string(encoded), Valid: true}
			}
		} else {
			slog.Debug("cache write: embedding skipped", "error", err)
		}
	}

	_, err = s.conn.ExecContext(
		ctx,
		`INSERT INTO results (id, raw_query, normalized_query, embedding, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(normalized_query) DO UPDATE SET
			raw_query = excluded.raw_query,
			embedding = excluded.embedding,
			payload = excluded.payload,
			created_at = excluded.created_at`,
		uuid.NewString(),
		rawQuery,
		normalizedQuery,
		embedding,
		string(payload),
		time.Now().UTC(),
	)
	if err != nil {
		slog.Warn("cache write failed", "query", normalizedQuery, "error", err)
	}
}

func decodePayload(payload string) *apimodels.Outcome {
	var out apimodels.Outcome
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		slog.Warn("cache payload decode failed", "error", err)
		return nil
	}
	out.NormalizeLists()
	return &out
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
