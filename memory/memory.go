package memory

import (
	"context"

	"github.com/dronaai/drona-go-sdk/core"
)

// ScoredRecord pairs a retrieved record with its similarity to the query
// vector. Higher is more similar.
type ScoredRecord struct {
	Record     *core.PerformanceRecord
	Similarity float32
}

// Store is the vector storage backend interface.
// Implementations: chromem.Store (local SDK), PgVectorStore (production).
//
// The store is append-only: no update, no delete. Append is the only
// mutator and is atomic at the single-record level; reads may race with
// same-candidate appends (eventual consistency is acceptable because
// weak-area inference is best-effort personalization).
type Store interface {
	// Append validates and persists a record, assigning a store-unique ID.
	// Returns a *core.ValidationError for an out-of-range score or empty
	// topic, or an error wrapping core.ErrStoreUnavailable when the
	// backend cannot be reached.
	Append(ctx context.Context, rec *core.PerformanceRecord) (string, error)

	// QuerySimilar returns up to k of the candidate's records ranked by
	// descending cosine similarity to the query vector. A candidate with
	// no history yields an empty slice, not an error.
	QuerySimilar(ctx context.Context, candidateID string, queryVec []float32, k int) ([]ScoredRecord, error)

	// TopicAggregates returns per-topic mean score and sample count for
	// the candidate. Recomputed on demand; no cached staleness.
	TopicAggregates(ctx context.Context, candidateID string) (map[string]core.TopicStat, error)

	// Close releases resources.
	Close() error
}

// Embedder converts text to vector embeddings.
// Implementations: mock.Embedder (testing), onnx.Embedder (local SDK),
// API-based embedders (production).
type Embedder interface {
	// Embed converts a single text to an embedding vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size.
	Dimensions() int
}
