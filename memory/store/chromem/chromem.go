// Package chromem backs the memory.Store interface with chromem-go,
// a pure Go embedded vector database.
package chromem

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	chromem "github.com/philippgille/chromem-go"

	"github.com/dronaai/drona-go-sdk/core"
	"github.com/dronaai/drona-go-sdk/memory"
)

// Config configures the chromem store.
type Config struct {
	// Path enables on-disk persistence when non-empty, so history
	// survives process restarts. Empty keeps everything in memory
	// (tests, throwaway sessions).
	Path string

	// Dimensions is the embedding vector size. Records appended without
	// an embedding (degraded mode) get a placeholder vector of this
	// size. Default: 384 (all-MiniLM-L6-v2).
	Dimensions int
}

// Store implements memory.Store on top of chromem-go.
// Each candidate gets their own collection for namespace isolation.
type Store struct {
	db          *chromem.DB
	dimensions  int
	collections map[string]*chromem.Collection
	mu          sync.RWMutex
}

var _ memory.Store = (*Store)(nil)

// New creates a chromem-based store.
func New(cfg Config) (*Store, error) {
	if cfg.Dimensions <= 0 {
		cfg.Dimensions = 384
	}

	var db *chromem.DB
	var err error
	if cfg.Path != "" {
		db, err = chromem.NewPersistentDB(cfg.Path, true)
		if err != nil {
			return nil, fmt.Errorf("%w: open persistent db: %v", core.ErrStoreUnavailable, err)
		}
	} else {
		db = chromem.NewDB()
	}

	return &Store{
		db:          db,
		dimensions:  cfg.Dimensions,
		collections: make(map[string]*chromem.Collection),
	}, nil
}

// getOrCreateCollection returns the collection for a candidate.
func (s *Store) getOrCreateCollection(candidateID string) (*chromem.Collection, error) {
	s.mu.RLock()
	col, exists := s.collections[candidateID]
	s.mu.RUnlock()

	if exists {
		return col, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if col, exists := s.collections[candidateID]; exists {
		return col, nil
	}

	// GetOrCreate so a persistent DB picks up collections from a
	// previous run. Every document carries its own vector, so the
	// embedding func only exists to fail loudly if one does not.
	col, err := s.db.GetOrCreateCollection(fmt.Sprintf("candidate_%s", candidateID), nil, noEmbed)
	if err != nil {
		return nil, fmt.Errorf("%w: create collection: %v", core.ErrStoreUnavailable, err)
	}

	s.collections[candidateID] = col
	return col, nil
}

// Append validates and persists one record. This is the store's only
// mutator; records are immutable once written.
func (s *Store) Append(ctx context.Context, rec *core.PerformanceRecord) (string, error) {
	if err := memory.Validate(rec); err != nil {
		return "", err
	}

	col, err := s.getOrCreateCollection(rec.CandidateID)
	if err != nil {
		return "", err
	}

	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	embedding := rec.Embedding
	if len(embedding) == 0 {
		// Degraded mode: embedding backend was unavailable. A fixed
		// placeholder keeps the record queryable for aggregates while
		// contributing nothing useful to similarity ranking.
		embedding = placeholderVector(s.dimensions)
	}

	content, err := json.Marshal(map[string]string{
		"question": rec.Question,
		"answer":   rec.Answer,
	})
	if err != nil {
		return "", fmt.Errorf("marshal content: %w", err)
	}

	doc := chromem.Document{
		ID:        id,
		Content:   string(content),
		Embedding: embedding,
		Metadata: map[string]string{
			"candidate_id": rec.CandidateID,
			"session_id":   rec.SessionID,
			"topic":        rec.Topic,
			"score":        strconv.FormatFloat(rec.Score, 'f', 2, 64),
			"created_at":   createdAt.Format(time.RFC3339Nano),
		},
	}

	if err := col.AddDocument(ctx, doc); err != nil {
		return "", fmt.Errorf("%w: add document: %v", core.ErrStoreUnavailable, err)
	}

	log.Printf("[CHROMEM] Appended record id=%s candidate=%s topic=%s score=%.2f",
		id, rec.CandidateID, rec.Topic, rec.Score)
	return id, nil
}

// QuerySimilar returns up to k records ranked by descending similarity.
func (s *Store) QuerySimilar(ctx context.Context, candidateID string, queryVec []float32, k int) ([]memory.ScoredRecord, error) {
	if k <= 0 {
		return nil, nil
	}

	col, err := s.getOrCreateCollection(candidateID)
	if err != nil {
		return nil, err
	}

	// chromem requires nResults <= collection size.
	if count := col.Count(); count < k {
		if count == 0 {
			return nil, nil
		}
		k = count
	}

	results, err := col.QueryEmbedding(ctx, queryVec, k, map[string]string{"candidate_id": candidateID}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: query embedding: %v", core.ErrStoreUnavailable, err)
	}

	records := make([]memory.ScoredRecord, 0, len(results))
	for i, res := range results {
		rec, err := recordFromResult(res)
		if err != nil {
			log.Printf("[CHROMEM] Skipping result #%d: %v", i+1, err)
			continue
		}
		records = append(records, memory.ScoredRecord{Record: rec, Similarity: res.Similarity})
	}
	return records, nil
}

// TopicAggregates recomputes per-topic mean score and sample count from
// everything the candidate has on record.
func (s *Store) TopicAggregates(ctx context.Context, candidateID string) (map[string]core.TopicStat, error) {
	col, err := s.getOrCreateCollection(candidateID)
	if err != nil {
		return nil, err
	}

	count := col.Count()
	if count == 0 {
		return map[string]core.TopicStat{}, nil
	}

	// chromem has no list-all, so scan the full collection with a fixed
	// probe vector; similarity values are ignored here.
	results, err := col.QueryEmbedding(ctx, placeholderVector(s.dimensions), count,
		map[string]string{"candidate_id": candidateID}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: scan collection: %v", core.ErrStoreUnavailable, err)
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, res := range results {
		topic := res.Metadata["topic"]
		score, err := strconv.ParseFloat(res.Metadata["score"], 64)
		if err != nil {
			log.Printf("[CHROMEM] Skipping record %s: bad score %q", res.ID, res.Metadata["score"])
			continue
		}
		sums[topic] += score
		counts[topic]++
	}

	stats := make(map[string]core.TopicStat, len(sums))
	for topic, sum := range sums {
		stats[topic] = core.TopicStat{
			MeanScore: sum / float64(counts[topic]),
			Samples:   counts[topic],
		}
	}
	return stats, nil
}

// Close releases resources. Persistence is write-through, nothing to flush.
func (s *Store) Close() error {
	return nil
}

// recordFromResult rebuilds a PerformanceRecord from a chromem result.
func recordFromResult(res chromem.Result) (*core.PerformanceRecord, error) {
	score, err := strconv.ParseFloat(res.Metadata["score"], 64)
	if err != nil {
		return nil, fmt.Errorf("parse score: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, res.Metadata["created_at"])
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	var content struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(res.Content), &content); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}

	return &core.PerformanceRecord{
		ID:          res.ID,
		CandidateID: res.Metadata["candidate_id"],
		SessionID:   res.Metadata["session_id"],
		Topic:       res.Metadata["topic"],
		Score:       score,
		Question:    content.Question,
		Answer:      content.Answer,
		Embedding:   res.Embedding,
		CreatedAt:   createdAt,
	}, nil
}

// placeholderVector is a fixed unit vector used for degraded-mode
// appends and full-collection scans.
func placeholderVector(dims int) []float32 {
	v := make([]float32, dims)
	v[0] = 1
	return v
}

func noEmbed(_ context.Context, text string) ([]float32, error) {
	return nil, fmt.Errorf("no embedding func configured (document %q missing vector)", text)
}
