package engine_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/dronaai/drona-go-sdk/core"
	"github.com/dronaai/drona-go-sdk/engine"
	"github.com/dronaai/drona-go-sdk/memory"
	"github.com/dronaai/drona-go-sdk/memory/embedder/mock"
	"github.com/dronaai/drona-go-sdk/memory/store/chromem"
)

const dims = 384

var seedTopics = []string{"graphs", "concurrency", "sql"}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	store, err := chromem.New(chromem.Config{Dimensions: dims})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return engine.New(store, mock.NewWithDimensions(dims), nil,
		engine.WithSeedTopics(seedTopics))
}

func TestEngine_ColdStart(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	spec, err := eng.NextQuestionSpec(ctx, "newcomer", "session1")
	if err != nil {
		t.Fatalf("Cold start must not fail: %v", err)
	}

	if spec.Difficulty != core.DifficultyModerate {
		t.Errorf("Expected Moderate on cold start, got %s", spec.Difficulty)
	}
	if len(spec.Topics) != len(seedTopics) {
		t.Fatalf("Expected uniform distribution over %d seed topics, got %d", len(seedTopics), len(spec.Topics))
	}
	for _, tw := range spec.Topics {
		if tw.Weight != spec.Topics[0].Weight {
			t.Errorf("Expected uniform weights, got %v", spec.Topics)
		}
	}
}

func TestEngine_RecordAnswerDrivesDifficulty(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	for i := 0; i < 3; i++ {
		if err := eng.RecordAnswer(ctx, "cand1", "session1", "graphs", 9, "a strong answer"); err != nil {
			t.Fatalf("Failed to record answer: %v", err)
		}
	}

	spec, err := eng.NextQuestionSpec(ctx, "cand1", "session1")
	if err != nil {
		t.Fatalf("Failed to get spec: %v", err)
	}
	if spec.Difficulty != core.DifficultyTough {
		t.Errorf("Expected Tough after [9,9,9], got %s", spec.Difficulty)
	}

	// A weak answer slides the window to [9,9,2] -> Moderate
	if err := eng.RecordAnswer(ctx, "cand1", "session1", "graphs", 2, "a weak answer"); err != nil {
		t.Fatalf("Failed to record answer: %v", err)
	}
	spec, err = eng.NextQuestionSpec(ctx, "cand1", "session1")
	if err != nil {
		t.Fatalf("Failed to get spec: %v", err)
	}
	if spec.Difficulty != core.DifficultyModerate {
		t.Errorf("Expected Moderate after window slide, got %s", spec.Difficulty)
	}
}

func TestEngine_NextQuestionSpecIdempotent(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	if err := eng.RecordAnswer(ctx, "cand1", "session1", "graphs", 4, "an answer"); err != nil {
		t.Fatalf("Failed to record answer: %v", err)
	}

	first, err := eng.NextQuestionSpec(ctx, "cand1", "session1")
	if err != nil {
		t.Fatalf("Failed to get first spec: %v", err)
	}
	second, err := eng.NextQuestionSpec(ctx, "cand1", "session1")
	if err != nil {
		t.Fatalf("Failed to get second spec: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Back-to-back specs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestEngine_ValidationDoesNotTouchWindow(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	err := eng.RecordAnswer(ctx, "cand1", "session1", "graphs", 11, "impossible score")
	if !core.IsValidation(err) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}

	// The rejected answer must not have skewed difficulty.
	spec, err := eng.NextQuestionSpec(ctx, "cand1", "session1")
	if err != nil {
		t.Fatalf("Failed to get spec: %v", err)
	}
	if spec.Difficulty != core.DifficultyModerate {
		t.Errorf("Expected Moderate after rejected answer, got %s", spec.Difficulty)
	}
}

func TestEngine_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	for i := 0; i < 3; i++ {
		if err := eng.RecordAnswer(ctx, "cand1", "session1", "graphs", 2, "weak"); err != nil {
			t.Fatalf("Failed to record answer: %v", err)
		}
	}

	// A fresh session for the same candidate starts back at Moderate.
	spec, err := eng.NextQuestionSpec(ctx, "cand1", "session2")
	if err != nil {
		t.Fatalf("Failed to get spec: %v", err)
	}
	if spec.Difficulty != core.DifficultyModerate {
		t.Errorf("Expected fresh session at Moderate, got %s", spec.Difficulty)
	}
}

func TestEngine_EndSessionDiscardsWindow(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	for i := 0; i < 3; i++ {
		if err := eng.RecordAnswer(ctx, "cand1", "session1", "graphs", 9, "strong"); err != nil {
			t.Fatalf("Failed to record answer: %v", err)
		}
	}
	eng.EndSession("cand1", "session1")

	spec, err := eng.NextQuestionSpec(ctx, "cand1", "session1")
	if err != nil {
		t.Fatalf("Failed to get spec: %v", err)
	}
	if spec.Difficulty != core.DifficultyModerate {
		t.Errorf("Expected Moderate after session end, got %s", spec.Difficulty)
	}
}

// brokenEmbedder simulates an unavailable embedding backend.
type brokenEmbedder struct{}

func (brokenEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, fmt.Errorf("embedding service down")
}

func (brokenEmbedder) Dimensions() int { return dims }

func TestEngine_EmbeddingFailureIsDegradedNotFatal(t *testing.T) {
	ctx := context.Background()
	store, err := chromem.New(chromem.Config{Dimensions: dims})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	eng := engine.New(store, brokenEmbedder{}, nil, engine.WithSeedTopics(seedTopics))

	if err := eng.RecordAnswer(ctx, "cand1", "session1", "graphs", 3, "an answer"); err != nil {
		t.Fatalf("Embedding failure must not fail RecordAnswer: %v", err)
	}

	// The record still shapes topic weights via aggregates.
	stats, err := store.TopicAggregates(ctx, "cand1")
	if err != nil {
		t.Fatalf("Failed to aggregate: %v", err)
	}
	if stats["graphs"].Samples != 1 {
		t.Errorf("Expected degraded record persisted, got %+v", stats)
	}
}

// downStore simulates an unreachable persistence backend.
type downStore struct{}

func (downStore) Append(context.Context, *core.PerformanceRecord) (string, error) {
	return "", fmt.Errorf("append: %w", core.ErrStoreUnavailable)
}

func (downStore) QuerySimilar(context.Context, string, []float32, int) ([]memory.ScoredRecord, error) {
	return nil, fmt.Errorf("query: %w", core.ErrStoreUnavailable)
}

func (downStore) TopicAggregates(context.Context, string) (map[string]core.TopicStat, error) {
	return nil, fmt.Errorf("aggregates: %w", core.ErrStoreUnavailable)
}

func (downStore) Close() error { return nil }

func TestEngine_StoreUnavailablePropagates(t *testing.T) {
	ctx := context.Background()
	eng := engine.New(downStore{}, mock.NewWithDimensions(dims), nil,
		engine.WithSeedTopics(seedTopics))

	if _, err := eng.NextQuestionSpec(ctx, "cand1", "session1"); !errors.Is(err, core.ErrStoreUnavailable) {
		t.Errorf("Expected ErrStoreUnavailable from NextQuestionSpec, got %v", err)
	}
	if err := eng.RecordAnswer(ctx, "cand1", "session1", "graphs", 5, "an answer"); !errors.Is(err, core.ErrStoreUnavailable) {
		t.Errorf("Expected ErrStoreUnavailable from RecordAnswer, got %v", err)
	}
}
