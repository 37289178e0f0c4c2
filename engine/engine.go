// Package engine is the session orchestrator: it ties vector memory,
// weak-area retrieval and the rolling-window difficulty controller into
// the two entry points the rest of the system calls, NextQuestionSpec
// and RecordAnswer.
package engine

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dronaai/drona-go-sdk/adaptive"
	"github.com/dronaai/drona-go-sdk/cache"
	"github.com/dronaai/drona-go-sdk/core"
	"github.com/dronaai/drona-go-sdk/generator"
	"github.com/dronaai/drona-go-sdk/memory"
)

// Engine coordinates memory, retrieval and difficulty for interview
// sessions. The store is the only shared resource; each session owns an
// independent rolling window, so sessions can run concurrently.
type Engine struct {
	store      memory.Store
	embedder   memory.Embedder
	retriever  *memory.Retriever
	cache      cache.Cache          // optional
	generator  *generator.Generator // optional
	seedTopics []string
	windowSize int

	mu       sync.Mutex
	sessions map[string]*session
}

// session holds per-session state. The difficulty window is discarded
// with the session and never persisted.
type session struct {
	controller *adaptive.Controller
}

// Option configures the engine.
type Option func(*Engine)

// WithCache sets the question-set cache.
func WithCache(c cache.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithGenerator sets the question/feedback generator.
func WithGenerator(g *generator.Generator) Option {
	return func(e *Engine) {
		e.generator = g
	}
}

// WithSeedTopics sets the canonical topic list used for cold-start
// sampling (typically from the resume/topic-seed provider).
func WithSeedTopics(topics []string) Option {
	return func(e *Engine) {
		e.seedTopics = topics
	}
}

// WithWindowSize overrides the rolling-window size.
func WithWindowSize(n int) Option {
	return func(e *Engine) {
		e.windowSize = n
	}
}

// New creates an engine over the given store and embedder.
// retrieverConfig may be nil for defaults.
func New(store memory.Store, embedder memory.Embedder, retrieverConfig *memory.Config, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		embedder:   embedder,
		retriever:  memory.NewRetriever(store, embedder, retrieverConfig),
		windowSize: adaptive.DefaultWindowSize,
		sessions:   make(map[string]*session),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Retriever exposes the engine's weak-area retriever for callers that
// want weak topics or history summaries directly.
func (e *Engine) Retriever() *memory.Retriever {
	return e.retriever
}

// NextQuestionSpec returns the topic distribution and difficulty tier
// for the session's next question. It never fails on empty history: a
// cold-start candidate gets a uniform distribution over the seed topics
// and Moderate difficulty. Store errors propagate unchanged.
func (e *Engine) NextQuestionSpec(ctx context.Context, candidateID, sessionID string) (*core.QuestionSpec, error) {
	return e.nextSpec(ctx, candidateID, sessionID, e.seedTopics)
}

func (e *Engine) nextSpec(ctx context.Context, candidateID, sessionID string, canonical []string) (*core.QuestionSpec, error) {
	weights, err := e.retriever.TopicWeights(ctx, candidateID, canonical)
	if err != nil {
		return nil, err
	}

	spec := &core.QuestionSpec{
		Topics:     weights,
		Difficulty: e.session(candidateID, sessionID).controller.Current(),
	}
	log.Printf("[ENGINE] Next spec for candidate=%s session=%s: difficulty=%s topics=%d",
		candidateID, sessionID, spec.Difficulty, len(spec.Topics))
	return spec, nil
}

// RecordAnswer is the sole write path: it embeds the answer, appends
// the performance record and pushes the score into the session's
// rolling window. Call it exactly once per answered question.
//
// An embedding failure is degraded-mode, not fatal: the record is
// appended with a placeholder vector and only similarity retrieval
// suffers. Validation and store errors are returned before the window
// is touched, so a rejected answer never skews difficulty.
func (e *Engine) RecordAnswer(ctx context.Context, candidateID, sessionID, topic string, score float64, answerText string) error {
	rec := &core.PerformanceRecord{
		CandidateID: candidateID,
		SessionID:   sessionID,
		Topic:       topic,
		Score:       score,
		Answer:      answerText,
		CreatedAt:   time.Now(),
	}

	embedding, err := e.embedder.Embed(ctx, memory.EmbeddingText(rec))
	if err != nil {
		log.Printf("[ENGINE] %v: storing record without embedding: %v", core.ErrEmbeddingUnavailable, err)
	} else {
		rec.Embedding = embedding
	}

	if _, err := e.store.Append(ctx, rec); err != nil {
		return fmt.Errorf("append record: %w", err)
	}

	tier := e.session(candidateID, sessionID).controller.Observe(score)
	log.Printf("[ENGINE] Recorded answer candidate=%s session=%s topic=%s score=%.2f next_tier=%s",
		candidateID, sessionID, topic, score, tier)
	return nil
}

// EndSession discards the session's rolling window. History in the
// store is untouched.
func (e *Engine) EndSession(candidateID, sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, sessionKey(candidateID, sessionID))
}

// session returns the state for a (candidate, session) pair, creating
// it on first use. Calls within one session are sequential by contract;
// the lock only protects the map against concurrent sessions.
func (e *Engine) session(candidateID, sessionID string) *session {
	key := sessionKey(candidateID, sessionID)

	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[key]
	if !ok {
		s = &session{controller: adaptive.NewController(e.windowSize)}
		e.sessions[key] = s
	}
	return s
}

func sessionKey(candidateID, sessionID string) string {
	return candidateID + "/" + sessionID
}
