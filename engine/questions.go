package engine

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dronaai/drona-go-sdk/cache"
	"github.com/dronaai/drona-go-sdk/core"
	"github.com/dronaai/drona-go-sdk/generator"
)

// QuestionSetRequest describes one question-set production call.
type QuestionSetRequest struct {
	// Topics overrides the engine's seed topics when non-empty.
	Topics []string

	// Count is how many questions to produce.
	Count int

	// Difficulty pins the tier; leave empty for adaptive selection
	// from the session's rolling window.
	Difficulty core.Difficulty

	Role          string
	Audience      string
	ResumeContext string
}

// GenerateQuestions produces the next question set for a session:
// memory-personalized spec, cache lookup, generation, cache fill.
// fromCache reports whether the set was served from cache.
//
// The cache is bypassed whenever weak-topic personalization applies; a
// cached generic set would defeat the point of remembering weaknesses.
func (e *Engine) GenerateQuestions(ctx context.Context, candidateID, sessionID string, req QuestionSetRequest) (questions []core.Question, fromCache bool, err error) {
	if e.generator == nil {
		return nil, false, fmt.Errorf("no generator configured")
	}

	canonical := req.Topics
	if len(canonical) == 0 {
		canonical = e.seedTopics
	}

	spec, err := e.nextSpec(ctx, candidateID, sessionID, canonical)
	if err != nil {
		return nil, false, err
	}

	difficulty := req.Difficulty
	if !difficulty.Valid() {
		difficulty = spec.Difficulty
	}

	weakTopics, err := e.retriever.WeakTopics(ctx, candidateID)
	if err != nil {
		// Degraded mode: continue without weak-area emphasis.
		if !errors.Is(err, core.ErrEmbeddingUnavailable) {
			return nil, false, err
		}
		log.Printf("[ENGINE] Weak-topic probe degraded: %v", err)
		weakTopics = nil
	}

	historySummary, err := e.retriever.HistorySummary(ctx, candidateID)
	if err != nil {
		return nil, false, err
	}

	topics := make([]string, len(spec.Topics))
	for i, tw := range spec.Topics {
		topics[i] = tw.Topic
	}

	key := cache.Key{
		Topics:     topics,
		Difficulty: difficulty,
		Role:       req.Role,
		Count:      req.Count,
	}

	if e.cache != nil && len(weakTopics) == 0 {
		if cached, ok := e.cache.Get(ctx, key); ok {
			log.Printf("[ENGINE] Question set served from cache for candidate=%s", candidateID)
			return cached, true, nil
		}
	}

	questions, err = e.generator.GenerateQuestions(ctx, generator.QuestionRequest{
		Topics:         topics,
		Count:          req.Count,
		Difficulty:     difficulty,
		Role:           req.Role,
		Audience:       req.Audience,
		ResumeContext:  req.ResumeContext,
		WeakTopics:     weakTopics,
		HistorySummary: historySummary,
	})
	if err != nil {
		return nil, false, err
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, questions); err != nil {
			log.Printf("[ENGINE] Failed to cache question set: %v", err)
		}
	}
	return questions, false, nil
}
