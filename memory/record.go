package memory

import (
	"fmt"
	"strings"

	"github.com/dronaai/drona-go-sdk/core"
)

// Validate checks a record against the store's persistence contract.
// Rejected records are never persisted.
func Validate(rec *core.PerformanceRecord) error {
	if rec == nil {
		return &core.ValidationError{Field: "record", Reason: "must not be nil"}
	}
	if strings.TrimSpace(rec.CandidateID) == "" {
		return &core.ValidationError{Field: "candidate_id", Reason: "must not be empty"}
	}
	if strings.TrimSpace(rec.Topic) == "" {
		return &core.ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	if rec.Score < 0 || rec.Score > 10 {
		return &core.ValidationError{
			Field:  "score",
			Reason: fmt.Sprintf("%.2f outside [0, 10]", rec.Score),
		}
	}
	return nil
}

// EmbeddingText renders a record as the text that gets embedded.
// Topic and score are included so semantically similar struggles land
// near each other in vector space even across question phrasings.
func EmbeddingText(rec *core.PerformanceRecord) string {
	return fmt.Sprintf("Topic: %s | Question: %s | Answer: %s | Score: %.1f/10",
		rec.Topic, rec.Question, rec.Answer, rec.Score)
}
