package core

import "time"

// Difficulty is the question difficulty tier produced by the adaptive engine.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyTough    Difficulty = "Tough"
)

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyTough:
		return true
	}
	return false
}

// Marks returns the mark value a question of this tier is worth.
// Easy=3, Moderate=5, Tough=10.
func (d Difficulty) Marks() int {
	switch d {
	case DifficultyEasy:
		return 3
	case DifficultyTough:
		return 10
	default:
		return 5
	}
}

// PerformanceRecord captures one answered interview question.
// Records are immutable once appended to a memory.Store; the store is
// append-only so weak-area inference always reflects true history.
type PerformanceRecord struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	SessionID   string    `json:"session_id"`
	Topic       string    `json:"topic"`
	Score       float64   `json:"score"` // [0, 10]
	Question    string    `json:"question,omitempty"`
	Answer      string    `json:"answer,omitempty"`
	Embedding   []float32 `json:"-"` // set once by the store, never mutated
	CreatedAt   time.Time `json:"created_at"`
}

// TopicStat is the aggregate view of a candidate's history for one topic.
type TopicStat struct {
	MeanScore float64
	Samples   int
}

// TopicWeight is one entry of a biased sampling distribution over topics.
// A slice of TopicWeight is ordered (canonical-list insertion order for
// ties) and its weights sum to 1.
type TopicWeight struct {
	Topic  string  `json:"topic"`
	Weight float64 `json:"weight"`
}

// QuestionSpec is what the question generator consumes: which topics to
// favor and at which difficulty tier.
type QuestionSpec struct {
	Topics     []TopicWeight `json:"topics"`
	Difficulty Difficulty    `json:"difficulty"`
}
