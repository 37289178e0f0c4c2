package memory

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/dronaai/drona-go-sdk/core"
)

// weaknessProbe is the query text embedded to pull low-scoring history
// to the top of similarity search.
const weaknessProbe = "weak incorrect wrong failed struggle"

// Config holds Retriever tuning knobs.
type Config struct {
	// Epsilon is the minimum raw weight for a topic the candidate has
	// mastered, so exploration never fully stops. Must be > 0.
	Epsilon float64

	// UnseenBoost is the raw weight given to a topic with zero samples.
	// Set above Epsilon so unseen topics are not starved by
	// inverse-score weighting of seen ones. Exact magnitude is a
	// tunable, not a contract.
	UnseenBoost float64

	// WeakScoreCeiling marks a record as a struggle when its score is
	// strictly below this value.
	WeakScoreCeiling float64

	// TopK caps how many weak topics a similarity probe returns.
	TopK int

	// MinSimilarity drops probe results below this cosine similarity.
	// Zero keeps everything, which is the right default for the mock
	// embedder; raise it with a real semantic embedder.
	MinSimilarity float32
}

// DefaultConfig returns sensible defaults for the local SDK.
var DefaultConfig = &Config{
	Epsilon:          0.5,
	UnseenBoost:      3.0,
	WeakScoreCeiling: 7.0,
	TopK:             5,
}

// Retriever converts a candidate's stored history into a biased topic
// sampling distribution and a ranked list of weak areas.
type Retriever struct {
	store    Store
	embedder Embedder
	config   *Config
}

// NewRetriever creates a Retriever. A nil config uses DefaultConfig.
func NewRetriever(store Store, embedder Embedder, config *Config) *Retriever {
	if config == nil {
		config = DefaultConfig
	}
	return &Retriever{
		store:    store,
		embedder: embedder,
		config:   config,
	}
}

// TopicWeights produces the sampling distribution for the next question.
//
// For each topic with recorded samples the raw weight is
// max(Epsilon, 10 - mean score); topics on the canonical list with no
// samples get the UnseenBoost floor. Weights are normalized to sum to 1.
// With no history at all the distribution is uniform over the canonical
// list. Ordering follows canonical-list insertion order, with recorded
// topics outside the list appended alphabetically, so equal weights
// always come back in the same order.
func (r *Retriever) TopicWeights(ctx context.Context, candidateID string, canonical []string) ([]core.TopicWeight, error) {
	stats, err := r.store.TopicAggregates(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("topic aggregates: %w", err)
	}

	if len(stats) == 0 {
		log.Printf("[RETRIEVER] No history for candidate=%s, uniform over %d topics", candidateID, len(canonical))
		return Uniform(canonical), nil
	}

	topics := orderedTopics(canonical, stats)
	if len(topics) == 0 {
		return nil, nil
	}

	weights := make([]core.TopicWeight, 0, len(topics))
	var sum float64
	for _, t := range topics {
		var w float64
		if st, ok := stats[t]; ok && st.Samples > 0 {
			w = 10 - st.MeanScore
			if w < r.config.Epsilon {
				w = r.config.Epsilon
			}
		} else {
			w = r.config.UnseenBoost
		}
		weights = append(weights, core.TopicWeight{Topic: t, Weight: w})
		sum += w
	}

	for i := range weights {
		weights[i].Weight /= sum
	}
	return weights, nil
}

// WeakTopics probes vector memory for the candidate's historical
// struggles and returns up to TopK topics ranked by how often they show
// up among low-scoring records.
func (r *Retriever) WeakTopics(ctx context.Context, candidateID string) ([]string, error) {
	probe, err := r.embedder.Embed(ctx, weaknessProbe)
	if err != nil {
		return nil, fmt.Errorf("%w: embed probe: %v", core.ErrEmbeddingUnavailable, err)
	}

	// Pull a wider net than TopK; several records can share a topic.
	results, err := r.store.QuerySimilar(ctx, candidateID, probe, r.config.TopK*3)
	if err != nil {
		return nil, fmt.Errorf("query similar: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	counts := make(map[string]int)
	for _, res := range results {
		if res.Similarity < r.config.MinSimilarity {
			continue
		}
		if res.Record.Score < r.config.WeakScoreCeiling {
			counts[res.Record.Topic]++
		}
	}

	topics := make([]string, 0, len(counts))
	for t := range counts {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool {
		if counts[topics[i]] != counts[topics[j]] {
			return counts[topics[i]] > counts[topics[j]]
		}
		return topics[i] < topics[j]
	})

	if len(topics) > r.config.TopK {
		topics = topics[:r.config.TopK]
	}
	log.Printf("[RETRIEVER] candidate=%s weak topics: %v", candidateID, topics)
	return topics, nil
}

// HistorySummary renders a one-line summary of the candidate's history
// for prompt injection. Empty string when there is no history.
func (r *Retriever) HistorySummary(ctx context.Context, candidateID string) (string, error) {
	stats, err := r.store.TopicAggregates(ctx, candidateID)
	if err != nil {
		return "", fmt.Errorf("topic aggregates: %w", err)
	}
	if len(stats) == 0 {
		return "", nil
	}

	var total, strong int
	var weak []string
	for t, st := range stats {
		total += st.Samples
		if st.MeanScore >= r.config.WeakScoreCeiling {
			strong++
		} else {
			weak = append(weak, t)
		}
	}
	sort.Strings(weak)

	weakLabel := "none identified"
	if len(weak) > 0 {
		weakLabel = strings.Join(weak, ", ")
	}
	return fmt.Sprintf("Past performance: %d answers across %d topics, %d topics at passing level. Weak areas from history: %s.",
		total, len(stats), strong, weakLabel), nil
}

// Uniform returns an equal-weight distribution over the given topics,
// preserving their order. Nil when the list is empty.
func Uniform(topics []string) []core.TopicWeight {
	if len(topics) == 0 {
		return nil
	}
	w := 1.0 / float64(len(topics))
	out := make([]core.TopicWeight, len(topics))
	for i, t := range topics {
		out[i] = core.TopicWeight{Topic: t, Weight: w}
	}
	return out
}

// orderedTopics merges the canonical list with any recorded topics not
// on it. Canonical order wins; extras are appended alphabetically.
func orderedTopics(canonical []string, stats map[string]core.TopicStat) []string {
	seen := make(map[string]bool, len(canonical))
	out := make([]string, 0, len(canonical)+len(stats))
	for _, t := range canonical {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}

	var extras []string
	for t := range stats {
		if !seen[t] {
			extras = append(extras, t)
		}
	}
	sort.Strings(extras)
	return append(out, extras...)
}
