// Package config defines SDK configuration and its layered loading.
package config

// Config contains process configuration for the adaptive interview
// engine. Zero values are filled by New.
type Config struct {
	// StorePath enables persistent vector memory when non-empty.
	StorePath string `koanf:"store_path"`

	// EmbedderDims is the embedding vector size.
	EmbedderDims int `koanf:"embedder_dims"`

	// WindowSize is the rolling-window length driving difficulty.
	WindowSize int `koanf:"window_size"`

	// Epsilon is the weight floor for mastered topics.
	Epsilon float64 `koanf:"epsilon"`

	// UnseenBoost is the raw weight for topics with no samples.
	UnseenBoost float64 `koanf:"unseen_boost"`

	// WeakScoreCeiling marks scores below it as struggles.
	WeakScoreCeiling float64 `koanf:"weak_score_ceiling"`

	// RetrievalTopK caps weak topics returned by the similarity probe.
	RetrievalTopK int `koanf:"retrieval_top_k"`

	// MinSimilarity drops probe results below this cosine similarity.
	MinSimilarity float64 `koanf:"min_similarity"`

	// RedisURL enables the shared question cache when non-empty; an
	// in-process cache is used otherwise.
	RedisURL string `koanf:"redis_url"`

	// CacheTTLHours is the question cache lifetime.
	CacheTTLHours int `koanf:"cache_ttl_hours"`

	// Model is the Claude model used for generation.
	Model string `koanf:"model"`

	// MaxTokens caps generator responses.
	MaxTokens int64 `koanf:"max_tokens"`
}

// New returns a Config with local-SDK defaults.
func New() *Config {
	return &Config{
		EmbedderDims:     384,
		WindowSize:       3,
		Epsilon:          0.5,
		UnseenBoost:      3.0,
		WeakScoreCeiling: 7.0,
		RetrievalTopK:    5,
		CacheTTLHours:    6,
		Model:            "claude-sonnet-4-20250514",
		MaxTokens:        4096,
	}
}
