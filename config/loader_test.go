package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dronaai/drona-go-sdk/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if cfg.EmbedderDims != 384 {
		t.Errorf("Expected embedder_dims 384, got %d", cfg.EmbedderDims)
	}
	if cfg.WindowSize != 3 {
		t.Errorf("Expected window_size 3, got %d", cfg.WindowSize)
	}
	if cfg.CacheTTLHours != 6 {
		t.Errorf("Expected cache_ttl_hours 6, got %d", cfg.CacheTTLHours)
	}
	if cfg.StorePath != "" || cfg.RedisURL != "" {
		t.Errorf("Expected persistence and redis off by default, got %q / %q", cfg.StorePath, cfg.RedisURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DRONA_WINDOW_SIZE", "5")
	t.Setenv("DRONA_STORE_PATH", "/tmp/drona-memory")
	t.Setenv("DRONA_EPSILON", "0.25")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	if cfg.WindowSize != 5 {
		t.Errorf("Expected window_size 5 from env, got %d", cfg.WindowSize)
	}
	if cfg.StorePath != "/tmp/drona-memory" {
		t.Errorf("Expected store_path from env, got %q", cfg.StorePath)
	}
	if cfg.Epsilon != 0.25 {
		t.Errorf("Expected epsilon 0.25 from env, got %v", cfg.Epsilon)
	}
	// Untouched keys keep their defaults.
	if cfg.RetrievalTopK != 5 {
		t.Errorf("Expected retrieval_top_k default 5, got %d", cfg.RetrievalTopK)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drona.yaml")
	data := []byte("window_size: 4\nmodel: claude-3-5-haiku-latest\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("DRONA_CONFIG", path)
	t.Setenv("DRONA_WINDOW_SIZE", "7")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	if cfg.Model != "claude-3-5-haiku-latest" {
		t.Errorf("Expected model from file, got %q", cfg.Model)
	}
	if cfg.WindowSize != 7 {
		t.Errorf("Expected env to override file, got %d", cfg.WindowSize)
	}
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("DRONA_WINDOW_SIZE", "0")
	if _, err := config.Load(); err == nil {
		t.Error("Expected an error for window_size 0")
	}

	t.Setenv("DRONA_WINDOW_SIZE", "3")
	t.Setenv("DRONA_EPSILON", "-1")
	if _, err := config.Load(); err == nil {
		t.Error("Expected an error for negative epsilon")
	}
}
