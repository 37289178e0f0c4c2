package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DRONA_CONFIG is set
//  3. env (prefix DRONA_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DRONA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: DRONA_WINDOW_SIZE -> window_size, keeping
	// underscores so keys match the koanf tags on the struct.
	envProvider := env.Provider("DRONA_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "drona_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.WindowSize <= 0 {
		return nil, errors.New("window_size must be positive")
	}
	if cfg.Epsilon <= 0 {
		return nil, errors.New("epsilon must be positive")
	}
	return &cfg, nil
}
