package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Path to the definitions JSON produced by the builder.
	DefinitionsPath string

	// Autocomplete result cap.
	AutocompleteLimit int
}

func Load() Config {
	cfg := Config{
		Port:              envOr("PORT", "8095"),
		DefinitionsPath:   envOr("DEFINITIONS_PATH", "data/definitions.json"),
		AutocompleteLimit: envInt("AUTOCOMPLETE_LIMIT", 20),
	}

	if cfg.AutocompleteLimit <= 0 {
		cfg.AutocompleteLimit = 20
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DefinitionsPath == "" {
		return fmt.Errorf("DEFINITIONS_PATH is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
