package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, merges, validates, and returns ready-to-use configuration.
// Steps: load alex.yaml + model-providers.yaml, expand env vars, merge over
// built-in defaults, build registries, validate.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("configuration initialized", "models", cfg.Stats().Models)
	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	user, err := loadAlexYAML(configDir)
	if err != nil {
		return nil, NewLoadError("alex.yaml", err)
	}

	providers, err := loadModelProvidersYAML(configDir)
	if err != nil {
		return nil, NewLoadError("model-providers.yaml", err)
	}

	merged := builtinDefaults
	if err := mergo.Merge(&merged, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge user config over defaults: %w", err)
	}

	return &Config{
		configDir:     configDir,
		Graph:         merged.Graph,
		Summarizer:    merged.Summarizer,
		ToolLoop:      merged.ToolLoop,
		Trading:       merged.Trading,
		Filesystem:    merged.Filesystem,
		App:           merged.App,
		ModelRegistry: NewModelRegistry(providers.Models),
	}, nil
}

func loadAlexYAML(configDir string) (AlexYAMLConfig, error) {
	var cfg AlexYAMLConfig
	data, err := readAndExpand(filepath.Join(configDir, "alex.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse alex.yaml: %w", err)
	}
	return cfg, nil
}

func loadModelProvidersYAML(configDir string) (ModelProvidersYAMLConfig, error) {
	var cfg ModelProvidersYAMLConfig
	data, err := readAndExpand(filepath.Join(configDir, "model-providers.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse model-providers.yaml: %w", err)
	}
	return cfg, nil
}

func readAndExpand(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExpandEnv(data), nil
}

// validate checks structural invariants that mergo/yaml can't express: the
// embedding dimensionality must match the 768-dim vector columns.
func validate(cfg *Config) error {
	if cfg.Summarizer.EmbeddingDimensions != nil && *cfg.Summarizer.EmbeddingDimensions != 768 {
		return NewValidationError("summarizer.embedding_dimensions",
			"must be 768 to match the interactions/summaries vector columns")
	}
	if cfg.Graph.ComplexityThreshold != nil {
		t := *cfg.Graph.ComplexityThreshold
		if t < 0 || t > 1 {
			return NewValidationError("graph.complexity_threshold", "must be in [0,1]")
		}
	}
	return nil
}
