package config

import "fmt"

// ModelRegistry resolves model names (the flash/pro/engineer/embedding model
// identifiers used throughout the turn graph and summarizer) to their
// adapter endpoint configuration.
type ModelRegistry struct {
	models map[string]*ModelConfig
}

// NewModelRegistry builds a registry from the merged model-providers.yaml.
func NewModelRegistry(models map[string]ModelConfig) *ModelRegistry {
	r := &ModelRegistry{models: make(map[string]*ModelConfig, len(models))}
	for name, m := range models {
		mCopy := m
		r.models[name] = &mCopy
	}
	return r
}

// Get retrieves a model configuration by name.
func (r *ModelRegistry) Get(name string) (*ModelConfig, error) {
	m, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("model %q not configured", name)
	}
	return m, nil
}

// GetAll returns every registered model.
func (r *ModelRegistry) GetAll() map[string]*ModelConfig {
	return r.models
}
