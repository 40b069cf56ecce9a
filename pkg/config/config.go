package config

// Config is the umbrella configuration object returned by Initialize and
// threaded through the server, turn graph, summarizer, and trading packages.
type Config struct {
	configDir string

	Graph      *GraphConfig
	Summarizer *SummarizerConfig
	ToolLoop   *ToolLoopConfig
	Trading    *TradingConfig
	Filesystem *FilesystemConfig
	App        *AppConfig

	ModelRegistry *ModelRegistry
}

// ConfigDir returns the directory Initialize loaded from.
func (c *Config) ConfigDir() string { return c.configDir }

// ConfigStats summarizes loaded configuration for logging/health endpoints.
type ConfigStats struct {
	Models int
}

// Stats returns configuration statistics for the /health endpoint.
func (c *Config) Stats() ConfigStats {
	return ConfigStats{Models: len(c.ModelRegistry.GetAll())}
}

// GetModel is a convenience wrapper around ModelRegistry.Get.
func (c *Config) GetModel(name string) (*ModelConfig, error) {
	return c.ModelRegistry.Get(name)
}
