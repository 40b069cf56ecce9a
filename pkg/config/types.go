package config

// AlexYAMLConfig represents the complete alex.yaml file structure: graph
// routing thresholds, the tool-call loop bound, summarizer batch sizes, the
// trade ledger TTL, and the filesystem sandbox policy.
type AlexYAMLConfig struct {
	Graph      *GraphConfig      `yaml:"graph"`
	Summarizer *SummarizerConfig `yaml:"summarizer"`
	ToolLoop   *ToolLoopConfig   `yaml:"tool_loop"`
	Trading    *TradingConfig    `yaml:"trading"`
	Filesystem *FilesystemConfig `yaml:"filesystem"`
	App        *AppConfig        `yaml:"app"`
}

// ModelProvidersYAMLConfig represents the complete model-providers.yaml file.
type ModelProvidersYAMLConfig struct {
	Models map[string]ModelConfig `yaml:"models"`
}

// ModelConfig describes one opaque model adapter endpoint.
type ModelConfig struct {
	Name        string  `yaml:"name"`
	Endpoint    string  `yaml:"endpoint"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Temperature float32 `yaml:"temperature,omitempty"`
	TimeoutSecs int     `yaml:"timeout_seconds,omitempty"`
}

// GraphConfig tunes turn-graph routing.
type GraphConfig struct {
	ComplexityThreshold *float64 `yaml:"complexity_threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
	FlashModel          string   `yaml:"flash_model,omitempty"`
	ProModel            string   `yaml:"pro_model,omitempty"`
	EngineerModel       string   `yaml:"engineer_model,omitempty"`
}

// SummarizerConfig tunes the batch pipeline.
type SummarizerConfig struct {
	DailyBatchCap       *int   `yaml:"daily_batch_cap,omitempty" validate:"omitempty,min=1"`
	WeeklyBatchCap      *int   `yaml:"weekly_batch_cap,omitempty" validate:"omitempty,min=1"`
	MonthlyBatchCap     *int   `yaml:"monthly_batch_cap,omitempty" validate:"omitempty,min=1"`
	EmbeddingModel      string `yaml:"embedding_model,omitempty"`
	EmbeddingDimensions *int   `yaml:"embedding_dimensions,omitempty" validate:"omitempty,min=1"`
	TickInterval        string `yaml:"tick_interval,omitempty"`
}

// ToolLoopConfig tunes the bounded tool-calling loop.
type ToolLoopConfig struct {
	MaxIterations *int `yaml:"max_iterations,omitempty" validate:"omitempty,min=1"`
}

// TradingConfig tunes the confirmed-trade state machine and brokerage client.
type TradingConfig struct {
	UseSandbox          *bool  `yaml:"use_sandbox,omitempty"`
	PendingTradeTTLSecs *int   `yaml:"pending_trade_ttl_seconds,omitempty" validate:"omitempty,min=1"`
	UsernameEnv         string `yaml:"username_env,omitempty"`
	PasswordEnv         string `yaml:"password_env,omitempty"`
	SandboxUsernameEnv  string `yaml:"sandbox_username_env,omitempty"`
	SandboxPasswordEnv  string `yaml:"sandbox_password_env,omitempty"`
	RememberTokenEnv    string `yaml:"remember_token_env,omitempty"`
	SessionCachePath    string `yaml:"session_cache_path,omitempty"`
}

// FilesystemConfig tunes the sandboxed filesystem tools.
type FilesystemConfig struct {
	ProjectRoot       string   `yaml:"project_root,omitempty"`
	AllowedSubtrees   []string `yaml:"allowed_subtrees,omitempty"`
	AllowedExtensions []string `yaml:"allowed_extensions,omitempty"`
	ProtectedPaths    []string `yaml:"protected_paths,omitempty"`
	GitTimeoutSecs    *int     `yaml:"git_timeout_seconds,omitempty" validate:"omitempty,min=10,max=30"`
}

// AppConfig holds environment-tier settings.
type AppConfig struct {
	Env string `yaml:"env,omitempty" validate:"omitempty,oneof=development staging production"`
}
