package config

// builtinDefaults holds the values used when the user's alex.yaml omits a
// key. Kept as plain Go literals rather than an embedded YAML file since
// the set is small and closed.
var builtinDefaults = AlexYAMLConfig{
	Graph: &GraphConfig{
		ComplexityThreshold: floatPtr(0.7),
		FlashModel:          "flash",
		ProModel:            "pro",
		EngineerModel:       "engineer",
	},
	Summarizer: &SummarizerConfig{
		DailyBatchCap:       intPtr(7),
		WeeklyBatchCap:      intPtr(4),
		MonthlyBatchCap:     intPtr(2),
		EmbeddingModel:      "embedding",
		EmbeddingDimensions: intPtr(768),
		TickInterval:        "1h",
	},
	ToolLoop: &ToolLoopConfig{
		MaxIterations: intPtr(10),
	},
	Trading: &TradingConfig{
		UseSandbox:          boolPtr(true),
		PendingTradeTTLSecs: intPtr(300),
		UsernameEnv:         "TASTY_USERNAME",
		PasswordEnv:         "TASTY_PASSWORD",
		SandboxUsernameEnv:  "TASTY_SANDBOX_USERNAME",
		SandboxPasswordEnv:  "TASTY_SANDBOX_PASSWORD",
		RememberTokenEnv:    "TASTY_REMEMBER_TOKEN",
		SessionCachePath:    "$HOME/.alex/tastytrade/session.json",
	},
	Filesystem: &FilesystemConfig{
		ProjectRoot:       ".",
		AllowedSubtrees:   []string{"."},
		AllowedExtensions: []string{".go", ".py", ".md", ".yaml", ".yml", ".json", ".txt", ".toml"},
		ProtectedPaths:    []string{".env", "go.mod", "go.sum"},
		GitTimeoutSecs:    intPtr(20),
	},
	App: &AppConfig{
		Env: "development",
	},
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }
