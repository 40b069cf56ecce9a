// Command alex-server boots the conversational agent server: HTTP API,
// turn graph, hybrid memory engine, and a ticker-driven summarization
// scheduler. Wiring order is config -> database -> services -> router.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/alex/pkg/api"
	"github.com/codeready-toolchain/alex/pkg/apperrors"
	"github.com/codeready-toolchain/alex/pkg/classifier"
	"github.com/codeready-toolchain/alex/pkg/config"
	"github.com/codeready-toolchain/alex/pkg/database"
	"github.com/codeready-toolchain/alex/pkg/graph"
	"github.com/codeready-toolchain/alex/pkg/llm"
	"github.com/codeready-toolchain/alex/pkg/memory"
	"github.com/codeready-toolchain/alex/pkg/retriever"
	"github.com/codeready-toolchain/alex/pkg/summarizer"
	"github.com/codeready-toolchain/alex/pkg/tools/filesystem"
	"github.com/codeready-toolchain/alex/pkg/trading"
	"github.com/codeready-toolchain/alex/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "Path to configuration directory")
	flag.Parse()

	if err := godotenv.Load(filepath.Join(*configDir, ".env")); err != nil {
		slog.Warn("no .env file loaded", "dir", *configDir, "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configDir); err != nil {
		slog.Error("alex-server exited with error", "error", err)
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes configuration errors (1) from runtime failures (2).
func exitCode(err error) int {
	var loadErr *config.LoadError
	var valErr *config.ValidationError
	var missErr *apperrors.ConfigurationMissingError
	if errors.As(err, &loadErr) || errors.As(err, &valErr) || errors.As(err, &missErr) {
		return 1
	}
	return 2
}

func run(ctx context.Context, configDir string) error {
	slog.Info("starting alex-server", "version", version.Full(), "config_dir", configDir)

	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return err
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return config.NewLoadError("environment", err)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dbClient.Close(); cerr != nil {
			slog.Error("error closing database client", "error", cerr)
		}
	}()
	slog.Info("connected to database", "host", dbCfg.Host, "database", dbCfg.Database)

	store := memory.NewStore(dbClient.Client, dbClient.DB())
	model := llm.NewHTTPAdapter(cfg.ModelRegistry)

	classifierModel := cfg.Graph.FlashModel
	cl := classifier.New(model, classifierModel)

	retrieverCfg := retriever.DefaultConfig()
	retrieverCfg.EmbeddingModel = cfg.Summarizer.EmbeddingModel
	retr := retriever.New(store, model, retrieverCfg)

	fsRoot, err := filepath.Abs(cfg.Filesystem.ProjectRoot)
	if err != nil {
		return err
	}
	fsToolset := filesystem.NewFromConfig(fsRoot, cfg.Filesystem)

	tradingClient := newTradingClient(cfg)
	ledger := trading.New(tradingClient, store, tradeTTL(cfg))

	graphDeps := graph.Deps{
		Classifier:          cl,
		Retriever:           retr,
		Model:               model,
		Store:               store,
		Filesystem:          fsToolset,
		Trading:             ledger,
		Sessions:            graph.NewSessionStore(0, 0),
		FlashModel:          cfg.Graph.FlashModel,
		ProModel:            cfg.Graph.ProModel,
		EngineerModel:       cfg.Graph.EngineerModel,
		EmbeddingModel:      cfg.Summarizer.EmbeddingModel,
		ComplexityThreshold: complexityThreshold(cfg),
		ToolLoopMaxIters:    toolLoopMaxIters(cfg),
	}

	summarizerCfg := summarizer.DefaultConfig()
	if cfg.Summarizer != nil {
		if cfg.Summarizer.DailyBatchCap != nil {
			summarizerCfg.DailyBatchCap = *cfg.Summarizer.DailyBatchCap
		}
		if cfg.Summarizer.WeeklyBatchCap != nil {
			summarizerCfg.WeeklyBatchCap = *cfg.Summarizer.WeeklyBatchCap
		}
		if cfg.Summarizer.MonthlyBatchCap != nil {
			summarizerCfg.MonthlyBatchCap = *cfg.Summarizer.MonthlyBatchCap
		}
		if cfg.Summarizer.EmbeddingModel != "" {
			summarizerCfg.EmbeddingModel = cfg.Summarizer.EmbeddingModel
		}
	}
	summarizerCfg.FlashModel = cfg.Graph.FlashModel
	summarizerCfg.ProModel = cfg.Graph.ProModel
	pipeline := summarizer.New(store, model, summarizerCfg)

	server := api.NewServer(cfg, dbClient, store, graphDeps, pipeline, model)

	tickInterval := tickInterval(cfg)
	stopTicker := startSummarizerTicker(ctx, pipeline, tickInterval)
	defer stopTicker()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", ":"+getEnv("HTTP_PORT", "8080"))
		if serveErr := server.Start(":" + getEnv("HTTP_PORT", "8080")); serveErr != nil {
			errCh <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case serveErr := <-errCh:
		return serveErr
	}
}

// startSummarizerTicker runs the three-tier pipeline on a fixed interval,
// returning a stop function.
func startSummarizerTicker(ctx context.Context, pipeline *summarizer.Pipeline, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := pipeline.RunAll(ctx); err != nil {
					slog.Warn("scheduled summarization run failed", "error", err)
				}
			}
		}
	}()
	return func() {
		ticker.Stop()
		<-done
	}
}

func newTradingClient(cfg *config.Config) trading.Client {
	if cfg.Trading == nil {
		return trading.NewStubClient()
	}
	useSandbox := cfg.Trading.UseSandbox == nil || *cfg.Trading.UseSandbox
	usernameEnv, passwordEnv := cfg.Trading.UsernameEnv, cfg.Trading.PasswordEnv
	if useSandbox {
		usernameEnv, passwordEnv = cfg.Trading.SandboxUsernameEnv, cfg.Trading.SandboxPasswordEnv
	}
	username, password := os.Getenv(usernameEnv), os.Getenv(passwordEnv)
	if username == "" || password == "" {
		slog.Warn("brokerage credentials not configured, trading tools run against the in-memory stub")
		return trading.NewStubClient()
	}
	creds := trading.Credentials{
		UseSandbox:    useSandbox,
		Username:      username,
		Password:      password,
		RememberToken: os.Getenv(cfg.Trading.RememberTokenEnv),
	}
	return trading.NewTastyTradeClient(creds, os.ExpandEnv(cfg.Trading.SessionCachePath))
}

func tradeTTL(cfg *config.Config) time.Duration {
	if cfg.Trading != nil && cfg.Trading.PendingTradeTTLSecs != nil {
		return time.Duration(*cfg.Trading.PendingTradeTTLSecs) * time.Second
	}
	return trading.DefaultTTL
}

func complexityThreshold(cfg *config.Config) float64 {
	if cfg.Graph != nil && cfg.Graph.ComplexityThreshold != nil {
		return *cfg.Graph.ComplexityThreshold
	}
	return 0.7
}

func toolLoopMaxIters(cfg *config.Config) int {
	if cfg.ToolLoop != nil && cfg.ToolLoop.MaxIterations != nil {
		return *cfg.ToolLoop.MaxIterations
	}
	return 10
}

func tickInterval(cfg *config.Config) time.Duration {
	if cfg.Summarizer != nil && cfg.Summarizer.TickInterval != "" {
		if d, err := time.ParseDuration(cfg.Summarizer.TickInterval); err == nil {
			return d
		}
	}
	return time.Hour
}
