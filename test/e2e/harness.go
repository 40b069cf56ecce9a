// Package e2e provides end-to-end test infrastructure for the alex server:
// a real Postgres-backed memory.Store and api.Server wired over a scripted
// llm.Adapter, driven entirely through HTTP. Each test gets its own schema
// via test/util.SetupTestDatabase and a random-port server; cleanup is
// registered with t.Cleanup in reverse-creation order.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/alex/pkg/api"
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
	testdb "github.com/codeready-toolchain/alex/test/util"
)

// TestApp boots a complete alex-server instance for e2e testing: a real
// Postgres schema, a scripted model, and the full turn graph behind a live
// HTTP server.
type TestApp struct {
	DBClient *database.Client
	Store    *memory.Store
	Model    *llm.StubAdapter
	Trading  *trading.StubClient
	Ledger   *trading.Ledger
	Server   *api.Server

	BaseURL string

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	model      *llm.StubAdapter
	fsRoot     string
	clock      func() time.Time
	tradingTTL time.Duration
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithModel sets a pre-scripted model adapter.
func WithModel(model *llm.StubAdapter) TestAppOption {
	return func(c *testAppConfig) { c.model = model }
}

// WithFilesystemRoot sandboxes the self-modify filesystem tools to root.
func WithFilesystemRoot(root string) TestAppOption {
	return func(c *testAppConfig) { c.fsRoot = root }
}

// WithClock overrides the server's reference clock.
func WithClock(clock func() time.Time) TestAppOption {
	return func(c *testAppConfig) { c.clock = clock }
}

// WithTradingTTL overrides the pending-trade expiry window.
func WithTradingTTL(ttl time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.tradingTTL = ttl }
}

// NewTestApp creates and starts a full alex-server test instance. Shutdown
// and database cleanup are registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{tradingTTL: trading.DefaultTTL}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.model == nil {
		tc.model = llm.NewStubAdapter()
	}
	if tc.fsRoot == "" {
		tc.fsRoot = t.TempDir()
	}

	ctx := context.Background()

	entClient, db := testdb.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(entClient, db)
	t.Cleanup(func() { _ = dbClient.Close() })

	store := memory.NewStore(entClient, db)

	cl := classifier.New(tc.model, "flash-classify")
	retr := retriever.New(store, tc.model, retriever.DefaultConfig())
	fsToolset := filesystem.New(tc.fsRoot)
	tradingStub := trading.NewStubClient()
	ledger := trading.New(tradingStub, store, tc.tradingTTL)

	graphDeps := graph.Deps{
		Classifier:          cl,
		Retriever:           retr,
		Model:               tc.model,
		Store:               store,
		Filesystem:          fsToolset,
		Trading:             ledger,
		Sessions:            graph.NewSessionStore(0, 0),
		FlashModel:          "flash",
		ProModel:            "pro",
		EngineerModel:       "engineer",
		EmbeddingModel:      "embedding",
		ComplexityThreshold: 0.7,
		ToolLoopMaxIters:    10,
	}

	pipeline := summarizer.New(store, tc.model, summarizer.DefaultConfig())

	cfg := &config.Config{
		Summarizer: &config.SummarizerConfig{EmbeddingModel: "embedding"},
		App:        &config.AppConfig{Env: "test"},
	}
	server := api.NewServer(cfg, dbClient, store, graphDeps, pipeline, tc.model)
	if tc.clock != nil {
		server.WithClock(tc.clock)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = server.StartWithListener(ln)
	}()

	baseURL := fmt.Sprintf("http://%s", ln.Addr().String())

	app := &TestApp{
		DBClient: dbClient,
		Store:    store,
		Model:    tc.model,
		Trading:  tradingStub,
		Ledger:   ledger,
		Server:   server,
		BaseURL:  baseURL,
		t:        t,
	}

	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	// Give the listener goroutine a moment to start accepting before the
	// first request; StartWithListener's Serve call races t.Cleanup
	// otherwise on very fast machines.
	waitForHealth(ctx, baseURL)

	return app
}

func waitForHealth(ctx context.Context, baseURL string) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", baseURL[len("http://"):], 50*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
