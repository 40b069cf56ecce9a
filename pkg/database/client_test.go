package database

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/alex/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client against a throwaway
// testcontainers Postgres instance, schema-created via Ent auto-migration
// (no embedded migration files needed for this in-process smoke test).
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"pgvector/pgvector:pg16",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)

	db := drv.DB()
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(drv))

	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = ConvertEmbeddingColumnsToVector(ctx, drv)
	require.NoError(t, err)

	err = CreateVectorIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestDatabaseClient_VectorExtension(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	var extName string
	err := client.DB().QueryRowContext(ctx,
		`SELECT extname FROM pg_extension WHERE extname = 'vector'`).Scan(&extName)
	require.NoError(t, err)
	assert.Equal(t, "vector", extName)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test", SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5,
			},
			wantErr: false,
		},
		{
			name: "missing password",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "",
				Database: "test", MaxOpenConns: 10, MaxIdleConns: 5,
			},
			wantErr: true,
		},
		{
			name: "idle conns exceed max conns",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test", MaxOpenConns: 5, MaxIdleConns: 10,
			},
			wantErr: true,
		},
		{
			name: "zero max open conns",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test", MaxOpenConns: 0, MaxIdleConns: 0,
			},
			wantErr: true,
		},
		{
			name: "negative idle conns",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test", MaxOpenConns: 10, MaxIdleConns: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
