package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage         = "postgres:15-alpine"
	containerStartTimeout = 90 * time.Second
)

// setupPostgres starts a throwaway Postgres and returns a connected wrapper.
// Skipped with -short or when no container runtime is available.
func setupPostgres(t *testing.T) *PostgresDB {
	if testing.Short() {
		t.Skip("skipping Postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "catalog",
			"POSTGRES_PASSWORD": "secret",
			"POSTGRES_DB":       "catalog_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(containerStartTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "Failed to start Postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate Postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pg := NewPostgresDB(&DBConfig{
		Host:              host,
		Port:              port.Int(),
		Username:          "catalog",
		Password:          "secret",
		DBName:            "catalog_test",
		SSLMode:           "disable",
		MaxConns:          4,
		MinConns:          1,
		MaxConnLifetime:   time.Minute,
		MaxConnIdleTime:   time.Minute,
		HealthCheckPeriod: time.Minute,
		MaxRetries:        5,
		RetryDelay:        500 * time.Millisecond,
		ConnectTimeout:    10 * time.Second,
	})
	require.NoError(t, pg.Connect(ctx))
	t.Cleanup(pg.Close)

	return pg
}

func TestPostgres_StoreRoundTrip(t *testing.T) {
	pg := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, pg.HealthCheck(ctx))

	sqlDB, err := pg.SQLDB()
	require.NoError(t, err)
	store := NewStore(sqlDB, Postgres)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))

	var id int64
	err = store.WithinTx(ctx, func(ctx context.Context) error {
		id, err = store.InsertReturningID(ctx, store.Builder().Insert(AuthorsTable).Columns("name").Values("Ada"))
		if err != nil {
			return err
		}
		// Runs with FOR KEY SHARE inside the transaction.
		exists, err := store.ExistsByID(ctx, AuthorsTable, id)
		require.NoError(t, err)
		assert.True(t, exists)
		return nil
	})
	require.NoError(t, err)

	exists, err := store.ExistsByID(ctx, AuthorsTable, id)
	require.NoError(t, err)
	assert.True(t, exists)

	stats, err := pg.Stats()
	require.NoError(t, err)
	assert.Equal(t, int32(4), stats.MaxConns)
}
