package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/2beens/fitstats/internal/db"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const testDBName = "fitstats"

// Postgres is a throwaway database running in docker, with the schema applied.
type Postgres struct {
	Pool     *pgxpool.Pool
	resource *dockertest.Resource
}

// StartPostgres runs a postgres container and connects a pgx pool to it.
// The container is purged when the test finishes.
func StartPostgres(t *testing.T) *Postgres {
	t.Helper()

	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err, "create dockertest pool")
	require.NoError(t, dockerPool.Client.Ping(), "ping docker")

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "run postgres")
	_ = resource.Expire(120)

	params := db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: resource.GetPort("5432/tcp"),
		DBName: testDBName,
	}

	// the schema goes in through database/sql, the code under test uses pgx
	var sqlDB *sql.DB
	err = dockerPool.Retry(func() error {
		var err error
		sqlDB, err = sql.Open("postgres", db.ConnString(params))
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	})
	require.NoError(t, err, "connect to postgres")
	_, err = sqlDB.Exec(db.Schema)
	require.NoError(t, err, "apply schema")
	require.NoError(t, sqlDB.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := db.NewDBPool(ctx, params)
	require.NoError(t, err)

	pg := &Postgres{
		Pool:     pool,
		resource: resource,
	}
	t.Cleanup(func() {
		pg.Pool.Close()
		if err := dockerPool.Purge(resource); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})
	return pg
}

// Truncate empties the given tables between test cases.
func (p *Postgres) Truncate(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := p.Pool.Exec(context.Background(), "TRUNCATE "+table)
		require.NoError(t, err)
	}
}

// NewRedisMock returns a redis client backed by redismock expectations.
func NewRedisMock() (*redis.Client, redismock.ClientMock) {
	return redismock.NewClientMock()
}
