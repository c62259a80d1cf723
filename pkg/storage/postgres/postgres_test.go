package postgres_test

import (
	"context"
	"database/sql"
	"net/url"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	root "tb3"
	"tb3/pkg/logger"
	"tb3/pkg/storage/postgres"
)

const (
	testUser     = "tb3"
	testPassword = "p@ss:w/rd"
	testDB       = "tb3_audit"
)

func TestMain(m *testing.M) {
	logger.Setup("test")
	m.Run()
}

// newTestStorage starts a disposable postgres, applies the embedded goose
// migrations and, when withRiver is set, the river schema.
func newTestStorage(t *testing.T, withRiver bool) *postgres.PgSQL {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               host,
		Port:               port.Int(),
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		MaxOpenConnections: 4,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })

	db := pg.DB.(*sql.DB)
	goose.SetBaseFS(root.Migrations)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "migrations"))

	if withRiver {
		migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
		require.NoError(t, err)
		_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
		require.NoError(t, err)
	}

	return pg
}

func TestOptions_ConnString(t *testing.T) {
	raw := postgres.Options{
		Username: testUser,
		Password: testPassword,
		Host:     "db.internal",
		Port:     6543,
		Database: testDB,
		SslMode:  "require",
	}.ConnString()

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "postgres", u.Scheme)
	require.Equal(t, "db.internal:6543", u.Host)
	require.Equal(t, "/"+testDB, u.Path)

	pass, ok := u.User.Password()
	require.True(t, ok)
	require.Equal(t, testPassword, pass, "credentials survive escaping")
	require.Equal(t, "require", u.Query().Get("sslmode"))
	require.Equal(t, "tb3", u.Query().Get("application_name"))

	named := postgres.Options{Host: "h", Port: 1, ApplicationName: "tb3-worker"}.ConnString()
	u, err = url.Parse(named)
	require.NoError(t, err)
	require.Equal(t, "tb3-worker", u.Query().Get("application_name"))
	require.False(t, u.Query().Has("sslmode"))
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := postgres.New(ctx, postgres.Options{
		Username: testUser,
		Host:     "127.0.0.1",
		Port:     1,
		Database: testDB,
		SslMode:  "disable",
	})
	require.ErrorContains(t, err, "could not reach postgres at 127.0.0.1:1")
}
