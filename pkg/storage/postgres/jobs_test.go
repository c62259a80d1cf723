package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"

	"tb3/pkg/storage"
)

// seedArgs mirrors the shape of the demo seed job: unique by its arguments.
type seedArgs struct {
	Seed int64 `json:"seed" river:"unique"`
}

func (seedArgs) Kind() string { return "TestSeedJob" }

func uniqueOpts() *river.InsertOpts {
	return &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true, ByPeriod: time.Minute}}
}

func TestPgSQL_AddJob_UniqueByArgs(t *testing.T) {
	pg := newTestStorage(t, true)
	ctx := context.Background()

	added, err := pg.AddJob(ctx, seedArgs{Seed: 42}, uniqueOpts())
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddJob(ctx, seedArgs{Seed: 42}, uniqueOpts())
	require.NoError(t, err)
	require.False(t, added, "same arguments collapse into the pending job")

	added, err = pg.AddJob(ctx, seedArgs{Seed: 7}, uniqueOpts())
	require.NoError(t, err)
	require.True(t, added)

	rivertest.RequireManyInserted[*riverdatabasesql.Driver](ctx, t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		[]rivertest.ExpectedJob{
			{Args: &seedArgs{Seed: 42}},
			{Args: &seedArgs{Seed: 7}},
		})
}

func TestPgSQL_AddJob_FollowsTransaction(t *testing.T) {
	pg := newTestStorage(t, true)
	ctx := context.Background()
	rollback := errors.New("rollback")

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		added, err := s.AddJob(ctx, seedArgs{Seed: 1}, nil)
		require.NoError(t, err)
		require.True(t, added)

		return rollback
	})
	require.ErrorIs(t, err, rollback)

	// the rolled back job does not block a new one with the same arguments
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		added, err := s.AddJob(ctx, seedArgs{Seed: 1}, uniqueOpts())
		require.NoError(t, err)
		require.True(t, added)

		return nil
	})
	require.NoError(t, err)

	rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t,
		riverdatabasesql.New(pg.DB.(*sql.DB)), &seedArgs{Seed: 1}, nil)
}
