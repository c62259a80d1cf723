package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"tb3/pkg/logger"
)

// AddJob inserts a river job. On a transactional handle the job joins the
// transaction and only becomes visible to workers on commit. It reports false
// when river skipped the insert because a job with the same unique key is
// still pending, which is how repeated demo seed requests are collapsed.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		var client *river.Client[*sql.Tx]
		if client, err = insertOnlyClient(nil); err == nil {
			res, err = client.InsertTx(ctx, db, args, opts)
		}
	case *sql.DB:
		var client *river.Client[*sql.Tx]
		if client, err = insertOnlyClient(db); err == nil {
			res, err = client.Insert(ctx, args, opts)
		}
	default:
		return false, fmt.Errorf("could not insert %s job: unsupported executor %T", args.Kind(), p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	logger.Debug(ctx, "job inserted",
		zap.String("kind", args.Kind()),
		zap.Int64("jobID", res.Job.ID),
		zap.Bool("duplicate", res.UniqueSkippedAsDuplicate))

	return !res.UniqueSkippedAsDuplicate, nil
}

// insertOnlyClient builds a river client with no queues. Such a client can
// insert jobs but never works them; the worker process owns execution.
func insertOnlyClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river client: %w", err)
	}

	return client, nil
}
