package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"tb3/pkg/domain"
)

const (
	logDetailsTable  = "log_details"
	taskResultsTable = "task_results"
)

func (p *PgSQL) StoreLogDetails(ctx context.Context, details ...domain.LogDetail) error {
	if len(details) == 0 {
		return nil
	}

	rows := make([]PgLogDetail, len(details))
	for i := range details {
		rows[i].FromDomain(details[i])
	}

	_, err := p.Builder.Insert(logDetailsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store log details into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) LogDetailsByTask(ctx context.Context, taskID string) ([]domain.LogDetail, error) {
	var rows []PgLogDetail
	err := p.Builder.From(logDetailsTable).
		Where(goqu.I("task_id").Eq(taskID)).
		Order(goqu.I("ts").Asc(), goqu.I("stage").Asc(), goqu.I("id").Asc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not get log details by task from pg: %w", err)
	}

	out := make([]domain.LogDetail, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

// UpsertTaskResult replaces every column but created_at when the task already has a result.
func (p *PgSQL) UpsertTaskResult(ctx context.Context, result domain.TaskResult) error {
	var row PgTaskResult
	row.FromDomain(result)

	_, err := p.Builder.Insert(taskResultsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("task_id", goqu.Record{
			"chosen_edge_addr": goqu.I("excluded.chosen_edge_addr"),
			"result_json":      goqu.I("excluded.result_json"),
			"result_hash":      goqu.I("excluded.result_hash"),
			"result_sig":       goqu.I("excluded.result_sig"),
			"verified":         goqu.I("excluded.verified"),
			"tx_hash":          goqu.I("excluded.tx_hash"),
			"height":           goqu.I("excluded.height"),
			"signer":           goqu.I("excluded.signer"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert task result into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) TaskResultByTask(ctx context.Context, taskID string) (*domain.TaskResult, error) {
	var row PgTaskResult
	found, err := p.Builder.From(taskResultsTable).
		Where(goqu.I("task_id").Eq(taskID)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get task result from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PurgeAuditData(ctx context.Context) error {
	for _, table := range []string{logDetailsTable, taskResultsTable} {
		if _, err := p.Builder.Delete(table).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not purge %s in pg: %w", table, err)
		}
	}

	return nil
}
