package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
)

// querier is the subset of pgxpool.Pool and pgx.Tx the readers need.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const operatorColumns = `id, name, aoc_number, category, had_fatal_accident_last_3_years,
	inputs, rbs, legacy, economic_indicator, surveillance_logs, last_updated`

func (db *DB) Create(ctx context.Context, op domain.Operator) (err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO operators (`+operatorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, operatorArgs(op)...); err != nil {
		return fmt.Errorf("insert operator: %w", err)
	}
	if err = writeFindings(ctx, tx, op); err != nil {
		return err
	}
	for _, e := range op.History.Entries() {
		if err = appendHistory(ctx, tx, op.ID, e); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) Get(ctx context.Context, id string) (domain.Operator, error) {
	return getOperator(ctx, db.Pool, id)
}

func (db *DB) List(ctx context.Context) ([]domain.Operator, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id FROM operators ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	out := make([]domain.Operator, 0, len(ids))
	for _, id := range ids {
		op, err := getOperator(ctx, db.Pool, id)
		if errors.Is(err, ports.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, nil
}

func (db *DB) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id FROM operators ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Save rewrites the operator row and its findings and appends entry in one
// transaction. Stored history rows are never touched.
func (db *DB) Save(ctx context.Context, op domain.Operator, entry *domain.RiskIndicatorHistoryEntry) (err error) {
	if !validID(op.ID) {
		return ports.ErrNotFound
	}
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE operators SET
			name = $2, aoc_number = $3, category = $4, had_fatal_accident_last_3_years = $5,
			inputs = $6, rbs = $7, legacy = $8, economic_indicator = $9,
			surveillance_logs = $10, last_updated = $11
		WHERE id = $1
	`, operatorArgs(op)...)
	if err != nil {
		return fmt.Errorf("update operator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	if _, err = tx.Exec(ctx, `DELETE FROM surveillance_findings WHERE operator_id = $1`, op.ID); err != nil {
		return err
	}
	if err = writeFindings(ctx, tx, op); err != nil {
		return err
	}
	if entry != nil {
		if err = appendHistory(ctx, tx, op.ID, *entry); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) History(ctx context.Context, operatorID string, from, to time.Time) ([]domain.RiskIndicatorHistoryEntry, error) {
	if !validID(operatorID) {
		return nil, ports.ErrNotFound
	}
	var exists bool
	if err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM operators WHERE id = $1)`, operatorID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ports.ErrNotFound
	}
	return readHistory(ctx, db.Pool, operatorID, optTime(from), optTime(to))
}

func operatorArgs(op domain.Operator) []any {
	logs := op.SurveillanceLogs
	if logs == nil {
		logs = []domain.SurveillanceLogItem{}
	}
	return []any{
		op.ID, op.Name, op.AOCNumber, string(op.Category), op.HadFatalAccidentLast3Years,
		op.Inputs, op.RBS, op.Legacy, op.EconomicIndicatorScore, logs, op.LastUpdated,
	}
}

func writeFindings(ctx context.Context, tx pgx.Tx, op domain.Operator) error {
	if len(op.Findings) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, f := range op.Findings {
		body, err := json.Marshal(f)
		if err != nil {
			return err
		}
		batch.Queue(`
			INSERT INTO surveillance_findings (id, operator_id, position, category, is_completed, target_completion_date, body)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, f.ID, op.ID, i, int(f.Category), f.IsCompleted, f.TargetCompletionDate, body)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("write findings: %w", err)
	}
	return nil
}

func appendHistory(ctx context.Context, tx pgx.Tx, operatorID string, e domain.RiskIndicatorHistoryEntry) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO risk_indicator_history (operator_id, recorded_at, technical_indicator, economic_indicator, performance_score, exposure_level)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, operatorID, e.Date, int(e.TechnicalIndicator), e.EconomicIndicator, e.PerformanceScore, string(e.ExposureLevel))
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func getOperator(ctx context.Context, q querier, id string) (domain.Operator, error) {
	var op domain.Operator
	if !validID(id) {
		return op, ports.ErrNotFound
	}
	var category string
	err := q.QueryRow(ctx, `SELECT `+operatorColumns+` FROM operators WHERE id = $1`, id).Scan(
		&op.ID, &op.Name, &op.AOCNumber, &category, &op.HadFatalAccidentLast3Years,
		&op.Inputs, &op.RBS, &op.Legacy, &op.EconomicIndicatorScore, &op.SurveillanceLogs, &op.LastUpdated,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return op, ports.ErrNotFound
	}
	if err != nil {
		return op, err
	}
	op.Category = domain.OperatorCategory(category)
	op.LastUpdated = op.LastUpdated.UTC()

	rows, err := q.Query(ctx, `SELECT body FROM surveillance_findings WHERE operator_id = $1 ORDER BY position`, id)
	if err != nil {
		return op, err
	}
	op.Findings, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SurveillanceFinding, error) {
		var f domain.SurveillanceFinding
		err := row.Scan(&f)
		return f, err
	})
	if err != nil {
		return op, fmt.Errorf("read findings: %w", err)
	}

	// append order
	rows, err = q.Query(ctx, `
		SELECT recorded_at, technical_indicator, economic_indicator, performance_score, exposure_level
		FROM risk_indicator_history WHERE operator_id = $1 ORDER BY seq
	`, id)
	if err != nil {
		return op, err
	}
	entries, err := pgx.CollectRows(rows, scanHistory)
	if err != nil {
		return op, fmt.Errorf("read history: %w", err)
	}
	op.History = domain.NewHistory(entries...)
	return op, nil
}

func readHistory(ctx context.Context, q querier, operatorID string, from, to *time.Time) ([]domain.RiskIndicatorHistoryEntry, error) {
	rows, err := q.Query(ctx, `
		SELECT recorded_at, technical_indicator, economic_indicator, performance_score, exposure_level
		FROM risk_indicator_history
		WHERE operator_id = $1
		  AND ($2::timestamptz IS NULL OR recorded_at >= $2)
		  AND ($3::timestamptz IS NULL OR recorded_at <= $3)
		ORDER BY recorded_at, seq
	`, operatorID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanHistory)
}

func scanHistory(row pgx.CollectableRow) (domain.RiskIndicatorHistoryEntry, error) {
	var e domain.RiskIndicatorHistoryEntry
	var level int16
	var exposure string
	err := row.Scan(&e.Date, &level, &e.EconomicIndicator, &e.PerformanceScore, &exposure)
	e.Date = e.Date.UTC()
	e.TechnicalIndicator = domain.IndicatorLevel(level)
	e.ExposureLevel = domain.ExposureLevel(exposure)
	return e, err
}

// validID reports whether id can name a row; anything else cannot exist.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
