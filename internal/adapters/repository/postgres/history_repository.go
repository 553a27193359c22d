package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"hr-records/internal/core/history"
	pgdb "hr-records/internal/platform/db/postgres"
)

const historyColumns = `id, employee_id, employee_name, action, changes, ts, updated_by`

// HistoryRepository は PostgreSQL を利用した編集履歴永続化の実装です。
// 履歴は追記専用で、UPDATE / DELETE 文は存在しません。
type HistoryRepository struct {
	pool pgdb.Querier
}

// NewHistoryRepository は HistoryRepository を生成します。
func NewHistoryRepository(pool pgdb.Querier) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// Append は履歴エントリを追記します。ID は最大 ID + 1 で単調に採番する
// ため、社員のミューテーションと同じトランザクション内で呼び出してください。
func (r *HistoryRepository) Append(ctx context.Context, entry *history.Entry) (*history.Entry, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)

	var nextID int64
	if err := exec.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM edit_history`).Scan(&nextID); err != nil {
		return nil, fmt.Errorf("postgres: next history id: %w", err)
	}

	changes, err := json.Marshal(entry.Changes)
	if err != nil {
		return nil, fmt.Errorf("postgres: encode changes: %w", err)
	}

	row := exec.QueryRow(ctx, `
        INSERT INTO edit_history (id, employee_id, employee_name, action, changes, ts, updated_by)
        VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)
        RETURNING `+historyColumns,
		nextID,
		entry.EmployeeID,
		entry.EmployeeName,
		string(entry.Action),
		string(changes),
		entry.Timestamp,
		entry.UpdatedBy,
	)

	return scanEntry(row)
}

// List は全履歴をタイムスタンプ降順(同時刻は ID 降順)で返します。
func (r *HistoryRepository) List(ctx context.Context) ([]*history.Entry, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)

	rows, err := exec.Query(ctx, `
        SELECT `+historyColumns+`
          FROM edit_history
         ORDER BY ts DESC, id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("postgres: list history: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListByEmployee は特定社員の履歴を新しい順で返します。
func (r *HistoryRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*history.Entry, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)

	rows, err := exec.Query(ctx, `
        SELECT `+historyColumns+`
          FROM edit_history
         WHERE employee_id = $1
         ORDER BY ts DESC, id DESC
    `, employeeID)
	if err != nil {
		return nil, fmt.Errorf("postgres: list history by employee: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]*history.Entry, error) {
	var list []*history.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate history: %w", err)
	}
	return list, nil
}

func scanEntry(row pgx.Row) (*history.Entry, error) {
	var (
		e       history.Entry
		action  string
		changes []byte
	)

	if err := row.Scan(&e.ID, &e.EmployeeID, &e.EmployeeName, &action, &changes, &e.Timestamp, &e.UpdatedBy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("postgres: history entry not returned: %w", err)
		}
		return nil, err
	}

	e.Action = history.Action(action)
	if err := json.Unmarshal(changes, &e.Changes); err != nil {
		return nil, fmt.Errorf("postgres: decode changes: %w", err)
	}

	return &e, nil
}
