// Package sqlite はインメモリストアを単一の SQLite ファイルへスナップショット
// 永続化するアダプタです。トランザクションが成功するたびに全状態を JSON と
// して書き出します。リポジトリの契約や採番・履歴の意味論はインメモリ実装と
// 完全に同一です。
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hr-records/internal/adapters/repository/memory"
	"hr-records/internal/core/employee"
	"hr-records/internal/core/history"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const (
	bucketEmployees = "employees"
	bucketHistory   = "edit_history"
)

// Store は SQLite バックエンドのレコードストアです。ミューテーションは必ず
// WithinReadWrite 経由で行う必要があります。リポジトリメソッドを直接呼んだ
// 場合、変更はメモリ上にのみ反映されスナップショットには書かれません。
type Store struct {
	mem  *memory.Store
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewStore は SQLite ファイルを開き、保存済みの状態があれば読み込みます。
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "hr-records.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("sqlite: create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket  TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create state table: %w", err)
	}

	s := &Store{mem: memory.NewStore(), db: db, path: path}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close は下層のデータベースを閉じます。
func (s *Store) Close() error {
	return s.db.Close()
}

// Empty はストアが空かどうかを返します。
func (s *Store) Empty() bool {
	return s.mem.Empty()
}

// Seed は初期データを読み込んで永続化します。既にデータがある場合は
// 何もしません。
func (s *Store) Seed(employees []*employee.Employee, entries []*history.Entry) error {
	if !s.mem.Empty() {
		return nil
	}
	s.mem.ImportState(memory.Snapshot{Employees: employees, History: entries})
	return s.save()
}

// EmployeeRepository は社員リポジトリのビューを返します。
func (s *Store) EmployeeRepository() employee.Repository {
	return s.mem.EmployeeRepository()
}

// HistoryRepository は履歴リポジトリのビューを返します。
func (s *Store) HistoryRepository() history.Repository {
	return s.mem.HistoryRepository()
}

// WithinReadOnly は読み取りトランザクションを実行します。
func (s *Store) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return s.mem.WithinReadOnly(ctx, fn)
}

// WithinReadWrite は書き込みトランザクションを実行し、成功した場合のみ
// 状態全体をスナップショットとして書き出します。
func (s *Store) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if err := s.mem.WithinReadWrite(ctx, fn); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) load() error {
	rows, err := s.db.Query(`SELECT bucket, payload FROM state`)
	if err != nil {
		return fmt.Errorf("sqlite: select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	snap := memory.Snapshot{}
	found := false
	for rows.Next() {
		var (
			bucket  string
			payload []byte
		)
		if err := rows.Scan(&bucket, &payload); err != nil {
			return fmt.Errorf("sqlite: scan state: %w", err)
		}
		switch bucket {
		case bucketEmployees:
			if err := json.Unmarshal(payload, &snap.Employees); err != nil {
				return fmt.Errorf("sqlite: decode employees: %w", err)
			}
			found = true
		case bucketHistory:
			if err := json.Unmarshal(payload, &snap.History); err != nil {
				return fmt.Errorf("sqlite: decode edit history: %w", err)
			}
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlite: iterate state: %w", err)
	}

	if found {
		s.mem.ImportState(snap)
	}
	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.mem.ExportState()

	employeesPayload, err := json.Marshal(snap.Employees)
	if err != nil {
		return fmt.Errorf("sqlite: encode employees: %w", err)
	}
	historyPayload, err := json.Marshal(snap.History)
	if err != nil {
		return fmt.Errorf("sqlite: encode edit history: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for bucket, payload := range map[string][]byte{
		bucketEmployees: employeesPayload,
		bucketHistory:   historyPayload,
	} {
		if _, err := tx.Exec(
			`INSERT INTO state (bucket, payload) VALUES (?, ?)
			 ON CONFLICT (bucket) DO UPDATE SET payload = excluded.payload`,
			bucket, payload,
		); err != nil {
			return fmt.Errorf("sqlite: write %s: %w", bucket, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}
