// Package memory はリファレンス挙動であるインメモリのレコードストアを
// 提供します。状態は揮発性で、プロセス終了とともに失われます。
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"hr-records/internal/core/employee"
	"hr-records/internal/core/history"
)

// txContextKey はストアのロックを保持中であることを示すコンテキストキーです。
type txContextKey struct{}

// Store は社員レコードと編集履歴を保持するインメモリストアです。
// 単一のミューテックスで全ミューテーションを直列化し、読み取り・差分計算・
// 履歴追記の一連の処理が交錯しないことを保証します。社員リポジトリと
// 履歴リポジトリは EmployeeRepository / HistoryRepository で取り出します。
type Store struct {
	mu        sync.Mutex
	employees []*employee.Employee
	entries   []*history.Entry
}

// Option は Store の構成オプションです。
type Option func(*Store)

// WithSeed は初期データを読み込みます。
func WithSeed(employees []*employee.Employee, entries []*history.Entry) Option {
	return func(s *Store) {
		s.importLocked(employees, entries)
	}
}

// NewStore は Store を生成します。
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EmployeeRepository は社員リポジトリのビューを返します。
func (s *Store) EmployeeRepository() employee.Repository {
	return employeeRepo{store: s}
}

// HistoryRepository は履歴リポジトリのビューを返します。
func (s *Store) HistoryRepository() history.Repository {
	return historyRepo{store: s}
}

// WithinReadOnly はストアのロックを取得して fn を実行します。
func (s *Store) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	if inTx(ctx) {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, txContextKey{}, true))
}

// WithinReadWrite はストアのロックを取得して fn を実行します。fn がエラーを
// 返した場合は fn 内で適用されたミューテーションをすべて巻き戻し、レコード
// 書き込みと履歴追記が「両方適用されるか、どちらも適用されないか」の契約を
// 保ちます。
func (s *Store) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	if inTx(ctx) {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.exportLocked()
	if err := fn(context.WithValue(ctx, txContextKey{}, true)); err != nil {
		s.importLocked(before.Employees, before.History)
		return err
	}
	return nil
}

// lock はトランザクション外から呼ばれた場合のみロックを取得します。
func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func inTx(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	held, _ := ctx.Value(txContextKey{}).(bool)
	return held
}

type employeeRepo struct {
	store *Store
}

// Create は社員を追加します。ID は既存の最大 ID + 1(空なら 1)、
// 社員番号は ID から "EMP001" 形式で導出します。
func (r employeeRepo) Create(ctx context.Context, emp *employee.Employee) (*employee.Employee, error) {
	s := r.store
	defer s.lock(ctx)()

	var maxID int64
	for _, existing := range s.employees {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	stored := emp.Clone()
	stored.ID = maxID + 1
	stored.EmployeeNumber = fmt.Sprintf("EMP%03d", stored.ID)
	s.employees = append(s.employees, stored)

	return stored.Clone(), nil
}

// Update は社員レコードを置き換えます。ID と社員番号は上書きしません。
func (r employeeRepo) Update(ctx context.Context, emp *employee.Employee) (*employee.Employee, error) {
	s := r.store
	defer s.lock(ctx)()

	for i, existing := range s.employees {
		if existing.ID == emp.ID {
			stored := emp.Clone()
			stored.EmployeeNumber = existing.EmployeeNumber
			s.employees[i] = stored
			return stored.Clone(), nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

// FindByID は ID で社員を取得します。
func (r employeeRepo) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	s := r.store
	defer s.lock(ctx)()

	for _, existing := range s.employees {
		if existing.ID == id {
			return existing.Clone(), nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

// List は社員一覧を挿入順で返します。
func (r employeeRepo) List(ctx context.Context) ([]*employee.Employee, error) {
	s := r.store
	defer s.lock(ctx)()

	list := make([]*employee.Employee, 0, len(s.employees))
	for _, existing := range s.employees {
		list = append(list, existing.Clone())
	}
	return list, nil
}

type historyRepo struct {
	store *Store
}

// Append は履歴エントリを追記します。ID は既存の最大 ID + 1 で単調に
// 採番します。追記されたエントリが後から変更されることはありません。
func (r historyRepo) Append(ctx context.Context, entry *history.Entry) (*history.Entry, error) {
	s := r.store
	defer s.lock(ctx)()

	var maxID int64
	for _, existing := range s.entries {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	stored := entry.Clone()
	stored.ID = maxID + 1
	s.entries = append(s.entries, stored)

	return stored.Clone(), nil
}

// List は全履歴をタイムスタンプ降順(同時刻は ID 降順)で返します。
func (r historyRepo) List(ctx context.Context) ([]*history.Entry, error) {
	return r.list(ctx, 0)
}

// ListByEmployee は特定社員の履歴を新しい順で返します。
func (r historyRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]*history.Entry, error) {
	return r.list(ctx, employeeID)
}

func (r historyRepo) list(ctx context.Context, employeeID int64) ([]*history.Entry, error) {
	s := r.store
	defer s.lock(ctx)()

	list := make([]*history.Entry, 0, len(s.entries))
	for _, existing := range s.entries {
		if employeeID != 0 && existing.EmployeeID != employeeID {
			continue
		}
		list = append(list, existing.Clone())
	}

	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].Timestamp.After(list[j].Timestamp)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

// Snapshot はストア全体の直列化可能な表現です。SQLite アダプタが
// 永続化に利用します。
type Snapshot struct {
	Employees []*employee.Employee `json:"employees"`
	History   []*history.Entry     `json:"editHistory"`
}

// ExportState は現在の状態の深いコピーを返します。
func (s *Store) ExportState() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exportLocked()
}

func (s *Store) exportLocked() Snapshot {
	snap := Snapshot{
		Employees: make([]*employee.Employee, 0, len(s.employees)),
		History:   make([]*history.Entry, 0, len(s.entries)),
	}
	for _, emp := range s.employees {
		snap.Employees = append(snap.Employees, emp.Clone())
	}
	for _, entry := range s.entries {
		snap.History = append(snap.History, entry.Clone())
	}
	return snap
}

// ImportState はスナップショットで状態を置き換えます。
func (s *Store) ImportState(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.importLocked(snap.Employees, snap.History)
}

// Empty はストアが空(社員も履歴もない)かどうかを返します。
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.employees) == 0 && len(s.entries) == 0
}

func (s *Store) importLocked(employees []*employee.Employee, entries []*history.Entry) {
	s.employees = s.employees[:0]
	for _, emp := range employees {
		s.employees = append(s.employees, emp.Clone())
	}
	s.entries = s.entries[:0]
	for _, entry := range entries {
		s.entries = append(s.entries, entry.Clone())
	}
}
