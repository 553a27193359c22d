package history

import (
	"context"
	"time"
)

// Action は編集履歴の操作種別を表します。
type Action string

const (
	ActionCreated       Action = "created"
	ActionUpdated       Action = "updated"
	ActionStatusChanged Action = "status_changed"
)

// ActionFilterAll は操作種別での絞り込みを行わないことを示すワイルドカードです。
const ActionFilterAll = "all"

// Change はひとつのフィールドの変更前後の値です。値は履歴をどのストアに
// 保存しても表示できるよう JSON 互換の表現を許容します。
type Change struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// Entry は編集履歴の1レコードです。一度追記された後は変更も削除もされません。
// EmployeeName は操作時点の氏名のスナップショットで、後から再解決しません。
type Entry struct {
	ID           int64             `json:"id"`
	EmployeeID   int64             `json:"employeeId"`
	EmployeeName string            `json:"employeeName"`
	Action       Action            `json:"action"`
	Changes      map[string]Change `json:"changes"`
	Timestamp    time.Time         `json:"timestamp"`
	UpdatedBy    string            `json:"updatedBy"`
}

// Clone は Entry の深いコピーを返します。
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Changes != nil {
		cp.Changes = make(map[string]Change, len(e.Changes))
		for k, v := range e.Changes {
			cp.Changes[k] = v
		}
	}
	return &cp
}

// Repository は編集履歴永続化の抽象です。履歴は追記専用で、List 系は
// 新しい順(タイムスタンプ降順、同時刻は ID 降順)で返します。
type Repository interface {
	Append(ctx context.Context, entry *Entry) (*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*Entry, error)
}
