package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"

	"hr-records/internal/core/history"
)

func historyColumnNames() []string {
	return []string{"id", "employee_id", "employee_name", "action", "changes", "ts", "updated_by"}
}

func TestHistoryRepository_Append(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewHistoryRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(id), 0) + 1 FROM edit_history`)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(3)))

	ts := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO edit_history").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(historyColumnNames()).
			AddRow(int64(3), int64(1), "Sarah Johnson", "updated",
				[]byte(`{"salary":{"from":90000,"to":95000}}`), ts, "HR Manager"))

	appended, err := repo.Append(context.Background(), &history.Entry{
		EmployeeID:   1,
		EmployeeName: "Sarah Johnson",
		Action:       history.ActionUpdated,
		Changes: map[string]history.Change{
			"salary": {From: 90000, To: 95000},
		},
		Timestamp: ts,
		UpdatedBy: "HR Manager",
	})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	if appended.ID != 3 || appended.Action != history.ActionUpdated {
		t.Fatalf("unexpected entry %+v", appended)
	}
	if c, ok := appended.Changes["salary"]; !ok || c.From == nil || c.To == nil {
		t.Fatalf("expected salary change decoded from jsonb, got %v", appended.Changes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHistoryRepository_ListByEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewHistoryRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT ` + historyColumns + `
          FROM edit_history
         WHERE employee_id = $1
         ORDER BY ts DESC, id DESC
    `)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(query).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(historyColumnNames()).
			AddRow(int64(2), int64(1), "Sarah Johnson", "status_changed", []byte(`{"status":{"from":"Active","to":"Inactive"}}`), base.Add(time.Hour), "Admin User").
			AddRow(int64(1), int64(1), "Sarah Johnson", "created", []byte(`{}`), base, "HR Manager"))

	entries, err := repo.ListByEmployee(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByEmployee returned error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != history.ActionStatusChanged || entries[1].Action != history.ActionCreated {
		t.Fatalf("expected newest first, got %s then %s", entries[0].Action, entries[1].Action)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
