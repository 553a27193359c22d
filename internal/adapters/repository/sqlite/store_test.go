package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"hr-records/internal/adapters/repository/memory"
	"hr-records/internal/core/employee"
	"hr-records/internal/core/history"
)

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hr-records.db")

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	repo := store.EmployeeRepository()
	hist := store.HistoryRepository()

	err = store.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		created, err := repo.Create(ctx, &employee.Employee{Name: "Sarah Johnson", Skills: []string{"Go"}})
		if err != nil {
			return err
		}
		_, err = hist.Append(ctx, &history.Entry{
			EmployeeID:   created.ID,
			EmployeeName: created.Name,
			Action:       history.ActionCreated,
			Changes:      map[string]history.Change{},
			Timestamp:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			UpdatedBy:    "HR Manager",
		})
		return err
	})
	if err != nil {
		t.Fatalf("transaction returned error: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore after reopen returned error: %v", err)
	}
	defer reopened.Close()

	found, err := reopened.EmployeeRepository().FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindByID after reopen returned error: %v", err)
	}
	if found.Name != "Sarah Johnson" || found.EmployeeNumber != "EMP001" {
		t.Fatalf("unexpected restored employee %+v", found)
	}
	if len(found.Skills) != 1 || found.Skills[0] != "Go" {
		t.Fatalf("expected skills restored, got %v", found.Skills)
	}

	entries, err := reopened.HistoryRepository().List(context.Background())
	if err != nil {
		t.Fatalf("List after reopen returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != history.ActionCreated {
		t.Fatalf("unexpected restored history %v", entries)
	}
}

func TestStore_FailedTransactionIsNotPersisted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hr-records.db")

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	repo := store.EmployeeRepository()

	err = store.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		if _, err := repo.Create(ctx, &employee.Employee{Name: "Phantom"}); err != nil {
			return err
		}
		return errors.New("validation failed")
	})
	if err == nil {
		t.Fatal("expected transaction error")
	}

	// The live store must be rolled back immediately, not merely skipped
	// at save time.
	if !store.Empty() {
		t.Fatal("failed transaction left state in the live store")
	}

	// A later successful transaction writes a snapshot; the phantom record
	// must not ride along.
	err = store.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		_, err := repo.Create(ctx, &employee.Employee{Name: "Sarah Johnson"})
		return err
	})
	if err != nil {
		t.Fatalf("follow-up transaction returned error: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore after reopen returned error: %v", err)
	}
	defer reopened.Close()

	restored, err := reopened.EmployeeRepository().List(context.Background())
	if err != nil {
		t.Fatalf("List after reopen returned error: %v", err)
	}
	if len(restored) != 1 || restored[0].Name != "Sarah Johnson" {
		t.Fatalf("phantom record reached the snapshot: %+v", restored)
	}
}

func TestStore_SeedIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hr-records.db")

	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	defer store.Close()

	if err := store.Seed(memory.DefaultSeed()); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	list, err := store.EmployeeRepository().List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 seeded employees, got %d", len(list))
	}

	// Seeding again must not duplicate existing data.
	if err := store.Seed(memory.DefaultSeed()); err != nil {
		t.Fatalf("second Seed returned error: %v", err)
	}
	again, err := store.EmployeeRepository().List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(again) != 3 {
		t.Fatalf("expected seed to be idempotent, got %d employees", len(again))
	}
}
