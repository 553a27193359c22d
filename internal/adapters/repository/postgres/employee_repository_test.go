package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"hr-records/internal/core/employee"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func employeeColumnNames() []string {
	return []string{
		"id", "employee_number", "name", "email", "phone", "position", "department",
		"employment_type", "salary", "status", "start_date", "location", "address", "city", "country",
		"manager", "work_schedule", "bio", "skills", "probation", "documents",
		"created_at", "updated_at", "created_by", "updated_by",
	}
}

func employeeRowValues(id int64, name string, now time.Time) []any {
	return []any{
		id, "EMP001", name, "sarah@company.com", "", "Senior Software Engineer", "Engineering",
		"Full-time", int64(95000), "Active", now, "", "", "", "",
		"", "", "", []byte(`["Go","SQL"]`), []byte(`{"isOnProbation":false,"startDate":"0001-01-01T00:00:00Z","endDate":"0001-01-01T00:00:00Z","duration":0}`), []byte(`[]`),
		now, now, "HR Manager", "HR Manager",
	}
}

func TestScanEmployee_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanEmployee(row)
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_FindByID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT ` + employeeColumns + `
          FROM employees
         WHERE id = $1
         LIMIT 1
    `)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(query).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(employeeColumnNames()).AddRow(employeeRowValues(1, "Sarah Johnson", now)...))

	found, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	if found.ID != 1 || found.EmployeeNumber != "EMP001" || found.Name != "Sarah Johnson" {
		t.Fatalf("unexpected employee %+v", found)
	}
	if len(found.Skills) != 2 || found.Skills[0] != "Go" {
		t.Fatalf("expected skills decoded from jsonb, got %v", found.Skills)
	}
	if found.Probation.OnProbation {
		t.Fatalf("expected probation flag off, got %+v", found.Probation)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Create_AssignsNextID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(id), 0) + 1 FROM employees`)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(4)))

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	insertArgs := make([]any, 25)
	for i := range insertArgs {
		insertArgs[i] = pgxmock.AnyArg()
	}
	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(insertArgs...).
		WillReturnRows(pgxmock.NewRows(employeeColumnNames()).AddRow(func() []any {
			values := employeeRowValues(4, "Sarah Johnson", now)
			values[1] = "EMP004"
			return values
		}()...))

	created, err := repo.Create(context.Background(), &employee.Employee{
		Name:           "Sarah Johnson",
		Email:          "sarah@company.com",
		Position:       "Senior Software Engineer",
		Department:     "Engineering",
		EmploymentType: employee.EmploymentFullTime,
		Salary:         95000,
		Status:         employee.StatusActive,
		StartDate:      now,
		Skills:         []string{"Go", "SQL"},
		Documents:      []employee.Document{},
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      "HR Manager",
		UpdatedBy:      "HR Manager",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.ID != 4 || created.EmployeeNumber != "EMP004" {
		t.Fatalf("expected derived id and number, got %d %s", created.ID, created.EmployeeNumber)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_List_Empty(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery("(?s)SELECT .+ FROM employees").
		WillReturnRows(pgxmock.NewRows(employeeColumnNames()))

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
