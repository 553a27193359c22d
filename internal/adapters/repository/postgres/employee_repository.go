package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"hr-records/internal/core/employee"
	pgdb "hr-records/internal/platform/db/postgres"
)

const employeeColumns = `id, employee_number, name, email, phone, position, department,
	       employment_type, salary, status, start_date, location, address, city, country,
	       manager, work_schedule, bio, skills, probation, documents,
	       created_at, updated_at, created_by, updated_by`

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
// ID の採番(最大 ID + 1)と社員番号の導出はトランザクション内で行うため、
// Create は必ず TransactionManager の内側で呼び出してください。
type EmployeeRepository struct {
	pool pgdb.Querier
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Querier) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規作成し、ID と社員番号を採番します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)

	var nextID int64
	if err := exec.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM employees`).Scan(&nextID); err != nil {
		return nil, fmt.Errorf("postgres: next employee id: %w", err)
	}

	skills, probation, documents, err := encodeEmployeeJSON(e)
	if err != nil {
		return nil, err
	}

	row := exec.QueryRow(ctx, `
        INSERT INTO employees (
            id, employee_number, name, email, phone, position, department,
            employment_type, salary, status, start_date, location, address, city, country,
            manager, work_schedule, bio, skills, probation, documents,
            created_at, updated_at, created_by, updated_by
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
                $16, $17, $18, $19::jsonb, $20::jsonb, $21::jsonb, $22, $23, $24, $25)
        RETURNING `+employeeColumns,
		nextID,
		fmt.Sprintf("EMP%03d", nextID),
		e.Name,
		e.Email,
		e.Phone,
		e.Position,
		e.Department,
		string(e.EmploymentType),
		e.Salary,
		string(e.Status),
		e.StartDate,
		e.Location,
		e.Address,
		e.City,
		e.Country,
		e.Manager,
		e.WorkSchedule,
		e.Bio,
		skills,
		probation,
		documents,
		e.CreatedAt,
		e.UpdatedAt,
		e.CreatedBy,
		e.UpdatedBy,
	)

	return scanEmployee(row)
}

// Update は社員レコードを更新します。ID と社員番号は変更しません。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)

	skills, probation, documents, err := encodeEmployeeJSON(e)
	if err != nil {
		return nil, err
	}

	row := exec.QueryRow(ctx, `
        UPDATE employees
           SET name = $1,
               email = $2,
               phone = $3,
               position = $4,
               department = $5,
               employment_type = $6,
               salary = $7,
               status = $8,
               start_date = $9,
               location = $10,
               address = $11,
               city = $12,
               country = $13,
               manager = $14,
               work_schedule = $15,
               bio = $16,
               skills = $17::jsonb,
               probation = $18::jsonb,
               documents = $19::jsonb,
               updated_at = $20,
               updated_by = $21
         WHERE id = $22
        RETURNING `+employeeColumns,
		e.Name,
		e.Email,
		e.Phone,
		e.Position,
		e.Department,
		string(e.EmploymentType),
		e.Salary,
		string(e.Status),
		e.StartDate,
		e.Location,
		e.Address,
		e.City,
		e.Country,
		e.Manager,
		e.WorkSchedule,
		e.Bio,
		skills,
		probation,
		documents,
		e.UpdatedAt,
		e.UpdatedBy,
		e.ID,
	)

	return scanEmployee(row)
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)

	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanEmployee(row)
}

// List は社員一覧を ID 順(挿入順)で返します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)

	rows, err := exec.Query(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("postgres: list employees: %w", err)
	}
	defer rows.Close()

	var list []*employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate employees: %w", err)
	}
	return list, nil
}

func encodeEmployeeJSON(e *employee.Employee) (skills, probation, documents string, err error) {
	skillsB, err := json.Marshal(e.Skills)
	if err != nil {
		return "", "", "", fmt.Errorf("postgres: encode skills: %w", err)
	}
	probationB, err := json.Marshal(e.Probation)
	if err != nil {
		return "", "", "", fmt.Errorf("postgres: encode probation: %w", err)
	}
	documentsB, err := json.Marshal(e.Documents)
	if err != nil {
		return "", "", "", fmt.Errorf("postgres: encode documents: %w", err)
	}
	return string(skillsB), string(probationB), string(documentsB), nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		e                           employee.Employee
		employmentType, status      string
		skills, probation, docsJSON []byte
		startDate                   time.Time
	)

	if err := row.Scan(
		&e.ID,
		&e.EmployeeNumber,
		&e.Name,
		&e.Email,
		&e.Phone,
		&e.Position,
		&e.Department,
		&employmentType,
		&e.Salary,
		&status,
		&startDate,
		&e.Location,
		&e.Address,
		&e.City,
		&e.Country,
		&e.Manager,
		&e.WorkSchedule,
		&e.Bio,
		&skills,
		&probation,
		&docsJSON,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.CreatedBy,
		&e.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	e.EmploymentType = employee.EmploymentType(employmentType)
	e.Status = employee.Status(status)
	e.StartDate = startDate

	if err := json.Unmarshal(skills, &e.Skills); err != nil {
		return nil, fmt.Errorf("postgres: decode skills: %w", err)
	}
	if err := json.Unmarshal(probation, &e.Probation); err != nil {
		return nil, fmt.Errorf("postgres: decode probation: %w", err)
	}
	if err := json.Unmarshal(docsJSON, &e.Documents); err != nil {
		return nil, fmt.Errorf("postgres: decode documents: %w", err)
	}

	return &e, nil
}
