package report

import (
	"testing"
	"time"

	"hr-records/internal/core/employee"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleEmployees() []*employee.Employee {
	return []*employee.Employee{
		{ID: 1, Name: "Sarah Johnson", Department: "Engineering", Salary: 95000, Status: employee.StatusActive, StartDate: date(2022, 3, 15)},
		{ID: 2, Name: "Michael Chen", Department: "Product", Salary: 110000, Status: employee.StatusActive, StartDate: date(2021, 8, 22)},
		{ID: 3, Name: "Emily Rodriguez", Department: "Design", Salary: 78000, Status: employee.StatusInactive, StartDate: date(2024, 1, 10),
			Probation: employee.ProbationPeriod{OnProbation: true, StartDate: date(2024, 1, 10), EndDate: date(2024, 7, 10), DurationMonths: 6}},
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize(sampleEmployees())

	if s.Total != 3 {
		t.Errorf("expected total 3, got %d", s.Total)
	}
	if s.Active != 2 {
		t.Errorf("expected 2 active, got %d", s.Active)
	}
	if s.Departments != 3 {
		t.Errorf("expected 3 departments, got %d", s.Departments)
	}
	if s.AverageSalary != 94333 {
		t.Errorf("expected rounded average 94333, got %d", s.AverageSalary)
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)
	if s.Total != 0 || s.Active != 0 || s.Departments != 0 {
		t.Errorf("expected zero counts, got %+v", s)
	}
	if s.AverageSalary != 0 {
		t.Errorf("empty collection must average to 0, got %d", s.AverageSalary)
	}
}

func TestGroupByDepartment(t *testing.T) {
	t.Parallel()

	groups := GroupByDepartment(sampleEmployees(), employee.Departments)

	if len(groups) != len(employee.Departments)-1 {
		t.Fatalf("expected the All sentinel skipped, got %d groups", len(groups))
	}

	byName := make(map[string]DepartmentSummary, len(groups))
	for _, g := range groups {
		if g.Name == "All" {
			t.Fatal("All must not appear in department summaries")
		}
		byName[g.Name] = g
	}

	if g := byName["Engineering"]; g.Count != 1 || g.AverageSalary != 95000 {
		t.Errorf("unexpected Engineering summary %+v", g)
	}
	if g := byName["Sales"]; g.Count != 0 || g.AverageSalary != 0 {
		t.Errorf("empty department must report zero average, got %+v", g)
	}
}

func TestRecentHires(t *testing.T) {
	t.Parallel()

	employees := sampleEmployees()

	hires := RecentHires(employees, 2)
	if len(hires) != 2 {
		t.Fatalf("expected 2 hires, got %d", len(hires))
	}
	if hires[0].Name != "Emily Rodriguez" || hires[1].Name != "Sarah Johnson" {
		t.Errorf("expected newest start dates first, got %s then %s", hires[0].Name, hires[1].Name)
	}

	all := RecentHires(employees, 10)
	if len(all) != 3 {
		t.Errorf("expected n capped at collection size, got %d", len(all))
	}

	if got := RecentHires(employees, -1); len(got) != 0 {
		t.Errorf("expected no hires for negative n, got %d", len(got))
	}
}

func TestOnProbation(t *testing.T) {
	t.Parallel()

	emp := sampleEmployees()[2]

	if !OnProbation(emp, date(2024, 3, 1)) {
		t.Error("expected on probation before the end date")
	}
	if OnProbation(emp, date(2024, 7, 10)) {
		t.Error("expected probation over on the end date")
	}
	if OnProbation(emp, date(2025, 1, 1)) {
		t.Error("stale flag with past end date must not count as probation")
	}

	noFlag := sampleEmployees()[0]
	if OnProbation(noFlag, date(2024, 3, 1)) {
		t.Error("expected no probation without the stored flag")
	}
}

func TestProbationDaysLeft(t *testing.T) {
	t.Parallel()

	emp := sampleEmployees()[2]

	if got := ProbationDaysLeft(emp, date(2024, 5, 10)); got != 61 {
		t.Errorf("expected 61 days left, got %d", got)
	}

	if got := ProbationDaysLeft(emp, date(2024, 7, 9)); got != 1 {
		t.Errorf("expected 1 day left, got %d", got)
	}

	// Partial days round up.
	midday := time.Date(2024, 7, 8, 12, 0, 0, 0, time.UTC)
	if got := ProbationDaysLeft(emp, midday); got != 2 {
		t.Errorf("expected partial day rounded up to 2, got %d", got)
	}

	noFlag := sampleEmployees()[0]
	if got := ProbationDaysLeft(noFlag, date(2024, 7, 9)); got != 0 {
		t.Errorf("expected 0 without the flag, got %d", got)
	}
}

func TestProbationEndDate(t *testing.T) {
	t.Parallel()

	got := ProbationEndDate(date(2024, 1, 10), 6)
	if !got.Equal(date(2024, 7, 10)) {
		t.Errorf("expected 2024-07-10, got %v", got)
	}
}

func TestHeadcount(t *testing.T) {
	t.Parallel()

	active, inactive := Headcount(sampleEmployees())
	if active != 2 || inactive != 1 {
		t.Errorf("expected 2 active and 1 inactive, got %d and %d", active, inactive)
	}
}

func TestProbationWatch(t *testing.T) {
	t.Parallel()

	watch := ProbationWatch(sampleEmployees())
	if len(watch) != 1 || watch[0].Name != "Emily Rodriguez" {
		t.Errorf("unexpected watch list %v", watch)
	}
}
