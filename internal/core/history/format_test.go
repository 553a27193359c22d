package history

import (
	"testing"
	"time"
)

func sampleEntries() []*Entry {
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return []*Entry{
		{ID: 3, EmployeeID: 2, EmployeeName: "Michael Chen", Action: ActionStatusChanged, Timestamp: base.Add(2 * time.Hour), UpdatedBy: "Admin User"},
		{ID: 2, EmployeeID: 1, EmployeeName: "Sarah Johnson", Action: ActionUpdated, Timestamp: base.Add(time.Hour), UpdatedBy: "HR Manager"},
		{ID: 1, EmployeeID: 1, EmployeeName: "Sarah Johnson", Action: ActionCreated, Timestamp: base, UpdatedBy: "HR Manager"},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	entries := sampleEntries()

	tests := []struct {
		name   string
		term   string
		action string
		want   int
	}{
		{"no filters", "", ActionFilterAll, 3},
		{"empty action treated as all", "", "", 3},
		{"name match is case insensitive", "sarah", ActionFilterAll, 2},
		{"author match", "admin", ActionFilterAll, 1},
		{"action only", "", "created", 1},
		{"term and action are anded", "sarah", "created", 1},
		{"term excludes action match", "michael", "created", 0},
		{"no match", "nobody", ActionFilterAll, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(entries, tc.term, tc.action)
			if len(got) != tc.want {
				t.Fatalf("Filter(%q, %q) = %d entries, want %d", tc.term, tc.action, len(got), tc.want)
			}
		})
	}
}

func TestActionLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action Action
		want   string
	}{
		{ActionCreated, "Created"},
		{ActionUpdated, "Updated"},
		{ActionStatusChanged, "Status changed"},
		{Action("archived"), "archived"},
	}

	for _, tc := range tests {
		if got := ActionLabel(tc.action); got != tc.want {
			t.Errorf("ActionLabel(%q) = %q, want %q", tc.action, got, tc.want)
		}
	}
}

func TestHumanizeField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"name", "name"},
		{"employmentType", "employment type"},
		{"workSchedule", "work schedule"},
		{"probationPeriod", "probation period"},
	}

	for _, tc := range tests {
		if got := HumanizeField(tc.in); got != tc.want {
			t.Errorf("HumanizeField(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	midnight := time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)
	afternoon := time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Engineering", "Engineering"},
		{"date only at midnight", midnight, "2022-03-15"},
		{"full timestamp otherwise", afternoon, "2024-01-05T14:30:00Z"},
		{"string slice", []string{"Go", "SQL"}, "Go, SQL"},
		{"generic slice after json round trip", []any{"Go", "SQL"}, "Go, SQL"},
		{"float without trailing zeros", float64(95000), "95000"},
		{"int", 42, "42"},
		{"bool", true, "true"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValue(tc.in); got != tc.want {
				t.Fatalf("FormatValue(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDescribeChange(t *testing.T) {
	t.Parallel()

	got := DescribeChange("salary", Change{From: float64(90000), To: float64(95000)})
	want := "salary: 90000 → 95000"
	if got != want {
		t.Fatalf("DescribeChange = %q, want %q", got, want)
	}

	got = DescribeChange("startDate", Change{
		From: time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	want = "start date: 2022-03-15 → 2022-04-01"
	if got != want {
		t.Fatalf("DescribeChange = %q, want %q", got, want)
	}
}
