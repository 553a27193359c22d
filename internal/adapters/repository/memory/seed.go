package memory

import (
	"time"

	"hr-records/internal/core/employee"
	"hr-records/internal/core/history"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DefaultSeed はデモ用の初期データセットを返します。社員3名と、1人目の
// 作成および昇給・昇格の履歴2件を含みます。
func DefaultSeed() ([]*employee.Employee, []*history.Entry) {
	employees := []*employee.Employee{
		{
			ID:             1,
			EmployeeNumber: "EMP001",
			Name:           "Sarah Johnson",
			Email:          "sarah.johnson@company.com",
			Phone:          "+1 (555) 123-4567",
			Position:       "Senior Software Engineer",
			Department:     "Engineering",
			EmploymentType: employee.EmploymentContract,
			Salary:         95000,
			Status:         employee.StatusActive,
			StartDate:      date(2022, time.March, 15),
			Location:       "San Francisco, CA",
			Address:        "123 Tech Street",
			City:           "San Francisco",
			Country:        "United States",
			Manager:        "Tech Lead",
			WorkSchedule:   "9:00 AM - 5:00 PM",
			Bio:            "Experienced full-stack developer with expertise in React and Node.js",
			Skills:         []string{"React", "Node.js", "TypeScript", "Python"},
			Probation: employee.ProbationPeriod{
				OnProbation:    false,
				StartDate:      date(2022, time.March, 15),
				EndDate:        date(2022, time.September, 15),
				DurationMonths: 6,
			},
			Documents: []employee.Document{
				{
					ID:         1,
					Name:       "Resume_Sarah_Johnson.pdf",
					Type:       employee.DocumentContract,
					URL:        "/documents/resume_sarah.pdf",
					UploadDate: date(2022, time.March, 10),
					Size:       "245 KB",
				},
				{
					ID:         2,
					Name:       "Employment_Contract.pdf",
					Type:       employee.DocumentProof,
					URL:        "/documents/contract_sarah.pdf",
					UploadDate: date(2022, time.March, 15),
					Size:       "1.2 MB",
				},
			},
			CreatedAt: time.Date(2022, time.March, 15, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.January, 5, 14, 30, 0, 0, time.UTC),
			CreatedBy: "HR Admin",
			UpdatedBy: "HR Admin",
		},
		{
			ID:             2,
			EmployeeNumber: "EMP002",
			Name:           "Michael Chen",
			Email:          "michael.chen@company.com",
			Phone:          "+1 (555) 234-5678",
			Position:       "Product Manager",
			Department:     "Product",
			EmploymentType: employee.EmploymentFullTime,
			Salary:         110000,
			Status:         employee.StatusActive,
			StartDate:      date(2021, time.August, 22),
			Location:       "New York, NY",
			Address:        "456 Business Ave",
			City:           "New York",
			Country:        "United States",
			Manager:        "VP Product",
			WorkSchedule:   "9:00 AM - 6:00 PM",
			Bio:            "Strategic product leader with 8+ years of experience in tech startups",
			Skills:         []string{"Product Strategy", "Analytics", "Leadership", "Agile"},
			Probation: employee.ProbationPeriod{
				OnProbation:    false,
				StartDate:      date(2021, time.August, 22),
				EndDate:        date(2022, time.February, 22),
				DurationMonths: 6,
			},
			Documents: []employee.Document{},
			CreatedAt: time.Date(2021, time.August, 22, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.January, 5, 14, 30, 0, 0, time.UTC),
			CreatedBy: "HR Admin",
			UpdatedBy: "HR Admin",
		},
		{
			ID:             3,
			EmployeeNumber: "EMP003",
			Name:           "Emily Rodriguez",
			Email:          "emily.rodriguez@company.com",
			Phone:          "+1 (555) 345-6789",
			Position:       "UX Designer",
			Department:     "Design",
			EmploymentType: employee.EmploymentFullTime,
			Salary:         78000,
			Status:         employee.StatusActive,
			StartDate:      date(2024, time.January, 10),
			Location:       "Austin, TX",
			Address:        "789 Design Lane",
			City:           "Austin",
			Country:        "United States",
			Manager:        "Design Director",
			WorkSchedule:   "10:00 AM - 6:00 PM",
			Bio:            "Creative designer passionate about user-centered design and accessibility",
			Skills:         []string{"Figma", "User Research", "Prototyping", "Accessibility"},
			Probation: employee.ProbationPeriod{
				OnProbation:    true,
				StartDate:      date(2024, time.January, 10),
				EndDate:        date(2024, time.July, 10),
				DurationMonths: 6,
			},
			Documents: []employee.Document{},
			CreatedAt: time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC),
			CreatedBy: "HR Admin",
			UpdatedBy: "HR Admin",
		},
	}

	entries := []*history.Entry{
		{
			ID:           1,
			EmployeeID:   1,
			EmployeeName: "Sarah Johnson",
			Action:       history.ActionCreated,
			Changes:      map[string]history.Change{},
			Timestamp:    time.Date(2022, time.March, 15, 9, 0, 0, 0, time.UTC),
			UpdatedBy:    "HR Admin",
		},
		{
			ID:           2,
			EmployeeID:   1,
			EmployeeName: "Sarah Johnson",
			Action:       history.ActionUpdated,
			Changes: map[string]history.Change{
				"salary":   {From: int64(90000), To: int64(95000)},
				"position": {From: "Software Engineer", To: "Senior Software Engineer"},
			},
			Timestamp: time.Date(2024, time.January, 5, 14, 30, 0, 0, time.UTC),
			UpdatedBy: "HR Admin",
		},
	}

	return employees, entries
}
