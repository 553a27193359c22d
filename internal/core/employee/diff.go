package employee

import (
	"slices"

	"hr-records/internal/core/history"
)

// changeSet は更新入力で指定されたフィールドごとに既存値と比較し、
// 値が変わるものだけを変更マップに記録します。フィールド集合は
// Employee のスキーマに閉じており、実行時リフレクションには頼りません。
// キーは履歴表示と互換の camelCase 識別子です。
func changeSet(existing *Employee, in UpdateEmployeeInput) map[string]history.Change {
	changes := make(map[string]history.Change)

	record := func(field string, from, to any, differs bool) {
		if differs {
			changes[field] = history.Change{From: from, To: to}
		}
	}

	if in.Name != nil {
		record("name", existing.Name, *in.Name, existing.Name != *in.Name)
	}
	if in.Email != nil {
		record("email", existing.Email, *in.Email, existing.Email != *in.Email)
	}
	if in.Phone != nil {
		record("phone", existing.Phone, *in.Phone, existing.Phone != *in.Phone)
	}
	if in.Position != nil {
		record("position", existing.Position, *in.Position, existing.Position != *in.Position)
	}
	if in.Department != nil {
		record("department", existing.Department, *in.Department, existing.Department != *in.Department)
	}
	if in.EmploymentType != nil {
		record("employmentType", existing.EmploymentType, *in.EmploymentType, existing.EmploymentType != *in.EmploymentType)
	}
	if in.Salary != nil {
		record("salary", existing.Salary, *in.Salary, existing.Salary != *in.Salary)
	}
	if in.Status != nil {
		record("status", existing.Status, *in.Status, existing.Status != *in.Status)
	}
	if in.StartDate != nil {
		record("startDate", existing.StartDate, *in.StartDate, !existing.StartDate.Equal(*in.StartDate))
	}
	if in.Location != nil {
		record("location", existing.Location, *in.Location, existing.Location != *in.Location)
	}
	if in.Address != nil {
		record("address", existing.Address, *in.Address, existing.Address != *in.Address)
	}
	if in.City != nil {
		record("city", existing.City, *in.City, existing.City != *in.City)
	}
	if in.Country != nil {
		record("country", existing.Country, *in.Country, existing.Country != *in.Country)
	}
	if in.Manager != nil {
		record("manager", existing.Manager, *in.Manager, existing.Manager != *in.Manager)
	}
	if in.WorkSchedule != nil {
		record("workSchedule", existing.WorkSchedule, *in.WorkSchedule, existing.WorkSchedule != *in.WorkSchedule)
	}
	if in.Bio != nil {
		record("bio", existing.Bio, *in.Bio, existing.Bio != *in.Bio)
	}
	if in.SkillsSet {
		from := append([]string(nil), existing.Skills...)
		to := append([]string(nil), in.Skills...)
		record("skills", from, to, !slices.Equal(existing.Skills, in.Skills))
	}
	if in.Probation != nil {
		record("probationPeriod", existing.Probation, *in.Probation, !probationEqual(existing.Probation, *in.Probation))
	}

	return changes
}

// applyUpdate は更新入力で指定されたフィールドを既存レコードに適用します。
// タイムスタンプと操作者の更新は呼び出し側の責務です。
func applyUpdate(existing *Employee, in UpdateEmployeeInput) {
	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Email != nil {
		existing.Email = *in.Email
	}
	if in.Phone != nil {
		existing.Phone = *in.Phone
	}
	if in.Position != nil {
		existing.Position = *in.Position
	}
	if in.Department != nil {
		existing.Department = *in.Department
	}
	if in.EmploymentType != nil {
		existing.EmploymentType = *in.EmploymentType
	}
	if in.Salary != nil {
		existing.Salary = *in.Salary
	}
	if in.Status != nil {
		existing.Status = *in.Status
	}
	if in.StartDate != nil {
		existing.StartDate = *in.StartDate
	}
	if in.Location != nil {
		existing.Location = *in.Location
	}
	if in.Address != nil {
		existing.Address = *in.Address
	}
	if in.City != nil {
		existing.City = *in.City
	}
	if in.Country != nil {
		existing.Country = *in.Country
	}
	if in.Manager != nil {
		existing.Manager = *in.Manager
	}
	if in.WorkSchedule != nil {
		existing.WorkSchedule = *in.WorkSchedule
	}
	if in.Bio != nil {
		existing.Bio = *in.Bio
	}
	if in.SkillsSet {
		existing.Skills = append([]string(nil), in.Skills...)
	}
	if in.Probation != nil {
		existing.Probation = *in.Probation
	}
}

func probationEqual(a, b ProbationPeriod) bool {
	return a.OnProbation == b.OnProbation &&
		a.DurationMonths == b.DurationMonths &&
		a.StartDate.Equal(b.StartDate) &&
		a.EndDate.Equal(b.EndDate)
}
