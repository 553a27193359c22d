// Package report は現在のスナップショットからダッシュボード集計や
// 試用期間の導出状態を計算する純粋関数を提供します。ストアの状態には
// 一切触れません。
package report

import (
	"math"
	"sort"
	"time"

	"hr-records/internal/core/employee"
)

// Summary はダッシュボードの集計値です。
type Summary struct {
	Total         int
	Active        int
	Departments   int
	AverageSalary int64
}

// Summarize は社員一覧から集計値を計算します。空の一覧では平均給与を
// 0 とします(未定義の数値を返さないためのポリシー)。
func Summarize(employees []*employee.Employee) Summary {
	s := Summary{Total: len(employees)}

	seen := make(map[string]struct{})
	var sum int64
	for _, emp := range employees {
		if emp.Status == employee.StatusActive {
			s.Active++
		}
		if _, ok := seen[emp.Department]; !ok {
			seen[emp.Department] = struct{}{}
		}
		sum += emp.Salary
	}
	s.Departments = len(seen)

	if s.Total > 0 {
		s.AverageSalary = roundedAverage(sum, s.Total)
	}
	return s
}

// DepartmentSummary は部署ごとの集計値です。
type DepartmentSummary struct {
	Name          string
	Count         int
	AverageSalary int64
}

// GroupByDepartment は部署カタログの各部署("All" 番兵を除く)について
// 所属人数と平均給与を計算します。所属がない部署の平均給与は 0 です。
func GroupByDepartment(employees []*employee.Employee, departments []string) []DepartmentSummary {
	result := make([]DepartmentSummary, 0, len(departments))
	for _, dept := range departments {
		if dept == "All" {
			continue
		}

		var count int
		var sum int64
		for _, emp := range employees {
			if emp.Department == dept {
				count++
				sum += emp.Salary
			}
		}

		summary := DepartmentSummary{Name: dept, Count: count}
		if count > 0 {
			summary.AverageSalary = roundedAverage(sum, count)
		}
		result = append(result, summary)
	}
	return result
}

// RecentHires は入社日の新しい順に先頭 n 名を返します。同日入社は
// 元の並び(挿入順)を保ちます。
func RecentHires(employees []*employee.Employee, n int) []*employee.Employee {
	sorted := append([]*employee.Employee(nil), employees...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})

	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// OnProbation は社員が「今まさに試用期間中」かを判定します。保存された
// フラグは管理上の意図にすぎないため、終了日と評価時点の両方で判定します。
func OnProbation(emp *employee.Employee, today time.Time) bool {
	return emp.Probation.OnProbation && today.Before(emp.Probation.EndDate)
}

// ProbationDaysLeft は試用期間の残り日数(切り上げ)を返します。フラグが
// 立っていない場合は 0 です。フラグが古く終了日が過去の場合は負値になる
// ため、表示の出し分けには OnProbation を使ってください。
func ProbationDaysLeft(emp *employee.Employee, today time.Time) int {
	if !emp.Probation.OnProbation {
		return 0
	}
	diff := emp.Probation.EndDate.Sub(today)
	return int(math.Ceil(diff.Hours() / 24))
}

// ProbationEndDate は開始日から月数分進めた試用期間の終了日を返します。
func ProbationEndDate(start time.Time, months int) time.Time {
	return start.AddDate(0, months, 0)
}

// Headcount は在籍状態ごとの人数を返します。
func Headcount(employees []*employee.Employee) (active, inactive int) {
	for _, emp := range employees {
		if emp.Status == employee.StatusActive {
			active++
		} else {
			inactive++
		}
	}
	return active, inactive
}

// ProbationWatch は試用期間フラグが立っている社員の一覧を返します。
// サイドバーの観察リスト用で、フラグの鮮度は判定しません。
func ProbationWatch(employees []*employee.Employee) []*employee.Employee {
	watch := make([]*employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if emp.Probation.OnProbation {
			watch = append(watch, emp)
		}
	}
	return watch
}

// roundedAverage は四捨五入した平均値を返します。
func roundedAverage(sum int64, count int) int64 {
	return int64(math.Round(float64(sum) / float64(count)))
}
