package employee

import "time"

// Status は社員の雇用状態を表します。
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// EmploymentType は雇用形態を表します。
type EmploymentType string

const (
	EmploymentFullTime  EmploymentType = "Full-time"
	EmploymentPartTime  EmploymentType = "Part-time"
	EmploymentContract  EmploymentType = "Contract"
	EmploymentProbation EmploymentType = "Probation"
)

// DocumentType は社員に紐づく書類の種別を表します。
type DocumentType string

const (
	DocumentContract DocumentType = "Contract"
	DocumentProof    DocumentType = "Proof"
	DocumentOther    DocumentType = "Other"
)

// ProbationPeriod は試用期間の情報です。OnProbation は管理上の意図を記録する
// フラグで、現時点で試用期間中かどうかの判定は report パッケージが終了日と
// 現在日から導出します。
type ProbationPeriod struct {
	OnProbation    bool      `json:"isOnProbation"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	DurationMonths int       `json:"duration"`
}

// String は試用期間の表示用文字列を返します。編集履歴の変更値として
// 描画されるときに使われます。
func (p ProbationPeriod) String() string {
	if !p.OnProbation {
		return "not on probation"
	}
	return p.StartDate.Format("2006-01-02") + " to " + p.EndDate.Format("2006-01-02")
}

// Document は社員に紐づく書類の参照です。ID は社員ごとに採番されます。
type Document struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Type       DocumentType `json:"type"`
	URL        string       `json:"url"`
	UploadDate time.Time    `json:"uploadDate"`
	Size       string       `json:"size"`
}

// Employee は社員エンティティです。ID と EmployeeNumber は作成時に採番され、
// 以後変更されません。
type Employee struct {
	ID             int64           `json:"id"`
	EmployeeNumber string          `json:"employeeNumber"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Position       string          `json:"position"`
	Department     string          `json:"department"`
	EmploymentType EmploymentType  `json:"employmentType"`
	Salary         int64           `json:"salary"`
	Status         Status          `json:"status"`
	StartDate      time.Time       `json:"startDate"`
	Location       string          `json:"location"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	Country        string          `json:"country"`
	Manager        string          `json:"manager"`
	WorkSchedule   string          `json:"workSchedule"`
	Bio            string          `json:"bio"`
	Skills         []string        `json:"skills"`
	Probation      ProbationPeriod `json:"probationPeriod"`
	Documents      []Document      `json:"documents"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	CreatedBy      string          `json:"createdBy"`
	UpdatedBy      string          `json:"updatedBy"`
}

// Clone は Employee の深いコピーを返します。ストア実装が内部状態を外部へ
// 渡す際の防御コピーに利用します。
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Skills != nil {
		cp.Skills = append([]string(nil), e.Skills...)
	}
	if e.Documents != nil {
		cp.Documents = append([]Document(nil), e.Documents...)
	}
	return &cp
}

// Departments は部署の一覧です。先頭の "All" は一覧表示用の番兵で、
// 集計対象には含めません。
var Departments = []string{
	"All",
	"Engineering",
	"Product",
	"Design",
	"Analytics",
	"Marketing",
	"Human Resources",
	"Finance",
	"Sales",
}
