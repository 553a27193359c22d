package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-records/internal/core/history"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。各ミューテーションの
// 読み取り・差分計算・履歴追記は、この境界の内側でほかのミューテーションと
// 交錯しないことが保証されます。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は社員レコードと編集履歴に関するユースケースをまとめます。
// 履歴の追記とレコードの更新は常に同一トランザクションで行われ、
// 片方だけが適用された状態にはなりません。
type Service struct {
	repo  Repository
	hist  history.Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	ToggleEmployeeStatus(ctx context.Context, in ToggleStatusInput) (*Employee, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	SearchEmployees(ctx context.Context, term string) ([]*Employee, error)
	AddDocument(ctx context.Context, in AddDocumentInput) (*Employee, error)
	RemoveDocument(ctx context.Context, in RemoveDocumentInput) (*Employee, error)
	EditHistory(ctx context.Context) ([]*history.Entry, error)
	EditHistoryByEmployee(ctx context.Context, employeeID int64) ([]*history.Entry, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, hist history.Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, hist: hist, clock: clock, tx: tx}
}

// CreateEmployeeInput は社員作成時の入力です。ID・社員番号・タイムスタンプ・
// 書類はストアが設定するため含みません。
type CreateEmployeeInput struct {
	Name           string
	Email          string
	Phone          string
	Position       string
	Department     string
	EmploymentType *EmploymentType
	Salary         int64
	Status         *Status
	StartDate      time.Time
	Location       string
	Address        string
	City           string
	Country        string
	Manager        string
	WorkSchedule   string
	Bio            string
	Skills         []string
	Probation      ProbationPeriod
	Actor          string
}

// UpdateEmployeeInput は社員更新時の入力です。nil のフィールドは「指定なし」
// を意味し、差分計算にも適用にも参加しません。
type UpdateEmployeeInput struct {
	ID             int64
	Name           *string
	Email          *string
	Phone          *string
	Position       *string
	Department     *string
	EmploymentType *EmploymentType
	Salary         *int64
	Status         *Status
	StartDate      *time.Time
	Location       *string
	Address        *string
	City           *string
	Country        *string
	Manager        *string
	WorkSchedule   *string
	Bio            *string
	Skills         []string
	SkillsSet      bool
	Probation      *ProbationPeriod
	Actor          string
}

// ToggleStatusInput は在籍状態トグル時の入力です。
type ToggleStatusInput struct {
	ID    int64
	Actor string
}

// AddDocumentInput は書類追加時の入力です。書類 ID はストアが採番します。
type AddDocumentInput struct {
	EmployeeID int64
	Name       string
	Type       DocumentType
	URL        string
	UploadDate time.Time
	Size       string
}

// RemoveDocumentInput は書類削除時の入力です。
type RemoveDocumentInput struct {
	EmployeeID int64
	DocumentID int64
}

// CreateEmployee は新しい社員を作成し、created の履歴エントリを同時に
// 追記します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if in.Salary < 0 {
		return nil, ErrInvalidSalary
	}

	status := StatusActive
	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	employmentType := EmploymentFullTime
	if in.EmploymentType != nil {
		if !isValidEmploymentType(*in.EmploymentType) {
			return nil, ErrInvalidEmploymentType
		}
		employmentType = *in.EmploymentType
	}

	if err := validateProbation(in.Probation); err != nil {
		return nil, err
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		emp := &Employee{
			Name:           name,
			Email:          strings.TrimSpace(in.Email),
			Phone:          strings.TrimSpace(in.Phone),
			Position:       strings.TrimSpace(in.Position),
			Department:     strings.TrimSpace(in.Department),
			EmploymentType: employmentType,
			Salary:         in.Salary,
			Status:         status,
			StartDate:      in.StartDate,
			Location:       strings.TrimSpace(in.Location),
			Address:        strings.TrimSpace(in.Address),
			City:           strings.TrimSpace(in.City),
			Country:        strings.TrimSpace(in.Country),
			Manager:        strings.TrimSpace(in.Manager),
			WorkSchedule:   strings.TrimSpace(in.WorkSchedule),
			Bio:            strings.TrimSpace(in.Bio),
			Skills:         append([]string(nil), in.Skills...),
			Probation:      in.Probation,
			Documents:      []Document{},
			CreatedAt:      now,
			UpdatedAt:      now,
			CreatedBy:      in.Actor,
			UpdatedBy:      in.Actor,
		}

		result, err := s.repo.Create(txCtx, emp)
		if err != nil {
			return err
		}

		if _, err := s.hist.Append(txCtx, &history.Entry{
			EmployeeID:   result.ID,
			EmployeeName: result.Name,
			Action:       history.ActionCreated,
			Changes:      map[string]history.Change{},
			Timestamp:    now,
			UpdatedBy:    in.Actor,
		}); err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateEmployee は社員レコードを更新します。指定されたフィールドごとに
// 既存値と比較し、ひとつも値が変わらない場合はレコードにも履歴にも一切
// 触れません(冗長な更新は監査証跡を汚さず、updatedAt も進めません)。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	normalizeUpdateInput(&in)

	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if in.Name != nil && *in.Name == "" {
		return nil, ErrInvalidName
	}
	if in.Status != nil && !isValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}
	if in.EmploymentType != nil && !isValidEmploymentType(*in.EmploymentType) {
		return nil, ErrInvalidEmploymentType
	}
	if in.Salary != nil && *in.Salary < 0 {
		return nil, ErrInvalidSalary
	}
	if in.Probation != nil {
		if err := validateProbation(*in.Probation); err != nil {
			return nil, err
		}
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		changes := changeSet(existing, in)
		if len(changes) == 0 {
			updated = existing
			return nil
		}

		snapshotName := existing.Name
		now := s.clock.Now()

		applyUpdate(existing, in)
		existing.UpdatedAt = now
		existing.UpdatedBy = in.Actor

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		if _, err := s.hist.Append(txCtx, &history.Entry{
			EmployeeID:   result.ID,
			EmployeeName: snapshotName,
			Action:       history.ActionUpdated,
			Changes:      changes,
			Timestamp:    now,
			UpdatedBy:    in.Actor,
		}); err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// ToggleEmployeeStatus は在籍状態を Active と Inactive の間で反転します。
// 更新と異なり、トグルは無条件に status_changed の履歴エントリを追記します。
func (s *Service) ToggleEmployeeStatus(ctx context.Context, in ToggleStatusInput) (*Employee, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var toggled *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		oldStatus := existing.Status
		newStatus := StatusActive
		if oldStatus == StatusActive {
			newStatus = StatusInactive
		}

		now := s.clock.Now()
		existing.Status = newStatus
		existing.UpdatedAt = now
		existing.UpdatedBy = in.Actor

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		if _, err := s.hist.Append(txCtx, &history.Entry{
			EmployeeID:   result.ID,
			EmployeeName: result.Name,
			Action:       history.ActionStatusChanged,
			Changes: map[string]history.Change{
				"status": {From: oldStatus, To: newStatus},
			},
			Timestamp: now,
			UpdatedBy: in.Actor,
		}); err != nil {
			return err
		}

		toggled = result
		return nil
	}); err != nil {
		return nil, err
	}

	return toggled, nil
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は社員の一覧を挿入順で取得します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	var result []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		list, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		result = list
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// SearchEmployees は氏名または社員番号に対する大文字小文字を区別しない
// 部分一致で一覧を絞り込みます。空の検索語は全件を返します。
func (s *Service) SearchEmployees(ctx context.Context, term string) ([]*Employee, error) {
	list, err := s.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return list, nil
	}

	filtered := make([]*Employee, 0, len(list))
	for _, emp := range list {
		if strings.Contains(strings.ToLower(emp.Name), needle) ||
			strings.Contains(strings.ToLower(emp.EmployeeNumber), needle) {
			filtered = append(filtered, emp)
		}
	}
	return filtered, nil
}

// AddDocument は社員に書類を追加します。書類 ID はその社員の既存書類の
// 最大 ID + 1 で採番します。書類の増減は履歴に記録されません(現行仕様)。
func (s *Service) AddDocument(ctx context.Context, in AddDocumentInput) (*Employee, error) {
	if in.EmployeeID <= 0 {
		return nil, fmt.Errorf("employee id: %w", ErrInvalidID)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidDocumentName
	}
	if !isValidDocumentType(in.Type) {
		return nil, ErrInvalidDocumentType
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.EmployeeID)
		if err != nil {
			return err
		}

		var maxID int64
		for _, doc := range existing.Documents {
			if doc.ID > maxID {
				maxID = doc.ID
			}
		}

		existing.Documents = append(existing.Documents, Document{
			ID:         maxID + 1,
			Name:       strings.TrimSpace(in.Name),
			Type:       in.Type,
			URL:        in.URL,
			UploadDate: in.UploadDate,
			Size:       in.Size,
		})

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveDocument は社員から書類を削除します。
func (s *Service) RemoveDocument(ctx context.Context, in RemoveDocumentInput) (*Employee, error) {
	if in.EmployeeID <= 0 {
		return nil, fmt.Errorf("employee id: %w", ErrInvalidID)
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.EmployeeID)
		if err != nil {
			return err
		}

		found := false
		docs := existing.Documents[:0]
		for _, doc := range existing.Documents {
			if doc.ID == in.DocumentID {
				found = true
				continue
			}
			docs = append(docs, doc)
		}
		if !found {
			return ErrDocumentNotFound
		}
		existing.Documents = docs

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// EditHistory は全社員の編集履歴を新しい順で返します。
func (s *Service) EditHistory(ctx context.Context) ([]*history.Entry, error) {
	var result []*history.Entry
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		entries, err := s.hist.List(txCtx)
		if err != nil {
			return err
		}
		result = entries
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// EditHistoryByEmployee は特定社員の編集履歴を新しい順で返します。
func (s *Service) EditHistoryByEmployee(ctx context.Context, employeeID int64) ([]*history.Entry, error) {
	if employeeID <= 0 {
		return nil, fmt.Errorf("employee id: %w", ErrInvalidID)
	}

	var result []*history.Entry
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		entries, err := s.hist.ListByEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}
		result = entries
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

func isValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentProbation:
		return true
	default:
		return false
	}
}

func isValidDocumentType(t DocumentType) bool {
	switch t {
	case DocumentContract, DocumentProof, DocumentOther:
		return true
	default:
		return false
	}
}

// normalizeUpdateInput は指定された文字列フィールドの前後の空白を取り除き
// ます。作成時と同じ正規化を通すことで、空白だけが異なる値が差分として
// 記録されることを防ぎます。呼び出し元の値は書き換えません。
func normalizeUpdateInput(in *UpdateEmployeeInput) {
	trim := func(p **string) {
		if *p == nil {
			return
		}
		v := strings.TrimSpace(**p)
		*p = &v
	}
	trim(&in.Name)
	trim(&in.Email)
	trim(&in.Phone)
	trim(&in.Position)
	trim(&in.Department)
	trim(&in.Location)
	trim(&in.Address)
	trim(&in.City)
	trim(&in.Country)
	trim(&in.Manager)
	trim(&in.WorkSchedule)
	trim(&in.Bio)
}

func validateProbation(p ProbationPeriod) error {
	if p.OnProbation && p.EndDate.Before(p.StartDate) {
		return ErrInvalidProbationRange
	}
	return nil
}
