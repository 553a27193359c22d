package employee

import "context"

// Repository は社員レコード永続化の抽象です。Create は ID と EmployeeNumber を
// 採番して返します。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
}
