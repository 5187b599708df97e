package packages

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// PackageRepository is the packages persistence contract
type PackageRepository interface {
	Create(ctx context.Context, p *domain.Package) (*domain.Package, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	List(ctx context.Context) ([]*domain.Package, error)
	UpdateTotalSessions(ctx context.Context, id int64, totalSessions int) error
	Delete(ctx context.Context, id int64) error
}

// CurriculumRepository is the curriculum persistence contract
type CurriculumRepository interface {
	Create(ctx context.Context, e *domain.CurriculumEntry) (*domain.CurriculumEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.CurriculumEntry, error)
	ListByPackage(ctx context.Context, packageID int64) ([]*domain.CurriculumEntry, error)
	NextSortOrder(ctx context.Context, packageID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

// MaterialRepository verifies materials referenced by curriculum entries
type MaterialRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Material, error)
}

// TransactionManager runs functions inside a database transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuthClient resolves user roles for privileged operations
type AuthClient interface {
	GetRole(ctx context.Context, userID string) (string, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
