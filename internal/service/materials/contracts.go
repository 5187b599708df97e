package materials

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// MaterialRepository is the materials persistence contract
type MaterialRepository interface {
	Create(ctx context.Context, m *domain.Material) (*domain.Material, error)
	GetByID(ctx context.Context, id int64) (*domain.Material, error)
	List(ctx context.Context) ([]*domain.Material, error)
	Delete(ctx context.Context, id int64) error
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
