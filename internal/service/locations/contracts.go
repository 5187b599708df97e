package locations

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// LocationRepository is the locations persistence contract
type LocationRepository interface {
	Create(ctx context.Context, l *domain.Location) (*domain.Location, error)
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	List(ctx context.Context) ([]*domain.Location, error)
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
