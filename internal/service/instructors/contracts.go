package instructors

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// InstructorRepository is the instructors persistence contract
type InstructorRepository interface {
	Create(ctx context.Context, i *domain.Instructor) (*domain.Instructor, error)
	GetByID(ctx context.Context, id int64) (*domain.Instructor, error)
	List(ctx context.Context) ([]*domain.Instructor, error)
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
