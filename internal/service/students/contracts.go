package students

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	"github.com/bimbelceria/BC-AdminService/internal/infra/storage/booking"
)

// StudentRepository is the students persistence contract
type StudentRepository interface {
	Create(ctx context.Context, s *domain.Student) (*domain.Student, error)
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository supplies booking aggregates for usage math
type BookingRepository interface {
	ActivityByStudent(ctx context.Context) (map[int64]booking.StudentActivity, error)
	ActivityForStudent(ctx context.Context, studentID int64) (booking.StudentActivity, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
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
