package bookings

import (
	"context"
	"time"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// BookingRepository is the bookings persistence contract
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	CreateBatch(ctx context.Context, bookings []*domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
	CountByDate(ctx context.Context, date time.Time) (int, error)
}

// StudentRepository verifies students referenced by bookings
type StudentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	CountActive(ctx context.Context) (int, error)
}

// InstructorRepository counts instructors for dashboard figures
type InstructorRepository interface {
	List(ctx context.Context) ([]*domain.Instructor, error)
}

// AuthClient resolves user roles for privileged operations
type AuthClient interface {
	GetRole(ctx context.Context, userID string) (string, error)
}

// TimeProvider supplies the current time, injectable for tests
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
