package get_student_progress

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// StudentRepository supplies the student with their package
type StudentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
}

// BookingRepository supplies the student's booking history
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CurriculumRepository supplies the package teaching order
type CurriculumRepository interface {
	ListByPackage(ctx context.Context, packageID int64) ([]*domain.CurriculumEntry, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
