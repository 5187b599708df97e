package list_bookings

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// BookingRepository supplies the booking ledger
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CurriculumRepository supplies every package curriculum in one read
type CurriculumRepository interface {
	ListAll(ctx context.Context) (map[int64][]*domain.CurriculumEntry, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
