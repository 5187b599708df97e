package get_attendance

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/bookings/models"
)

type BookingService interface {
	Attendance(ctx context.Context, date string) (*models.AttendanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
