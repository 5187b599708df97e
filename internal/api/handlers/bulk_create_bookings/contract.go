package bulk_create_bookings

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/bookings/models"
)

type BookingService interface {
	CreateBulk(ctx context.Context, req *models.BulkCreateBookingRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
