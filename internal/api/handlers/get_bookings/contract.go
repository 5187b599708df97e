package get_bookings

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/usecase/list_bookings"
)

type ListBookingsUseCase interface {
	Execute(ctx context.Context, req *list_bookings.Request) (*list_bookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
