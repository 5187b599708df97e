package get_dashboard_stats

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/bookings/models"
)

type BookingService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
