package get_locations

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/locations/models"
)

type LocationService interface {
	List(ctx context.Context) (*models.LocationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
