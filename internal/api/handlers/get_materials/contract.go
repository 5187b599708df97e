package get_materials

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/materials/models"
)

type MaterialService interface {
	List(ctx context.Context) (*models.MaterialListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
