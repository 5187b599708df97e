package create_material

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/materials/models"
)

type MaterialService interface {
	Create(ctx context.Context, req *models.CreateMaterialRequest) (*models.MaterialResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
