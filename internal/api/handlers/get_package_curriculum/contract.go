package get_package_curriculum

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/packages/models"
)

type PackageService interface {
	GetCurriculum(ctx context.Context, packageID int64) (*models.CurriculumResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
