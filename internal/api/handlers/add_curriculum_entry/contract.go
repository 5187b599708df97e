package add_curriculum_entry

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/packages/models"
)

type PackageService interface {
	AddCurriculumEntry(ctx context.Context, packageID int64, req *models.AddCurriculumEntryRequest) (*models.CurriculumResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
