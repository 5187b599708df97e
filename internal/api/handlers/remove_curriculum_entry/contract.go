package remove_curriculum_entry

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/packages/models"
)

type PackageService interface {
	RemoveCurriculumEntry(ctx context.Context, packageID, entryID int64) (*models.CurriculumResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
