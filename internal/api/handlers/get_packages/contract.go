package get_packages

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/packages/models"
)

type PackageService interface {
	List(ctx context.Context) (*models.PackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
