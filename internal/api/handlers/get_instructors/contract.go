package get_instructors

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/instructors/models"
)

type InstructorService interface {
	List(ctx context.Context) (*models.InstructorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
