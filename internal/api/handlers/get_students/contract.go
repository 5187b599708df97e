package get_students

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/students/models"
)

type StudentService interface {
	List(ctx context.Context, onlyActive bool) (*models.StudentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
