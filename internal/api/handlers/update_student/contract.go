package update_student

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/students/models"
)

type StudentService interface {
	Update(ctx context.Context, id int64, req *models.UpdateStudentRequest) (*models.StudentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
