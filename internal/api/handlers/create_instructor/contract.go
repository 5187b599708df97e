package create_instructor

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/service/instructors/models"
)

type InstructorService interface {
	Create(ctx context.Context, req *models.CreateInstructorRequest) (*models.InstructorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
