package get_student_progress

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/usecase/get_student_progress"
)

type ProgressUseCase interface {
	Execute(ctx context.Context, req *get_student_progress.Request) (*get_student_progress.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
