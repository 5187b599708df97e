package get_timeline

import (
	"context"

	"github.com/bimbelceria/BC-AdminService/internal/usecase/get_timeline"
)

type TimelineUseCase interface {
	Execute(ctx context.Context, req *get_timeline.Request) (*get_timeline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
