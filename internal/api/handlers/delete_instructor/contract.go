package delete_instructor

import (
	"context"
)

type InstructorService interface {
	Delete(ctx context.Context, id int64, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
