package get_timeline

import (
	"fmt"
	"time"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// validateRequest parses and checks the requested month
func validateRequest(req *Request) (time.Time, error) {
	if req.Month == "" {
		return time.Time{}, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	month, err := time.Parse(domain.MonthFormat, req.Month)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, req.Month)
	}

	if req.InstructorID != nil && *req.InstructorID <= 0 {
		return time.Time{}, fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	return month, nil
}
