package list_bookings

import (
	"fmt"
	"time"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// parsedFilter is the validated request, ready for filtering
type parsedFilter struct {
	startDate    *time.Time
	endDate      *time.Time
	studentID    *int64
	instructorID *int64
	status       *domain.BookingStatus
}

func validateRequest(req *Request) (parsedFilter, error) {
	var filter parsedFilter

	if req.StartDate != "" {
		start, err := time.Parse(domain.DateFormat, req.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: startDate %q", ErrInvalidDate, req.StartDate)
		}
		filter.startDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse(domain.DateFormat, req.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: endDate %q", ErrInvalidDate, req.EndDate)
		}
		filter.endDate = &end
	}
	if filter.startDate != nil && filter.endDate != nil && filter.endDate.Before(*filter.startDate) {
		return filter, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	if req.StudentID != nil {
		if *req.StudentID <= 0 {
			return filter, fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
		}
		filter.studentID = req.StudentID
	}
	if req.InstructorID != nil {
		if *req.InstructorID <= 0 {
			return filter, fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
		}
		filter.instructorID = req.InstructorID
	}

	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			return filter, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		filter.status = &status
	}

	return filter, nil
}
