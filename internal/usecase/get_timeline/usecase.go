package get_timeline

import (
	"context"
	"fmt"
	"time"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// UseCase builds the month schedule grid. Session numbers depend on each
// student's complete booking history, so the whole ledger is read and
// resolved before the month window is cut out of it.
type UseCase struct {
	bookingRepo    BookingRepository
	curriculumRepo CurriculumRepository
	logger         Logger
}

// NewUseCase creates the timeline use case
func NewUseCase(
	bookingRepo BookingRepository,
	curriculumRepo CurriculumRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		curriculumRepo: curriculumRepo,
		logger:         logger,
	}
}

// Execute builds the grid for one month
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeline: month=%s, instructor=%v", req.Month, req.InstructorID)

	month, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetTimeline: validation failed: %v", err)
		return nil, err
	}

	// The full ledger, not just the month: a booking's session number is its
	// position in the student's complete history
	allBookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		uc.logger.Error("GetTimeline: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	curricula, err := uc.curriculumRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to load curricula: %v", err)
		return nil, fmt.Errorf("%w: failed to load curricula: %v", ErrInternal, err)
	}

	resolved := domain.ResolveAllSessions(allBookings, curriculaValues(curricula))

	monthStart := month
	monthEnd := month.AddDate(0, 1, -1)
	visible := filterWindow(allBookings, monthStart, monthEnd, req.InstructorID)

	uc.logger.Info("GetTimeline: %d of %d bookings fall in month=%s", len(visible), len(allBookings), req.Month)

	return &Response{
		Month: req.Month,
		Days:  monthDays(monthStart, monthEnd),
		Hours: monthHours(),
		Cells: buildCells(visible, resolved),
	}, nil
}

// filterWindow keeps bookings inside the month, optionally narrowed to one
// instructor. Cancelled classes stay visible on the grid.
func filterWindow(bookings []*domain.Booking, start, end time.Time, instructorID *int64) []*domain.Booking {
	visible := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Date.Before(start) || b.Date.After(end) {
			continue
		}
		if instructorID != nil {
			if b.InstructorID == nil || *b.InstructorID != *instructorID {
				continue
			}
		}
		visible = append(visible, b)
	}
	return visible
}

func monthDays(start, end time.Time) []string {
	days := make([]string, 0, 31)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(domain.DateFormat))
	}
	return days
}

func curriculaValues(byPackage map[int64][]*domain.CurriculumEntry) map[int64][]domain.CurriculumEntry {
	values := make(map[int64][]domain.CurriculumEntry, len(byPackage))
	for packageID, entries := range byPackage {
		list := make([]domain.CurriculumEntry, len(entries))
		for i, e := range entries {
			list[i] = *e
		}
		values[packageID] = list
	}
	return values
}
