package list_bookings

import (
	"context"
	"fmt"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
)

// UseCase produces the labelled booking list. Session labels depend on each
// student's complete history, so the ledger is resolved in full before the
// requested filter is applied.
type UseCase struct {
	bookingRepo    BookingRepository
	curriculumRepo CurriculumRepository
	logger         Logger
}

// NewUseCase creates the booking list use case
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

// Execute builds the labelled list
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListBookings: range=%s..%s, student=%v, instructor=%v, status=%v",
		req.StartDate, req.EndDate, req.StudentID, req.InstructorID, req.Status)

	filter, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ListBookings: validation failed: %v", err)
		return nil, err
	}

	allBookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		uc.logger.Error("ListBookings: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	curricula, err := uc.curriculumRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("ListBookings: failed to load curricula: %v", err)
		return nil, fmt.Errorf("%w: failed to load curricula: %v", ErrInternal, err)
	}

	resolved := domain.ResolveAllSessions(allBookings, curriculaValues(curricula))

	entries := make([]BookingEntry, 0, len(allBookings))
	for _, b := range allBookings {
		if !matches(b, filter) {
			continue
		}
		entries = append(entries, buildEntry(b, resolved[b.ID]))
	}

	uc.logger.Info("ListBookings: %d of %d bookings matched", len(entries), len(allBookings))
	return &Response{Bookings: entries}, nil
}

func matches(b *domain.Booking, filter parsedFilter) bool {
	if filter.startDate != nil && b.Date.Before(*filter.startDate) {
		return false
	}
	if filter.endDate != nil && b.Date.After(*filter.endDate) {
		return false
	}
	if filter.studentID != nil && b.StudentID != *filter.studentID {
		return false
	}
	if filter.instructorID != nil {
		if b.InstructorID == nil || *b.InstructorID != *filter.instructorID {
			return false
		}
	}
	if filter.status != nil && b.Status != *filter.status {
		return false
	}
	return true
}

func buildEntry(b *domain.Booking, session domain.ResolvedSession) BookingEntry {
	return BookingEntry{
		ID:           b.ID,
		Date:         b.Date.Format(domain.DateFormat),
		Time:         b.Time.String(),
		Status:       string(b.Status),
		Topic:        b.Topic,
		StudentID:    b.StudentID,
		StudentName:  b.StudentName,
		PackageCode:  b.PackageCode,
		Instructor:   b.InstructorNickname,
		Location:     b.LocationName,
		SessionLabel: session.SessionLabel(),
		MaterialName: session.MaterialName,
		MaterialCode: session.MaterialCode,
	}
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
