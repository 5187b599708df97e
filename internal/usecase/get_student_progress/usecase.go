package get_student_progress

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	studentRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/student"
)

// UseCase assembles the progress sheet of one student: resolved session
// history plus usage figures. Everything is derived from the booking ledger
// at read time.
type UseCase struct {
	studentRepo    StudentRepository
	bookingRepo    BookingRepository
	curriculumRepo CurriculumRepository
	logger         Logger
}

// NewUseCase creates the student progress use case
func NewUseCase(
	studentRepo StudentRepository,
	bookingRepo BookingRepository,
	curriculumRepo CurriculumRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		studentRepo:    studentRepo,
		bookingRepo:    bookingRepo,
		curriculumRepo: curriculumRepo,
		logger:         logger,
	}
}

// Execute builds the progress sheet
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStudentProgress: student=%d", req.StudentID)

	if req.StudentID <= 0 {
		uc.logger.Warn("GetStudentProgress: non-positive student id=%d", req.StudentID)
		return nil, fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	student, err := uc.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			uc.logger.Warn("GetStudentProgress: student id=%d not found", req.StudentID)
			return nil, ErrStudentNotFound
		}
		uc.logger.Error("GetStudentProgress: failed to load student id=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: failed to load student: %v", ErrInternal, err)
	}

	history, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{StudentID: &req.StudentID})
	if err != nil {
		uc.logger.Error("GetStudentProgress: failed to load bookings for student id=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	var slots []domain.SessionSlot
	if student.PackageID != nil {
		entries, err := uc.curriculumRepo.ListByPackage(ctx, *student.PackageID)
		if err != nil {
			uc.logger.Error("GetStudentProgress: failed to load curriculum for package id=%d: %v",
				*student.PackageID, err)
			return nil, fmt.Errorf("%w: failed to load curriculum: %v", ErrInternal, err)
		}
		values := make([]domain.CurriculumEntry, len(entries))
		for i, e := range entries {
			values[i] = *e
		}
		slots = domain.ExpandCurriculum(values)
	}

	resolved := domain.ResolveSessions(history, slots)

	totalSessions := 0
	if student.PackageTotalSessions != nil {
		totalSessions = *student.PackageTotalSessions
	}
	usage := domain.CalculateUsage(totalSessions, len(history), student.ManualUsage)

	uc.logger.Info("GetStudentProgress: student=%d has %d sessions, remaining=%s",
		req.StudentID, len(history), usage.RemainingLabel())

	return &Response{
		Student:  buildStudentSummary(student),
		Usage:    buildUsageSummary(usage),
		Sessions: buildSessionEntries(history, resolved),
	}, nil
}

func buildStudentSummary(s *domain.Student) StudentSummary {
	return StudentSummary{
		ID:               s.ID,
		Name:             s.Name,
		Phone:            s.Phone,
		WhatsAppPhone:    s.WhatsAppPhone(),
		PackageName:      s.PackageName,
		PackageCode:      s.PackageCode,
		JoinDate:         s.JoinDate.Format(domain.DateFormat),
		GraduationStatus: string(s.GraduationStatus),
	}
}

func buildUsageSummary(u domain.SessionUsage) UsageSummary {
	return UsageSummary{
		TotalSessions:  u.TotalSessions,
		BookingCount:   u.BookingCount,
		ManualUsage:    u.ManualUsage,
		UsedSessions:   u.UsedSessions,
		Remaining:      u.Remaining,
		RemainingLabel: u.RemainingLabel(),
		IsOver:         u.IsOver(),
	}
}

// buildSessionEntries merges the resolved labels back onto the bookings, in
// attendance order
func buildSessionEntries(history []*domain.Booking, resolved []domain.ResolvedSession) []SessionEntry {
	byID := make(map[int64]*domain.Booking, len(history))
	for _, b := range history {
		byID[b.ID] = b
	}

	entries := make([]SessionEntry, 0, len(resolved))
	for _, session := range resolved {
		b := byID[session.BookingID]
		if b == nil {
			continue
		}
		entries = append(entries, SessionEntry{
			BookingID:    b.ID,
			Number:       session.Index + 1,
			Date:         b.Date.Format(domain.DateFormat),
			Time:         b.Time.String(),
			Label:        session.DisplayLabel(),
			MaterialCode: session.MaterialCode,
			Status:       string(b.Status),
			Topic:        b.Topic,
			Instructor:   b.InstructorNickname,
			Location:     b.LocationName,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Number < entries[j].Number
	})
	return entries
}
