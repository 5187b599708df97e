package bookings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	bookingRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/booking"
	studentRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/student"
	"github.com/bimbelceria/BC-AdminService/internal/integrations/authservice"
	"github.com/bimbelceria/BC-AdminService/internal/service/bookings/models"
)

// Service manages class bookings: scheduling, attendance and the dashboard
// counters derived from them
type Service struct {
	bookingRepo    BookingRepository
	studentRepo    StudentRepository
	instructorRepo InstructorRepository
	authClient     AuthClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewService creates a bookings service
func NewService(
	bookingRepo BookingRepository,
	studentRepo StudentRepository,
	instructorRepo InstructorRepository,
	authClient AuthClient,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		studentRepo:    studentRepo,
		instructorRepo: instructorRepo,
		authClient:     authClient,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Create schedules one class for one student
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: scheduling booking for student=%d on %s %s", req.StudentID, req.Date, req.Time)

	booking, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid request for student=%d: %v", req.StudentID, err)
		return nil, s.mapInputError(err)
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("Create: student id=%d not found", req.StudentID)
			return nil, ErrStudentNotFound
		}
		s.logger.Error("Create: failed to verify student id=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: Create - student lookup: %v", ErrInternal, err)
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("Create: repository error for student=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Re-read through the joined select so the response carries display data
	full, err := s.bookingRepo.GetByID(ctx, created.ID)
	if err != nil {
		s.logger.Error("Create: failed to re-read booking id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Create - re-read error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully scheduled booking id=%d", created.ID)
	return models.FromDomainBooking(full), nil
}

// CreateBulk schedules the same slot for several students, one booking per
// student, in a single insert
func (s *Service) CreateBulk(ctx context.Context, req *models.BulkCreateBookingRequest) (*models.BookingListResponse, error) {
	s.logger.Info("CreateBulk: scheduling %d bookings on %s %s", len(req.StudentIDs), req.Date, req.Time)

	if len(req.StudentIDs) == 0 {
		s.logger.Warn("CreateBulk: empty student list")
		return nil, fmt.Errorf("%w: at least one student is required", ErrInvalidInput)
	}

	bookings, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateBulk: invalid request: %v", err)
		return nil, s.mapInputError(err)
	}

	for _, studentID := range req.StudentIDs {
		if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
			if errors.Is(err, studentRepo.ErrStudentNotFound) {
				s.logger.Warn("CreateBulk: student id=%d not found", studentID)
				return nil, fmt.Errorf("%w: student %d", ErrStudentNotFound, studentID)
			}
			s.logger.Error("CreateBulk: failed to verify student id=%d: %v", studentID, err)
			return nil, fmt.Errorf("%w: CreateBulk - student lookup: %v", ErrInternal, err)
		}
	}

	if err := s.bookingRepo.CreateBatch(ctx, bookings); err != nil {
		s.logger.Error("CreateBulk: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBulk - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBulk: successfully scheduled %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID fetches one booking with its display data
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Update reschedules or reassigns one class
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Date != "" {
		date, err := models.ParseDate(req.Date)
		if err != nil {
			s.logger.Warn("Update: invalid date=%s for booking id=%d", req.Date, id)
			return nil, ErrInvalidBookingDate
		}
		booking.Date = date
	}
	if req.Time != "" {
		bookingTime, err := models.ParseTime(req.Time)
		if err != nil {
			s.logger.Warn("Update: invalid time=%s for booking id=%d", req.Time, id)
			return nil, ErrInvalidBookingTime
		}
		booking.Time = bookingTime
	}
	booking.InstructorID = req.InstructorID
	booking.LocationID = req.LocationID
	booking.Topic = req.Topic

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d disappeared during update", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d", id)
	return s.GetByID(ctx, id)
}

// UpdateStatus records attendance for one class. Any of the known statuses
// may be set, so a mistaken check-in can be reverted to scheduled.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: setting booking id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully set booking id=%d to status=%s", id, newStatus)
	return nil
}

// Delete removes a booking row. Only admins may delete.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%s", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// Attendance builds the check-in sheet for one date
func (s *Service) Attendance(ctx context.Context, date string) (*models.AttendanceResponse, error) {
	s.logger.Info("Attendance: building check-in sheet for date=%s", date)

	day, err := models.ParseDate(date)
	if err != nil {
		s.logger.Warn("Attendance: invalid date=%s", date)
		return nil, ErrInvalidBookingDate
	}

	list, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		StartDate: &day,
		EndDate:   &day,
	})
	if err != nil {
		s.logger.Error("Attendance: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: Attendance - repository error: %v", ErrInternal, err)
	}

	stats := models.AttendanceStats{Total: len(list)}
	for _, b := range list {
		switch {
		case b.IsDone():
			stats.Done++
		case b.IsCancelled():
			stats.Cancelled++
		default:
			stats.Scheduled++
		}
	}

	s.logger.Info("Attendance: %d bookings on date=%s (%d done, %d cancelled)",
		stats.Total, date, stats.Done, stats.Cancelled)
	return &models.AttendanceResponse{
		Date:     date,
		Stats:    stats,
		Bookings: models.FromDomainBookingList(list).Bookings,
	}, nil
}

// DashboardStats gathers the landing page counters. The three counts are
// independent reads and run concurrently.
func (s *Service) DashboardStats(ctx context.Context) (*models.DashboardStatsResponse, error) {
	s.logger.Info("DashboardStats: gathering counters")

	today := s.timeProvider.Now()

	var (
		wg             sync.WaitGroup
		activeStudents int
		bookingsToday  int
		instructors    []*domain.Instructor
		studentErr     error
		bookingErr     error
		instructorErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		activeStudents, studentErr = s.studentRepo.CountActive(ctx)
	}()
	go func() {
		defer wg.Done()
		bookingsToday, bookingErr = s.bookingRepo.CountByDate(ctx, today)
	}()
	go func() {
		defer wg.Done()
		instructors, instructorErr = s.instructorRepo.List(ctx)
	}()
	wg.Wait()

	if studentErr != nil {
		s.logger.Error("DashboardStats: student count failed: %v", studentErr)
		return nil, fmt.Errorf("%w: DashboardStats - student count: %v", ErrInternal, studentErr)
	}
	if bookingErr != nil {
		s.logger.Error("DashboardStats: booking count failed: %v", bookingErr)
		return nil, fmt.Errorf("%w: DashboardStats - booking count: %v", ErrInternal, bookingErr)
	}
	if instructorErr != nil {
		s.logger.Error("DashboardStats: instructor list failed: %v", instructorErr)
		return nil, fmt.Errorf("%w: DashboardStats - instructor list: %v", ErrInternal, instructorErr)
	}

	return &models.DashboardStatsResponse{
		ActiveStudents: activeStudents,
		BookingsToday:  bookingsToday,
		Instructors:    len(instructors),
	}, nil
}

func (s *Service) mapInputError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidDate):
		return ErrInvalidBookingDate
	case errors.Is(err, models.ErrInvalidTime):
		return ErrInvalidBookingTime
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}

func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	role, err := s.authClient.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, authservice.ErrProfileNotFound) {
			s.logger.Warn("checkAdminAccess: no profile for user=%s", userID)
			return ErrAccessDenied
		}
		s.logger.Warn("checkAdminAccess: role lookup degraded for user=%s: %v", userID, err)
		return ErrAccessDenied
	}

	if role != "admin" {
		s.logger.Warn("checkAdminAccess: user=%s has role=%s, admin required", userID, role)
		return ErrAccessDenied
	}
	return nil
}
