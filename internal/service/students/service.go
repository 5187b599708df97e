package students

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	bookingRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/booking"
	studentRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/student"
	"github.com/bimbelceria/BC-AdminService/internal/integrations/authservice"
	"github.com/bimbelceria/BC-AdminService/internal/service/students/models"
)

// Service manages the student roster
type Service struct {
	studentRepo StudentRepository
	bookingRepo BookingRepository
	authClient  AuthClient
	logger      Logger
}

// NewService creates a students service
func NewService(
	studentRepo StudentRepository,
	bookingRepo BookingRepository,
	authClient AuthClient,
	logger Logger,
) *Service {
	return &Service{
		studentRepo: studentRepo,
		bookingRepo: bookingRepo,
		authClient:  authClient,
		logger:      logger,
	}
}

// Create enrolls a new student
func (s *Service) Create(ctx context.Context, req *models.CreateStudentRequest) (*models.StudentResponse, error) {
	s.logger.Info("Create: enrolling student name=%s", req.Name)

	if req.Name == "" {
		s.logger.Warn("Create: empty student name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	student, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid request for name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		s.logger.Error("Create: repository error for name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully enrolled student id=%d", created.ID)
	return models.FromDomainStudent(created, bookingRepo.StudentActivity{}), nil
}

// GetByID fetches one student with their usage figures
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StudentResponse, error) {
	s.logger.Info("GetByID: fetching student id=%d", id)

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("GetByID: student id=%d not found", id)
			return nil, ErrStudentNotFound
		}
		s.logger.Error("GetByID: repository error for student id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	activity, err := s.bookingRepo.ActivityForStudent(ctx, student.ID)
	if err != nil {
		s.logger.Error("GetByID: failed to load booking activity for student id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - booking activity: %v", ErrInternal, err)
	}

	return models.FromDomainStudent(student, activity), nil
}

// List fetches the roster with usage figures derived from bookings
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.StudentListResponse, error) {
	s.logger.Info("List: fetching students, onlyActive=%v", onlyActive)

	students, err := s.studentRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	activity, err := s.bookingRepo.ActivityByStudent(ctx)
	if err != nil {
		s.logger.Error("List: failed to load booking activity: %v", err)
		return nil, fmt.Errorf("%w: List - booking activity: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d students", len(students))
	return models.FromDomainStudentList(students, activity), nil
}

// Update edits an enrolled student
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateStudentRequest) (*models.StudentResponse, error) {
	s.logger.Info("Update: updating student id=%d", id)

	if req.Name == "" {
		s.logger.Warn("Update: empty student name for id=%d", id)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("Update: student id=%d not found", id)
			return nil, ErrStudentNotFound
		}
		s.logger.Error("Update: repository error for student id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	graduation, ok := domain.ParseGraduationStatus(req.GraduationStatus)
	if !ok {
		s.logger.Warn("Update: invalid graduation status=%s for student id=%d", req.GraduationStatus, id)
		return nil, fmt.Errorf("%w: invalid graduation status", ErrInvalidInput)
	}

	joinDate := student.JoinDate
	if req.JoinDate != "" {
		joinDate, err = parseDate(req.JoinDate)
		if err != nil {
			s.logger.Warn("Update: invalid join date=%s for student id=%d", req.JoinDate, id)
			return nil, fmt.Errorf("%w: invalid join date", ErrInvalidInput)
		}
	}

	student.Name = req.Name
	student.Phone = req.Phone
	student.Email = req.Email
	student.PackageID = req.PackageID
	student.JoinDate = joinDate
	student.ManualUsage = req.ManualUsage
	student.GraduationStatus = graduation

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("Update: student id=%d disappeared during update", id)
			return nil, ErrStudentNotFound
		}
		s.logger.Error("Update: repository error for student id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated student id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete removes a student and, through the schema, their booking history.
// Only admins may delete.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	s.logger.Info("Delete: deleting student id=%d by user=%s", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("Delete: student id=%d not found", id)
			return ErrStudentNotFound
		}
		s.logger.Error("Delete: repository error for student id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted student id=%d", id)
	return nil
}

// checkAdminAccess verifies the user holds the admin role. Degraded role
// lookups fall back to staff and are denied.
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

func parseDate(s string) (time.Time, error) {
	return models.ParseDate(s)
}
