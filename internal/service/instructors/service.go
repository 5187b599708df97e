package instructors

import (
	"context"
	"errors"
	"fmt"

	instructorRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/instructor"
	"github.com/bimbelceria/BC-AdminService/internal/integrations/authservice"
	"github.com/bimbelceria/BC-AdminService/internal/service/instructors/models"
)

// Service manages the instructor roster
type Service struct {
	instructorRepo InstructorRepository
	authClient     AuthClient
	logger         Logger
}

// NewService creates an instructors service
func NewService(instructorRepo InstructorRepository, authClient AuthClient, logger Logger) *Service {
	return &Service{
		instructorRepo: instructorRepo,
		authClient:     authClient,
		logger:         logger,
	}
}

// Create registers a new instructor
func (s *Service) Create(ctx context.Context, req *models.CreateInstructorRequest) (*models.InstructorResponse, error) {
	s.logger.Info("Create: registering instructor name=%s", req.Name)

	if req.Name == "" {
		s.logger.Warn("Create: empty instructor name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Nickname == "" {
		s.logger.Warn("Create: empty nickname for instructor name=%s", req.Name)
		return nil, fmt.Errorf("%w: nickname is required", ErrInvalidInput)
	}

	created, err := s.instructorRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error for name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered instructor id=%d", created.ID)
	return models.FromDomainInstructor(created), nil
}

// List fetches all instructors
func (s *Service) List(ctx context.Context) (*models.InstructorListResponse, error) {
	s.logger.Info("List: fetching instructors")

	instructors, err := s.instructorRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d instructors", len(instructors))
	return models.FromDomainInstructorList(instructors), nil
}

// Delete removes an instructor. Their bookings keep the slot but drop the
// assignment. Only admins may delete.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	s.logger.Info("Delete: deleting instructor id=%d by user=%s", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.instructorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			s.logger.Warn("Delete: instructor id=%d not found", id)
			return ErrInstructorNotFound
		}
		s.logger.Error("Delete: repository error for instructor id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted instructor id=%d", id)
	return nil
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
