package locations

import (
	"context"
	"errors"
	"fmt"

	locationRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/location"
	"github.com/bimbelceria/BC-AdminService/internal/integrations/authservice"
	"github.com/bimbelceria/BC-AdminService/internal/service/locations/models"
)

// Service manages class locations
type Service struct {
	locationRepo LocationRepository
	authClient   AuthClient
	logger       Logger
}

// NewService creates a locations service
func NewService(locationRepo LocationRepository, authClient AuthClient, logger Logger) *Service {
	return &Service{
		locationRepo: locationRepo,
		authClient:   authClient,
		logger:       logger,
	}
}

// Create registers a new class location
func (s *Service) Create(ctx context.Context, req *models.CreateLocationRequest) (*models.LocationResponse, error) {
	s.logger.Info("Create: registering location name=%s", req.Name)

	if req.Name == "" {
		s.logger.Warn("Create: empty location name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Duration <= 0 {
		s.logger.Warn("Create: non-positive duration=%d for location name=%s", req.Duration, req.Name)
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	created, err := s.locationRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error for name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered location id=%d", created.ID)
	return models.FromDomainLocation(created), nil
}

// List fetches all class locations
func (s *Service) List(ctx context.Context) (*models.LocationListResponse, error) {
	s.logger.Info("List: fetching locations")

	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d locations", len(locations))
	return models.FromDomainLocationList(locations), nil
}

// Delete removes a location. Bookings held there keep the slot but drop the
// venue. Only admins may delete.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	s.logger.Info("Delete: deleting location id=%d by user=%s", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("Delete: location id=%d not found", id)
			return ErrLocationNotFound
		}
		s.logger.Error("Delete: repository error for location id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted location id=%d", id)
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
