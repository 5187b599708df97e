package materials

import (
	"context"
	"errors"
	"fmt"

	materialRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/material"
	"github.com/bimbelceria/BC-AdminService/internal/integrations/authservice"
	"github.com/bimbelceria/BC-AdminService/internal/service/materials/models"
)

// Service manages the teaching material catalog
type Service struct {
	materialRepo MaterialRepository
	authClient   AuthClient
	logger       Logger
}

// NewService creates a materials service
func NewService(materialRepo MaterialRepository, authClient AuthClient, logger Logger) *Service {
	return &Service{
		materialRepo: materialRepo,
		authClient:   authClient,
		logger:       logger,
	}
}

// Create registers a new teaching material. A zero session count is allowed
// and is treated as one session wherever the curriculum is expanded.
func (s *Service) Create(ctx context.Context, req *models.CreateMaterialRequest) (*models.MaterialResponse, error) {
	s.logger.Info("Create: registering material name=%s code=%s", req.Name, req.Code)

	if req.Name == "" {
		s.logger.Warn("Create: empty material name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Code == "" {
		s.logger.Warn("Create: empty code for material name=%s", req.Name)
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if req.SessionCount < 0 {
		s.logger.Warn("Create: negative session count=%d for material name=%s", req.SessionCount, req.Name)
		return nil, fmt.Errorf("%w: session count cannot be negative", ErrInvalidInput)
	}

	created, err := s.materialRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error for name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered material id=%d", created.ID)
	return models.FromDomainMaterial(created), nil
}

// List fetches the material catalog
func (s *Service) List(ctx context.Context) (*models.MaterialListResponse, error) {
	s.logger.Info("List: fetching materials")

	materials, err := s.materialRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d materials", len(materials))
	return models.FromDomainMaterialList(materials), nil
}

// Delete removes a material and, through the schema, its curriculum rows.
// Only admins may delete.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	s.logger.Info("Delete: deleting material id=%d by user=%s", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.materialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, materialRepo.ErrMaterialNotFound) {
			s.logger.Warn("Delete: material id=%d not found", id)
			return ErrMaterialNotFound
		}
		s.logger.Error("Delete: repository error for material id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted material id=%d", id)
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
