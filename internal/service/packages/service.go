package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/bimbelceria/BC-AdminService/internal/domain"
	curriculumRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/curriculum"
	materialRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/material"
	packageRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/packages"
	"github.com/bimbelceria/BC-AdminService/internal/integrations/authservice"
	"github.com/bimbelceria/BC-AdminService/internal/service/packages/models"
)

// Service manages tutoring packages and their curricula. Every curriculum
// mutation recomputes the package session total inside the same transaction,
// so the stored total never drifts from the sum of the material counts.
type Service struct {
	packageRepo    PackageRepository
	curriculumRepo CurriculumRepository
	materialRepo   MaterialRepository
	txManager      TransactionManager
	authClient     AuthClient
	logger         Logger
}

// NewService creates a packages service
func NewService(
	packageRepo PackageRepository,
	curriculumRepo CurriculumRepository,
	materialRepo MaterialRepository,
	txManager TransactionManager,
	authClient AuthClient,
	logger Logger,
) *Service {
	return &Service{
		packageRepo:    packageRepo,
		curriculumRepo: curriculumRepo,
		materialRepo:   materialRepo,
		txManager:      txManager,
		authClient:     authClient,
		logger:         logger,
	}
}

// Create registers a new package with an empty curriculum
func (s *Service) Create(ctx context.Context, req *models.CreatePackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("Create: registering package name=%s code=%s", req.Name, req.Code)

	if req.Name == "" {
		s.logger.Warn("Create: empty package name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Code == "" {
		s.logger.Warn("Create: empty code for package name=%s", req.Name)
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	created, err := s.packageRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error for name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered package id=%d", created.ID)
	return models.FromDomainPackage(created), nil
}

// List fetches the package catalog
func (s *Service) List(ctx context.Context) (*models.PackageListResponse, error) {
	s.logger.Info("List: fetching packages")

	list, err := s.packageRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d packages", len(list))
	return models.FromDomainPackageList(list), nil
}

// GetCurriculum fetches one package with its teaching order
func (s *Service) GetCurriculum(ctx context.Context, packageID int64) (*models.CurriculumResponse, error) {
	s.logger.Info("GetCurriculum: fetching curriculum for package id=%d", packageID)

	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("GetCurriculum: package id=%d not found", packageID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetCurriculum: repository error for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: GetCurriculum - repository error: %v", ErrInternal, err)
	}

	entries, err := s.curriculumRepo.ListByPackage(ctx, packageID)
	if err != nil {
		s.logger.Error("GetCurriculum: failed to load curriculum for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: GetCurriculum - curriculum error: %v", ErrInternal, err)
	}

	return models.FromDomainCurriculum(pkg, entries), nil
}

// AddCurriculumEntry appends a material to the package curriculum and
// recomputes the session total in the same transaction
func (s *Service) AddCurriculumEntry(ctx context.Context, packageID int64, req *models.AddCurriculumEntryRequest) (*models.CurriculumResponse, error) {
	s.logger.Info("AddCurriculumEntry: adding material id=%d to package id=%d", req.MaterialID, packageID)

	if _, err := s.packageRepo.GetByID(ctx, packageID); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("AddCurriculumEntry: package id=%d not found", packageID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("AddCurriculumEntry: repository error for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: AddCurriculumEntry - repository error: %v", ErrInternal, err)
	}

	mat, err := s.materialRepo.GetByID(ctx, req.MaterialID)
	if err != nil {
		if errors.Is(err, materialRepo.ErrMaterialNotFound) {
			s.logger.Warn("AddCurriculumEntry: material id=%d not found", req.MaterialID)
			return nil, ErrMaterialNotFound
		}
		s.logger.Error("AddCurriculumEntry: failed to load material id=%d: %v", req.MaterialID, err)
		return nil, fmt.Errorf("%w: AddCurriculumEntry - material error: %v", ErrInternal, err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		sortOrder, err := s.curriculumRepo.NextSortOrder(ctx, packageID)
		if err != nil {
			return fmt.Errorf("next sort order: %w", err)
		}

		entry := &domain.CurriculumEntry{
			PackageID: packageID,
			SortOrder: sortOrder,
			Material:  *mat,
		}
		if _, err := s.curriculumRepo.Create(ctx, entry); err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		return s.recomputeTotalSessions(ctx, packageID)
	})
	if err != nil {
		s.logger.Error("AddCurriculumEntry: transaction failed for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: AddCurriculumEntry - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("AddCurriculumEntry: successfully added material id=%d to package id=%d", req.MaterialID, packageID)
	return s.GetCurriculum(ctx, packageID)
}

// RemoveCurriculumEntry removes one entry from the package curriculum and
// recomputes the session total in the same transaction
func (s *Service) RemoveCurriculumEntry(ctx context.Context, packageID, entryID int64) (*models.CurriculumResponse, error) {
	s.logger.Info("RemoveCurriculumEntry: removing entry id=%d from package id=%d", entryID, packageID)

	entry, err := s.curriculumRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, curriculumRepo.ErrEntryNotFound) {
			s.logger.Warn("RemoveCurriculumEntry: entry id=%d not found", entryID)
			return nil, ErrEntryNotFound
		}
		s.logger.Error("RemoveCurriculumEntry: repository error for entry id=%d: %v", entryID, err)
		return nil, fmt.Errorf("%w: RemoveCurriculumEntry - repository error: %v", ErrInternal, err)
	}

	if entry.PackageID != packageID {
		s.logger.Warn("RemoveCurriculumEntry: entry id=%d belongs to package id=%d, not id=%d",
			entryID, entry.PackageID, packageID)
		return nil, ErrEntryMismatch
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.curriculumRepo.Delete(ctx, entryID); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
		return s.recomputeTotalSessions(ctx, packageID)
	})
	if err != nil {
		s.logger.Error("RemoveCurriculumEntry: transaction failed for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: RemoveCurriculumEntry - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveCurriculumEntry: successfully removed entry id=%d from package id=%d", entryID, packageID)
	return s.GetCurriculum(ctx, packageID)
}

// Delete removes a package. Its curriculum rows cascade; students on the
// package keep their row with the reference cleared. Only admins may delete.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	s.logger.Info("Delete: deleting package id=%d by user=%s", id, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("Delete: package id=%d not found", id)
			return ErrPackageNotFound
		}
		s.logger.Error("Delete: repository error for package id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted package id=%d", id)
	return nil
}

// recomputeTotalSessions rewrites the stored total as the raw sum of the
// curriculum material counts. Runs inside the caller's transaction.
func (s *Service) recomputeTotalSessions(ctx context.Context, packageID int64) error {
	entries, err := s.curriculumRepo.ListByPackage(ctx, packageID)
	if err != nil {
		return fmt.Errorf("list curriculum: %w", err)
	}

	values := make([]domain.CurriculumEntry, len(entries))
	for i, e := range entries {
		values[i] = *e
	}

	total := domain.CurriculumLength(values)
	if err := s.packageRepo.UpdateTotalSessions(ctx, packageID, total); err != nil {
		return fmt.Errorf("update total sessions: %w", err)
	}
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
