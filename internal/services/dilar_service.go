package services

import (
	"errors"
	"fmt"
	"log/slog"

	"backoffice/internal/dto"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrDilarNotFound   = errors.New("dilar not found")
	ErrContactNoExists = errors.New("contact number already registered")
)

// dilarService implements DilarServiceInterface
type dilarService struct {
	dilarRepo repositories.DilarRepositoryInterface
	logger    *slog.Logger
}

// NewDilarService creates a dilar service
func NewDilarService(dilarRepo repositories.DilarRepositoryInterface, logger *slog.Logger) DilarServiceInterface {
	return &dilarService{
		dilarRepo: dilarRepo,
		logger:    logger,
	}
}

// CreateDilar registers a new dilar. Contact numbers are unique across dilars.
func (s *dilarService) CreateDilar(req *dto.CreateDilarRequest) (*models.Dilar, error) {
	exists, err := s.dilarRepo.ExistsByContactNo(req.ContactNo, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check contact number: %w", err)
	}
	if exists {
		return nil, ErrContactNoExists
	}

	dilar := &models.Dilar{
		OwnerName:     req.OwnerName,
		ContactNo:     req.ContactNo,
		TradeName:     req.TradeName,
		TradeLocation: req.TradeLocation,
		NID:           req.NID,
		LogoURL:       req.Logo,
		IsActive:      true,
	}

	if err := s.dilarRepo.Create(dilar); err != nil {
		return nil, fmt.Errorf("failed to create dilar: %w", err)
	}

	s.logger.Info("dilar registered", "dilarId", dilar.ID, "ownerName", dilar.OwnerName)
	return dilar, nil
}

// GetDilar retrieves a single dilar
func (s *dilarService) GetDilar(dilarID uuid.UUID) (*models.Dilar, error) {
	dilar, err := s.dilarRepo.GetByID(dilarID)
	if err != nil {
		if errors.Is(err, repositories.ErrDilarNotFound) {
			return nil, ErrDilarNotFound
		}
		return nil, fmt.Errorf("failed to get dilar: %w", err)
	}
	return dilar, nil
}

// ListDilars returns a filtered page of dilars
func (s *dilarService) ListDilars(filters models.DilarFilters, page, limit int) ([]models.Dilar, models.Pagination, error) {
	offset, limit := normalizePage(page, limit)

	dilars, total, err := s.dilarRepo.GetAllWithFilters(filters, offset, limit)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list dilars: %w", err)
	}

	return dilars, models.NewPagination(page, limit, total), nil
}

// UpdateDilar applies a partial update
func (s *dilarService) UpdateDilar(dilarID uuid.UUID, req *dto.UpdateDilarRequest) (*models.Dilar, error) {
	dilar, err := s.GetDilar(dilarID)
	if err != nil {
		return nil, err
	}

	if req.ContactNo != nil && *req.ContactNo != dilar.ContactNo {
		exists, err := s.dilarRepo.ExistsByContactNo(*req.ContactNo, &dilarID)
		if err != nil {
			return nil, fmt.Errorf("failed to check contact number: %w", err)
		}
		if exists {
			return nil, ErrContactNoExists
		}
		dilar.ContactNo = *req.ContactNo
	}

	if req.OwnerName != nil {
		dilar.OwnerName = *req.OwnerName
	}
	if req.TradeName != nil {
		dilar.TradeName = *req.TradeName
	}
	if req.TradeLocation != nil {
		dilar.TradeLocation = *req.TradeLocation
	}
	if req.NID != nil {
		dilar.NID = *req.NID
	}
	if req.Logo != nil {
		dilar.LogoURL = *req.Logo
	}
	if req.IsActive != nil {
		dilar.IsActive = *req.IsActive
	}

	if err := s.dilarRepo.Update(dilar); err != nil {
		return nil, fmt.Errorf("failed to update dilar: %w", err)
	}

	return dilar, nil
}

// DeactivateDilar disables a dilar while keeping its exchange history intact
func (s *dilarService) DeactivateDilar(dilarID uuid.UUID) error {
	if err := s.dilarRepo.Deactivate(dilarID); err != nil {
		if errors.Is(err, repositories.ErrDilarNotFound) {
			return ErrDilarNotFound
		}
		return fmt.Errorf("failed to deactivate dilar: %w", err)
	}

	s.logger.Info("dilar deactivated", "dilarId", dilarID)
	return nil
}
