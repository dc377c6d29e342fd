package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
)

// houseService manages the house directory.
type houseService struct {
	BaseService
	houseRepo portsrepo.HouseRepositoryFacade
}

// NewHouseService creates a new HouseService.
func NewHouseService(houseRepo portsrepo.HouseRepositoryFacade) portssvc.HouseSvcFacade {
	return &houseService{
		houseRepo: houseRepo,
	}
}

// Ensure houseService implements the portssvc.HouseSvcFacade interface
var _ portssvc.HouseSvcFacade = (*houseService)(nil)

// GetHouseByNumber retrieves a specific house.
func (s *houseService) GetHouseByNumber(ctx context.Context, houseNumber string) (*domain.House, error) {
	return s.houseRepo.FindHouseByNumber(ctx, houseNumber)
}

// ListHouses retrieves houses matching the listing params.
func (s *houseService) ListHouses(ctx context.Context, params dto.ListHousesParams) ([]domain.House, error) {
	filter := portsrepo.HouseListFilter{
		OwnerName: strings.TrimSpace(params.Name),
	}
	if params.Division != "" {
		division := domain.Division(params.Division)
		if !division.IsValid() {
			return nil, fmt.Errorf("unknown division %q: %w", params.Division, apperrors.ErrValidation)
		}
		filter.Division = &division
	}

	return s.houseRepo.ListHouses(ctx, filter)
}

// CreateHouse onboards a new house.
func (s *houseService) CreateHouse(ctx context.Context, req dto.CreateHouseRequest, creatorUserID string) (*domain.House, error) {
	houseNumber := strings.TrimSpace(req.HouseNumber)
	if houseNumber == "" {
		return nil, fmt.Errorf("house number is required: %w", apperrors.ErrValidation)
	}
	if !req.Division.IsValid() {
		return nil, fmt.Errorf("unknown division %q: %w", req.Division, apperrors.ErrValidation)
	}

	// Empty phone is stored as NULL, not "".
	phone := req.Phone
	if phone != nil && strings.TrimSpace(*phone) == "" {
		phone = nil
	}

	now := time.Now().UTC()
	house := domain.House{
		HouseNumber: houseNumber,
		OwnerName:   strings.TrimSpace(req.OwnerName),
		Division:    req.Division,
		Phone:       phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.houseRepo.SaveHouse(ctx, house); err != nil {
		s.LogError(ctx, err, "Failed to save house", slog.String("house_number", houseNumber))
		return nil, err
	}

	s.LogInfo(ctx, "House created", slog.String("house_number", house.HouseNumber), slog.String("division", string(house.Division)))
	return &house, nil
}

// UpdateHouse corrects a house's owner, division or phone. Nil request fields
// keep their stored values.
func (s *houseService) UpdateHouse(ctx context.Context, houseNumber string, req dto.UpdateHouseRequest, updaterUserID string) (*domain.House, error) {
	house, err := s.houseRepo.FindHouseByNumber(ctx, houseNumber)
	if err != nil {
		return nil, err
	}

	if req.OwnerName != nil {
		ownerName := strings.TrimSpace(*req.OwnerName)
		if ownerName == "" {
			return nil, fmt.Errorf("owner name cannot be blank: %w", apperrors.ErrValidation)
		}
		house.OwnerName = ownerName
	}
	if req.Division != nil {
		if !req.Division.IsValid() {
			return nil, fmt.Errorf("unknown division %q: %w", *req.Division, apperrors.ErrValidation)
		}
		house.Division = *req.Division
	}
	if req.Phone != nil {
		phone := req.Phone
		if strings.TrimSpace(*phone) == "" {
			phone = nil
		}
		house.Phone = phone
	}

	house.LastUpdatedAt = time.Now().UTC()
	house.LastUpdatedBy = updaterUserID

	if err := s.houseRepo.UpdateHouse(ctx, *house); err != nil {
		s.LogError(ctx, err, "Failed to update house", slog.String("house_number", houseNumber))
		return nil, err
	}

	s.LogInfo(ctx, "House updated", slog.String("house_number", house.HouseNumber))
	return house, nil
}
