package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MarketingOfficeService handles business logic for marketing offices
type MarketingOfficeService struct {
	repo             repository.MarketingOfficeRepositoryInterface
	businessUnitRepo repository.BusinessUnitRepositoryInterface
	validator        *validator.Validate
}

// Ensure MarketingOfficeService implements MarketingOfficeServiceInterface
var _ MarketingOfficeServiceInterface = (*MarketingOfficeService)(nil)

// NewMarketingOfficeService creates a new marketing office service
func NewMarketingOfficeService(repo repository.MarketingOfficeRepositoryInterface, businessUnitRepo repository.BusinessUnitRepositoryInterface, validator *validator.Validate) *MarketingOfficeService {
	return &MarketingOfficeService{
		repo:             repo,
		businessUnitRepo: businessUnitRepo,
		validator:        validator,
	}
}

// CreateMarketingOfficeRequest represents the request to create a marketing office
type CreateMarketingOfficeRequest struct {
	MarketingOfficeCode string  `json:"marketingOfficeCode" validate:"required,len=4,alphanum"`
	Name                string  `json:"name" validate:"required,min=1,max=100"`
	City                string  `json:"city" validate:"required,max=100"`
	Country             string  `json:"country" validate:"required,len=2,alpha"`
	Phone               string  `json:"phone,omitempty" validate:"max=30"`
	BusinessUnitCode    *string `json:"businessUnitCode,omitempty" validate:"omitempty,len=4,alphanum"`
}

// UpdateMarketingOfficeRequest represents the request to update a marketing office.
// The code is immutable; supplying a different one is rejected.
type UpdateMarketingOfficeRequest struct {
	MarketingOfficeCode *string `json:"marketingOfficeCode,omitempty"`
	Name                *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	City                *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country             *string `json:"country,omitempty" validate:"omitempty,len=2,alpha"`
	Phone               *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	BusinessUnitCode    *string `json:"businessUnitCode,omitempty" validate:"omitempty,len=4,alphanum"`
}

// MarketingOfficeResponse represents the response for marketing office operations
type MarketingOfficeResponse struct {
	MarketingOfficeCode string    `json:"marketingOfficeCode"`
	Name                string    `json:"name"`
	City                string    `json:"city"`
	Country             string    `json:"country"`
	Phone               string    `json:"phone"`
	BusinessUnitCode    *string   `json:"businessUnitCode,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// MarketingOfficeListResponse represents a paginated list of marketing offices
type MarketingOfficeListResponse struct {
	MarketingOffices []MarketingOfficeResponse `json:"marketingOffices"`
	Total            int64                     `json:"total"`
	Page             int                       `json:"page"`
	PageSize         int                       `json:"pageSize"`
}

// resolveBusinessUnit validates a supplied business unit code against the store
func (s *MarketingOfficeService) resolveBusinessUnit(code *string) (*string, error) {
	if code == nil {
		return nil, nil
	}
	bu := strings.ToUpper(*code)
	exists, err := s.businessUnitRepo.CodeExists(bu)
	if err != nil {
		return nil, fmt.Errorf("failed to verify business unit: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrBusinessUnitNotFound
	}
	return &bu, nil
}

// Create creates a new marketing office
func (s *MarketingOfficeService) Create(req *CreateMarketingOfficeRequest) (*MarketingOfficeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	code := strings.ToUpper(req.MarketingOfficeCode)

	// Friendly pre-check; the primary-key constraint remains the real guard
	exists, err := s.repo.CodeExists(code)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing marketing office: %w", err)
	}
	if exists {
		return nil, apperrors.ErrMarketingOfficeExists
	}

	bu, err := s.resolveBusinessUnit(req.BusinessUnitCode)
	if err != nil {
		return nil, err
	}

	office := &models.MarketingOffice{
		Code:             code,
		Name:             req.Name,
		City:             req.City,
		Country:          strings.ToUpper(req.Country),
		Phone:            req.Phone,
		BusinessUnitCode: bu,
	}

	if err := s.repo.Create(office); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create marketing office: %w", err)
	}

	return s.toResponse(office), nil
}

// GetByCode retrieves a marketing office by its code
func (s *MarketingOfficeService) GetByCode(code string) (*MarketingOfficeResponse, error) {
	office, err := s.repo.GetByCode(strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMarketingOfficeNotFound
		}
		return nil, fmt.Errorf("failed to get marketing office: %w", err)
	}

	return s.toResponse(office), nil
}

// GetAll retrieves marketing offices with optional country filter and pagination
func (s *MarketingOfficeService) GetAll(country string, page, pageSize int) (*MarketingOfficeListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	offices, total, err := s.repo.GetAll(strings.ToUpper(country), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get marketing offices: %w", err)
	}

	responses := make([]MarketingOfficeResponse, len(offices))
	for i, office := range offices {
		responses[i] = *s.toResponse(&office)
	}

	return &MarketingOfficeListResponse{
		MarketingOffices: responses,
		Total:            total,
		Page:             page,
		PageSize:         pageSize,
	}, nil
}

// Update applies a partial update to a marketing office
func (s *MarketingOfficeService) Update(code string, req *UpdateMarketingOfficeRequest) (*MarketingOfficeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	code = strings.ToUpper(code)
	office, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMarketingOfficeNotFound
		}
		return nil, fmt.Errorf("failed to get marketing office: %w", err)
	}

	if req.MarketingOfficeCode != nil && !strings.EqualFold(*req.MarketingOfficeCode, code) {
		return nil, apperrors.ErrImmutableCode
	}

	if req.BusinessUnitCode != nil {
		bu, err := s.resolveBusinessUnit(req.BusinessUnitCode)
		if err != nil {
			return nil, err
		}
		office.BusinessUnitCode = bu
	}
	if req.Name != nil {
		office.Name = *req.Name
	}
	if req.City != nil {
		office.City = *req.City
	}
	if req.Country != nil {
		office.Country = strings.ToUpper(*req.Country)
	}
	if req.Phone != nil {
		office.Phone = *req.Phone
	}

	if err := s.repo.Update(office); err != nil {
		return nil, fmt.Errorf("failed to update marketing office: %w", err)
	}

	return s.toResponse(office), nil
}

// Delete deletes a marketing office by code
func (s *MarketingOfficeService) Delete(code string) error {
	code = strings.ToUpper(code)
	_, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMarketingOfficeNotFound
		}
		return fmt.Errorf("failed to get marketing office: %w", err)
	}

	if err := s.repo.Delete(code); err != nil {
		return fmt.Errorf("failed to delete marketing office: %w", err)
	}

	return nil
}

// toResponse converts a marketing office model to response
func (s *MarketingOfficeService) toResponse(office *models.MarketingOffice) *MarketingOfficeResponse {
	return &MarketingOfficeResponse{
		MarketingOfficeCode: office.Code,
		Name:                office.Name,
		City:                office.City,
		Country:             office.Country,
		Phone:               office.Phone,
		BusinessUnitCode:    office.BusinessUnitCode,
		CreatedAt:           office.CreatedAt,
		UpdatedAt:           office.UpdatedAt,
	}
}
