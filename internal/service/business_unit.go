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

// BusinessUnitService handles business logic for business units
type BusinessUnitService struct {
	repo      repository.BusinessUnitRepositoryInterface
	validator *validator.Validate
}

// Ensure BusinessUnitService implements BusinessUnitServiceInterface
var _ BusinessUnitServiceInterface = (*BusinessUnitService)(nil)

// NewBusinessUnitService creates a new business unit service
func NewBusinessUnitService(repo repository.BusinessUnitRepositoryInterface, validator *validator.Validate) *BusinessUnitService {
	return &BusinessUnitService{
		repo:      repo,
		validator: validator,
	}
}

// CreateBusinessUnitRequest represents the request to create a business unit
type CreateBusinessUnitRequest struct {
	BusinessUnitCode string  `json:"businessUnitCode" validate:"required,len=4,alphanum"`
	Name             string  `json:"name" validate:"required,min=1,max=100"`
	Description      string  `json:"description,omitempty" validate:"max=500"`
	ParentCode       *string `json:"parentCode,omitempty" validate:"omitempty,len=4,alphanum"`
	CostCenter       string  `json:"costCenter,omitempty" validate:"max=20"`
}

// UpdateBusinessUnitRequest represents the request to update a business unit.
// The code is immutable; supplying a different one is rejected.
type UpdateBusinessUnitRequest struct {
	BusinessUnitCode *string `json:"businessUnitCode,omitempty"`
	Name             *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description      *string `json:"description,omitempty" validate:"omitempty,max=500"`
	ParentCode       *string `json:"parentCode,omitempty" validate:"omitempty,len=4,alphanum"`
	CostCenter       *string `json:"costCenter,omitempty" validate:"omitempty,max=20"`
}

// BusinessUnitResponse represents the response for business unit operations
type BusinessUnitResponse struct {
	BusinessUnitCode string    `json:"businessUnitCode"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ParentCode       *string   `json:"parentCode,omitempty"`
	CostCenter       string    `json:"costCenter"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// BusinessUnitListResponse represents a paginated list of business units
type BusinessUnitListResponse struct {
	BusinessUnits []BusinessUnitResponse `json:"businessUnits"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"pageSize"`
}

// resolveParent validates a supplied parent code against the store
func (s *BusinessUnitService) resolveParent(code string, parentCode *string) (*string, error) {
	if parentCode == nil {
		return nil, nil
	}
	parent := strings.ToUpper(*parentCode)
	if parent == code {
		return nil, apperrors.ErrParentBusinessUnitCycle
	}
	exists, err := s.repo.CodeExists(parent)
	if err != nil {
		return nil, fmt.Errorf("failed to verify parent business unit: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrBusinessUnitNotFound
	}
	return &parent, nil
}

// Create creates a new business unit
func (s *BusinessUnitService) Create(req *CreateBusinessUnitRequest) (*BusinessUnitResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	code := strings.ToUpper(req.BusinessUnitCode)

	// Friendly pre-check; the primary-key constraint remains the real guard
	exists, err := s.repo.CodeExists(code)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing business unit: %w", err)
	}
	if exists {
		return nil, apperrors.ErrBusinessUnitExists
	}

	parent, err := s.resolveParent(code, req.ParentCode)
	if err != nil {
		return nil, err
	}

	unit := &models.BusinessUnit{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
		ParentCode:  parent,
		CostCenter:  req.CostCenter,
	}

	if err := s.repo.Create(unit); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create business unit: %w", err)
	}

	return s.toResponse(unit), nil
}

// GetByCode retrieves a business unit by its code
func (s *BusinessUnitService) GetByCode(code string) (*BusinessUnitResponse, error) {
	unit, err := s.repo.GetByCode(strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessUnitNotFound
		}
		return nil, fmt.Errorf("failed to get business unit: %w", err)
	}

	return s.toResponse(unit), nil
}

// GetAll retrieves business units with pagination
func (s *BusinessUnitService) GetAll(page, pageSize int) (*BusinessUnitListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	units, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get business units: %w", err)
	}

	responses := make([]BusinessUnitResponse, len(units))
	for i, unit := range units {
		responses[i] = *s.toResponse(&unit)
	}

	return &BusinessUnitListResponse{
		BusinessUnits: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetChildren retrieves the direct children of a business unit
func (s *BusinessUnitService) GetChildren(code string) ([]BusinessUnitResponse, error) {
	code = strings.ToUpper(code)
	if _, err := s.repo.GetByCode(code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessUnitNotFound
		}
		return nil, fmt.Errorf("failed to get business unit: %w", err)
	}

	children, err := s.repo.GetChildren(code)
	if err != nil {
		return nil, fmt.Errorf("failed to get business unit children: %w", err)
	}

	responses := make([]BusinessUnitResponse, len(children))
	for i, child := range children {
		responses[i] = *s.toResponse(&child)
	}
	return responses, nil
}

// Update applies a partial update to a business unit
func (s *BusinessUnitService) Update(code string, req *UpdateBusinessUnitRequest) (*BusinessUnitResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	code = strings.ToUpper(code)
	unit, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessUnitNotFound
		}
		return nil, fmt.Errorf("failed to get business unit: %w", err)
	}

	if req.BusinessUnitCode != nil && !strings.EqualFold(*req.BusinessUnitCode, code) {
		return nil, apperrors.ErrImmutableCode
	}

	if req.ParentCode != nil {
		parent, err := s.resolveParent(code, req.ParentCode)
		if err != nil {
			return nil, err
		}
		unit.ParentCode = parent
	}
	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Description != nil {
		unit.Description = *req.Description
	}
	if req.CostCenter != nil {
		unit.CostCenter = *req.CostCenter
	}

	if err := s.repo.Update(unit); err != nil {
		return nil, fmt.Errorf("failed to update business unit: %w", err)
	}

	return s.toResponse(unit), nil
}

// Delete deletes a business unit by code
func (s *BusinessUnitService) Delete(code string) error {
	code = strings.ToUpper(code)
	_, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBusinessUnitNotFound
		}
		return fmt.Errorf("failed to get business unit: %w", err)
	}

	if err := s.repo.Delete(code); err != nil {
		return fmt.Errorf("failed to delete business unit: %w", err)
	}

	return nil
}

// toResponse converts a business unit model to response
func (s *BusinessUnitService) toResponse(unit *models.BusinessUnit) *BusinessUnitResponse {
	return &BusinessUnitResponse{
		BusinessUnitCode: unit.Code,
		Name:             unit.Name,
		Description:      unit.Description,
		ParentCode:       unit.ParentCode,
		CostCenter:       unit.CostCenter,
		CreatedAt:        unit.CreatedAt,
		UpdatedAt:        unit.UpdatedAt,
	}
}
