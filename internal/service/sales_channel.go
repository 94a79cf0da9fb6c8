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

// SalesChannelService handles business logic for sales channels
type SalesChannelService struct {
	repo      repository.SalesChannelRepositoryInterface
	validator *validator.Validate
}

// Ensure SalesChannelService implements SalesChannelServiceInterface
var _ SalesChannelServiceInterface = (*SalesChannelService)(nil)

// NewSalesChannelService creates a new sales channel service
func NewSalesChannelService(repo repository.SalesChannelRepositoryInterface, validator *validator.Validate) *SalesChannelService {
	return &SalesChannelService{
		repo:      repo,
		validator: validator,
	}
}

// CreateSalesChannelRequest represents the request to create a sales channel
type CreateSalesChannelRequest struct {
	SalesChannelCode string `json:"salesChannelCode" validate:"required,len=4,alphanum"`
	Name             string `json:"name" validate:"required,min=1,max=100"`
	Description      string `json:"description,omitempty" validate:"max=500"`
	IsActive         *bool  `json:"isActive,omitempty"`
}

// UpdateSalesChannelRequest represents the request to update a sales channel.
// The code is immutable; supplying a different one is rejected.
type UpdateSalesChannelRequest struct {
	SalesChannelCode *string `json:"salesChannelCode,omitempty"`
	Name             *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description      *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive         *bool   `json:"isActive,omitempty"`
}

// SalesChannelResponse represents the response for sales channel operations
type SalesChannelResponse struct {
	SalesChannelCode string    `json:"salesChannelCode"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SalesChannelListResponse represents a paginated list of sales channels
type SalesChannelListResponse struct {
	SalesChannels []SalesChannelResponse `json:"salesChannels"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"pageSize"`
}

// Create creates a new sales channel
func (s *SalesChannelService) Create(req *CreateSalesChannelRequest) (*SalesChannelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	code := strings.ToUpper(req.SalesChannelCode)

	// Friendly pre-check; the primary-key constraint remains the real guard
	exists, err := s.repo.CodeExists(code)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing sales channel: %w", err)
	}
	if exists {
		return nil, apperrors.ErrSalesChannelExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	channel := &models.SalesChannel{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
	}

	if err := s.repo.Create(channel); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create sales channel: %w", err)
	}

	return s.toResponse(channel), nil
}

// GetByCode retrieves a sales channel by its code
func (s *SalesChannelService) GetByCode(code string) (*SalesChannelResponse, error) {
	channel, err := s.repo.GetByCode(strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSalesChannelNotFound
		}
		return nil, fmt.Errorf("failed to get sales channel: %w", err)
	}

	return s.toResponse(channel), nil
}

// GetAll retrieves sales channels with pagination
func (s *SalesChannelService) GetAll(page, pageSize int) (*SalesChannelListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	channels, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales channels: %w", err)
	}

	responses := make([]SalesChannelResponse, len(channels))
	for i, channel := range channels {
		responses[i] = *s.toResponse(&channel)
	}

	return &SalesChannelListResponse{
		SalesChannels: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update applies a partial update to a sales channel
func (s *SalesChannelService) Update(code string, req *UpdateSalesChannelRequest) (*SalesChannelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	code = strings.ToUpper(code)
	channel, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSalesChannelNotFound
		}
		return nil, fmt.Errorf("failed to get sales channel: %w", err)
	}

	if req.SalesChannelCode != nil && !strings.EqualFold(*req.SalesChannelCode, code) {
		return nil, apperrors.ErrImmutableCode
	}

	if req.Name != nil {
		channel.Name = *req.Name
	}
	if req.Description != nil {
		channel.Description = *req.Description
	}
	if req.IsActive != nil {
		channel.IsActive = *req.IsActive
	}

	if err := s.repo.Update(channel); err != nil {
		return nil, fmt.Errorf("failed to update sales channel: %w", err)
	}

	return s.toResponse(channel), nil
}

// Delete deletes a sales channel by code
func (s *SalesChannelService) Delete(code string) error {
	code = strings.ToUpper(code)
	_, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSalesChannelNotFound
		}
		return fmt.Errorf("failed to get sales channel: %w", err)
	}

	if err := s.repo.Delete(code); err != nil {
		return fmt.Errorf("failed to delete sales channel: %w", err)
	}

	return nil
}

// toResponse converts a sales channel model to response
func (s *SalesChannelService) toResponse(channel *models.SalesChannel) *SalesChannelResponse {
	return &SalesChannelResponse{
		SalesChannelCode: channel.Code,
		Name:             channel.Name,
		Description:      channel.Description,
		IsActive:         channel.IsActive,
		CreatedAt:        channel.CreatedAt,
		UpdatedAt:        channel.UpdatedAt,
	}
}
