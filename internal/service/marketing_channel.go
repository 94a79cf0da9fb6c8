package service

import (
	"errors"
	"fmt"
	"time"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketingChannelService handles business logic for marketing channels
type MarketingChannelService struct {
	repo      repository.MarketingChannelRepositoryInterface
	validator *validator.Validate
}

// Ensure MarketingChannelService implements MarketingChannelServiceInterface
var _ MarketingChannelServiceInterface = (*MarketingChannelService)(nil)

// NewMarketingChannelService creates a new marketing channel service
func NewMarketingChannelService(repo repository.MarketingChannelRepositoryInterface, validator *validator.Validate) *MarketingChannelService {
	return &MarketingChannelService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMarketingChannelRequest represents the request to create a marketing channel.
// Medium is the human-facing label; unrecognized labels fall back to the default.
type CreateMarketingChannelRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Medium      string  `json:"medium,omitempty"`
	Description string  `json:"description,omitempty" validate:"max=500"`
	CostPerLead float64 `json:"costPerLead,omitempty" validate:"gte=0"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// UpdateMarketingChannelRequest represents the request to update a marketing channel
type UpdateMarketingChannelRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Medium      *string  `json:"medium,omitempty"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	CostPerLead *float64 `json:"costPerLead,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// MarketingChannelResponse represents the response for marketing channel operations
type MarketingChannelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Medium      string    `json:"medium"` // human-facing label
	Description string    `json:"description"`
	CostPerLead float64   `json:"costPerLead"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MarketingChannelListResponse represents a paginated list of marketing channels
type MarketingChannelListResponse struct {
	MarketingChannels []MarketingChannelResponse `json:"marketingChannels"`
	Total             int64                      `json:"total"`
	Page              int                        `json:"page"`
	PageSize          int                        `json:"pageSize"`
}

// Create creates a new marketing channel
func (s *MarketingChannelService) Create(req *CreateMarketingChannelRequest) (*MarketingChannelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	// Friendly pre-check; the unique index remains the real guard
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing marketing channel: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMarketingChannelExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	channel := &models.MarketingChannel{
		Name:        req.Name,
		Medium:      models.ParseChannelMedium(req.Medium),
		Description: req.Description,
		CostPerLead: req.CostPerLead,
		IsActive:    isActive,
	}

	if err := s.repo.Create(channel); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create marketing channel: %w", err)
	}

	return s.toResponse(channel), nil
}

// GetByID retrieves a marketing channel by ID
func (s *MarketingChannelService) GetByID(id uuid.UUID) (*MarketingChannelResponse, error) {
	channel, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMarketingChannelNotFound
		}
		return nil, fmt.Errorf("failed to get marketing channel: %w", err)
	}

	return s.toResponse(channel), nil
}

// GetAll retrieves marketing channels, optionally filtered by medium label, with pagination
func (s *MarketingChannelService) GetAll(mediumLabel string, page, pageSize int) (*MarketingChannelListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	var medium *models.ChannelMedium
	if mediumLabel != "" {
		m := models.ParseChannelMedium(mediumLabel)
		medium = &m
	}

	offset := (page - 1) * pageSize
	channels, total, err := s.repo.GetAll(medium, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get marketing channels: %w", err)
	}

	responses := make([]MarketingChannelResponse, len(channels))
	for i, channel := range channels {
		responses[i] = *s.toResponse(&channel)
	}

	return &MarketingChannelListResponse{
		MarketingChannels: responses,
		Total:             total,
		Page:              page,
		PageSize:          pageSize,
	}, nil
}

// Update applies a partial update to a marketing channel
func (s *MarketingChannelService) Update(id uuid.UUID, req *UpdateMarketingChannelRequest) (*MarketingChannelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	channel, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMarketingChannelNotFound
		}
		return nil, fmt.Errorf("failed to get marketing channel: %w", err)
	}

	if req.Name != nil {
		channel.Name = *req.Name
	}
	if req.Medium != nil {
		channel.Medium = models.ParseChannelMedium(*req.Medium)
	}
	if req.Description != nil {
		channel.Description = *req.Description
	}
	if req.CostPerLead != nil {
		channel.CostPerLead = *req.CostPerLead
	}
	if req.IsActive != nil {
		channel.IsActive = *req.IsActive
	}

	if err := s.repo.Update(channel); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update marketing channel: %w", err)
	}

	return s.toResponse(channel), nil
}

// Delete deletes a marketing channel by ID
func (s *MarketingChannelService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMarketingChannelNotFound
		}
		return fmt.Errorf("failed to get marketing channel: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete marketing channel: %w", err)
	}

	return nil
}

// toResponse converts a marketing channel model to response
func (s *MarketingChannelService) toResponse(channel *models.MarketingChannel) *MarketingChannelResponse {
	return &MarketingChannelResponse{
		ID:          channel.ID,
		Name:        channel.Name,
		Medium:      channel.Medium.Label(),
		Description: channel.Description,
		CostPerLead: channel.CostPerLead,
		IsActive:    channel.IsActive,
		CreatedAt:   channel.CreatedAt,
		UpdatedAt:   channel.UpdatedAt,
	}
}
