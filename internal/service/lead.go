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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadService handles business logic for leads
type LeadService struct {
	repo                 repository.LeadRepositoryInterface
	salesChannelRepo     repository.SalesChannelRepositoryInterface
	marketingChannelRepo repository.MarketingChannelRepositoryInterface
	validator            *validator.Validate
}

// Ensure LeadService implements LeadServiceInterface
var _ LeadServiceInterface = (*LeadService)(nil)

// NewLeadService creates a new lead service
func NewLeadService(repo repository.LeadRepositoryInterface, salesChannelRepo repository.SalesChannelRepositoryInterface, marketingChannelRepo repository.MarketingChannelRepositoryInterface, validator *validator.Validate) *LeadService {
	return &LeadService{
		repo:                 repo,
		salesChannelRepo:     salesChannelRepo,
		marketingChannelRepo: marketingChannelRepo,
		validator:            validator,
	}
}

// CreateLeadRequest represents the request to create a lead.
// Status and Source take human-facing labels; unrecognized labels fall back
// to their documented defaults.
type CreateLeadRequest struct {
	FirstName          string     `json:"firstName" validate:"required,max=100"`
	LastName           string     `json:"lastName" validate:"required,max=100"`
	Email              string     `json:"email" validate:"required,email,max=255"`
	Phone              string     `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company            string     `json:"company,omitempty" validate:"omitempty,max=200"`
	Status             string     `json:"status,omitempty"`
	Source             string     `json:"source,omitempty"`
	OwnerEmail         string     `json:"ownerEmail,omitempty" validate:"omitempty,email,max=255"`
	SalesChannelCode   *string    `json:"salesChannelCode,omitempty" validate:"omitempty,len=4,alphanum"`
	MarketingChannelID *uuid.UUID `json:"marketingChannelId,omitempty"`
	Tags               []string   `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=30"`
}

// UpdateLeadRequest represents the request to partially update a lead
type UpdateLeadRequest struct {
	FirstName          *string    `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName           *string    `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	Email              *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone              *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company            *string    `json:"company,omitempty" validate:"omitempty,max=200"`
	Status             *string    `json:"status,omitempty"`
	Source             *string    `json:"source,omitempty"`
	OwnerEmail         *string    `json:"ownerEmail,omitempty" validate:"omitempty,email,max=255"`
	SalesChannelCode   *string    `json:"salesChannelCode,omitempty" validate:"omitempty,len=4,alphanum"`
	MarketingChannelID *uuid.UUID `json:"marketingChannelId,omitempty"`
	Tags               []string   `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=30"`
}

// LeadResponse represents the response for lead operations
type LeadResponse struct {
	ID                 uuid.UUID  `json:"id"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Company            string     `json:"company"`
	Status             string     `json:"status"` // human-facing label
	Source             string     `json:"source"` // human-facing label
	OwnerEmail         string     `json:"ownerEmail"`
	SalesChannelCode   *string    `json:"salesChannelCode,omitempty"`
	MarketingChannelID *uuid.UUID `json:"marketingChannelId,omitempty"`
	Tags               []string   `json:"tags"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Leads    []LeadResponse `json:"leads"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// ImportLeadInput is a single lead in a bulk import request
type ImportLeadInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Company   string `json:"company,omitempty" validate:"omitempty,max=200"`
}

// LeadImportResult summarizes a bulk import run
type LeadImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// joinTags serializes tags for storage, dropping empty entries
func joinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return strings.Join(cleaned, ",")
}

// splitTags deserializes stored tags
func splitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	return strings.Split(tags, ",")
}

// verifySalesChannel confirms a referenced sales channel exists
func (s *LeadService) verifySalesChannel(code *string) error {
	if code == nil {
		return nil
	}
	exists, err := s.salesChannelRepo.CodeExists(strings.ToUpper(*code))
	if err != nil {
		return fmt.Errorf("failed to verify sales channel: %w", err)
	}
	if !exists {
		return apperrors.ErrSalesChannelNotFound
	}
	return nil
}

// verifyMarketingChannel confirms a referenced marketing channel exists
func (s *LeadService) verifyMarketingChannel(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.marketingChannelRepo.GetByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMarketingChannelNotFound
		}
		return fmt.Errorf("failed to verify marketing channel: %w", err)
	}
	return nil
}

// Create creates a new lead
func (s *LeadService) Create(req *CreateLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	email := strings.ToLower(req.Email)

	// Friendly duplicate check; the unique index on email remains the
	// authority under concurrent creates.
	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrLeadExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check lead existence: %w", err)
	}

	if err := s.verifySalesChannel(req.SalesChannelCode); err != nil {
		return nil, err
	}
	if err := s.verifyMarketingChannel(req.MarketingChannelID); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              email,
		Phone:              req.Phone,
		Company:            req.Company,
		Status:             models.ParseLeadStatus(req.Status),
		Source:             models.ParseLeadSource(req.Source),
		OwnerEmail:         req.OwnerEmail,
		MarketingChannelID: req.MarketingChannelID,
		Tags:               joinTags(req.Tags),
	}
	if req.SalesChannelCode != nil {
		code := strings.ToUpper(*req.SalesChannelCode)
		lead.SalesChannelCode = &code
	}

	if err := s.repo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return s.toResponse(lead), nil
}

// GetByID retrieves a lead by ID
func (s *LeadService) GetByID(id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return s.toResponse(lead), nil
}

// GetAll retrieves leads, optionally filtered by status label, with pagination
func (s *LeadService) GetAll(statusLabel string, page, pageSize int) (*LeadListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	var status *models.LeadStatus
	if statusLabel != "" {
		st := models.ParseLeadStatus(statusLabel)
		status = &st
	}

	offset := (page - 1) * pageSize
	leads, total, err := s.repo.GetAll(status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	return s.toListResponse(leads, total, page, pageSize), nil
}

// Search retrieves leads matching a free-text query across name, email and
// company, with pagination
func (s *LeadService) Search(query string, page, pageSize int) (*LeadListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	leads, total, err := s.repo.Search(query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search leads: %w", err)
	}

	return s.toListResponse(leads, total, page, pageSize), nil
}

// Update applies a partial update to a lead
func (s *LeadService) Update(id uuid.UUID, req *UpdateLeadRequest) (*LeadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	lead, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if email != lead.Email {
			if _, err := s.repo.GetByEmail(email); err == nil {
				return nil, apperrors.ErrLeadExists
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check lead existence: %w", err)
			}
		}
		lead.Email = email
	}

	if req.SalesChannelCode != nil {
		if err := s.verifySalesChannel(req.SalesChannelCode); err != nil {
			return nil, err
		}
		code := strings.ToUpper(*req.SalesChannelCode)
		lead.SalesChannelCode = &code
	}
	if req.MarketingChannelID != nil {
		if err := s.verifyMarketingChannel(req.MarketingChannelID); err != nil {
			return nil, err
		}
		lead.MarketingChannelID = req.MarketingChannelID
	}

	if req.FirstName != nil {
		lead.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		lead.LastName = *req.LastName
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Company != nil {
		lead.Company = *req.Company
	}
	if req.Status != nil {
		lead.Status = models.ParseLeadStatus(*req.Status)
	}
	if req.Source != nil {
		lead.Source = models.ParseLeadSource(*req.Source)
	}
	if req.OwnerEmail != nil {
		lead.OwnerEmail = *req.OwnerEmail
	}
	if req.Tags != nil {
		lead.Tags = joinTags(req.Tags)
	}

	if err := s.repo.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return s.toResponse(lead), nil
}

// Delete deletes a lead by ID
func (s *LeadService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeadNotFound
		}
		return fmt.Errorf("failed to get lead: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil
}

// Import ingests a batch of leads from an external source. Leads whose email
// already exists are skipped rather than rejected, so re-running an import is
// safe.
func (s *LeadService) Import(leads []ImportLeadInput, source string) (*LeadImportResult, error) {
	result := &LeadImportResult{}
	leadSource := models.ParseLeadSource(source)

	for i, input := range leads {
		if err := s.validator.Struct(&input); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("lead %d: %v", i, asFieldErrors(err)))
			continue
		}

		email := strings.ToLower(input.Email)
		if _, err := s.repo.GetByEmail(email); err == nil {
			result.Skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check lead existence: %w", err)
		}

		lead := &models.Lead{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     email,
			Phone:     input.Phone,
			Company:   input.Company,
			Status:    models.LeadStatusNew,
			Source:    leadSource,
		}

		if err := s.repo.Create(lead); err != nil {
			if apperrors.IsAlreadyExists(err) {
				// lost a race with a concurrent import of the same email
				result.Skipped++
				continue
			}
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("lead %d: failed to create", i))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func (s *LeadService) toListResponse(leads []models.Lead, total int64, page, pageSize int) *LeadListResponse {
	responses := make([]LeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = *s.toResponse(&lead)
	}
	return &LeadListResponse{
		Leads:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// toResponse converts a lead model to response
func (s *LeadService) toResponse(lead *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:                 lead.ID,
		FirstName:          lead.FirstName,
		LastName:           lead.LastName,
		Email:              lead.Email,
		Phone:              lead.Phone,
		Company:            lead.Company,
		Status:             lead.Status.Label(),
		Source:             lead.Source.Label(),
		OwnerEmail:         lead.OwnerEmail,
		SalesChannelCode:   lead.SalesChannelCode,
		MarketingChannelID: lead.MarketingChannelID,
		Tags:               splitTags(lead.Tags),
		CreatedAt:          lead.CreatedAt,
		UpdatedAt:          lead.UpdatedAt,
	}
}
