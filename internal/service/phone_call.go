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

// PhoneCallService handles business logic for phone call activities
type PhoneCallService struct {
	repo      repository.PhoneCallRepositoryInterface
	leadRepo  repository.LeadRepositoryInterface
	validator *validator.Validate
}

// Ensure PhoneCallService implements PhoneCallServiceInterface
var _ PhoneCallServiceInterface = (*PhoneCallService)(nil)

// NewPhoneCallService creates a new phone call service
func NewPhoneCallService(repo repository.PhoneCallRepositoryInterface, leadRepo repository.LeadRepositoryInterface, validator *validator.Validate) *PhoneCallService {
	return &PhoneCallService{
		repo:      repo,
		leadRepo:  leadRepo,
		validator: validator,
	}
}

// CreatePhoneCallRequest represents the request to create a phone call.
// Direction and Status are the human-facing labels; unrecognized labels fall
// back to their documented defaults.
type CreatePhoneCallRequest struct {
	Subject    string     `json:"subject" validate:"required,max=200"`
	Direction  string     `json:"direction,omitempty"`
	Status     string     `json:"status,omitempty"`
	StartTime  time.Time  `json:"startTime" validate:"required"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	LeadID     *uuid.UUID `json:"leadId,omitempty"`
	OwnerEmail string     `json:"ownerEmail,omitempty" validate:"omitempty,email,max=255"`
	Notes      string     `json:"notes,omitempty"`
}

// UpdatePhoneCallRequest represents the request to partially update a phone call
type UpdatePhoneCallRequest struct {
	Subject    *string    `json:"subject,omitempty" validate:"omitempty,min=1,max=200"`
	Direction  *string    `json:"direction,omitempty"`
	Status     *string    `json:"status,omitempty"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	LeadID     *uuid.UUID `json:"leadId,omitempty"`
	OwnerEmail *string    `json:"ownerEmail,omitempty" validate:"omitempty,email,max=255"`
	Notes      *string    `json:"notes,omitempty"`
}

// PhoneCallResponse represents the response for phone call operations
type PhoneCallResponse struct {
	ID         uuid.UUID  `json:"id"`
	Subject    string     `json:"subject"`
	Direction  string     `json:"direction"` // human-facing label
	Status     string     `json:"status"`    // human-facing label
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	LeadID     *uuid.UUID `json:"leadId,omitempty"`
	OwnerEmail string     `json:"ownerEmail"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// PhoneCallListResponse represents a paginated list of phone calls
type PhoneCallListResponse struct {
	PhoneCalls []PhoneCallResponse `json:"phoneCalls"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
}

// checkTimeRange enforces that an end time, when present, is strictly after
// the start time
func checkTimeRange(start time.Time, end *time.Time) error {
	if end != nil && !end.After(start) {
		return apperrors.ErrEndBeforeStart
	}
	return nil
}

// verifyLead confirms a referenced lead exists
func (s *PhoneCallService) verifyLead(leadID *uuid.UUID) error {
	if leadID == nil {
		return nil
	}
	if _, err := s.leadRepo.GetByID(*leadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeadNotFound
		}
		return fmt.Errorf("failed to verify lead: %w", err)
	}
	return nil
}

// Create creates a new phone call
func (s *PhoneCallService) Create(req *CreatePhoneCallRequest) (*PhoneCallResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	if err := checkTimeRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	if err := s.verifyLead(req.LeadID); err != nil {
		return nil, err
	}

	call := &models.PhoneCall{
		Subject:    req.Subject,
		Direction:  models.ParseCallDirection(req.Direction),
		Status:     models.ParseCallStatus(req.Status),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		LeadID:     req.LeadID,
		OwnerEmail: req.OwnerEmail,
		Notes:      req.Notes,
	}

	if err := s.repo.Create(call); err != nil {
		return nil, fmt.Errorf("failed to create phone call: %w", err)
	}

	return s.toResponse(call), nil
}

// GetByID retrieves a phone call by ID
func (s *PhoneCallService) GetByID(id uuid.UUID) (*PhoneCallResponse, error) {
	call, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhoneCallNotFound
		}
		return nil, fmt.Errorf("failed to get phone call: %w", err)
	}

	return s.toResponse(call), nil
}

// GetAll retrieves phone calls, optionally filtered by status label, with pagination
func (s *PhoneCallService) GetAll(statusLabel string, page, pageSize int) (*PhoneCallListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	var status *models.CallStatus
	if statusLabel != "" {
		st := models.ParseCallStatus(statusLabel)
		status = &st
	}

	offset := (page - 1) * pageSize
	calls, total, err := s.repo.GetAll(status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone calls: %w", err)
	}

	return s.toListResponse(calls, total, page, pageSize), nil
}

// GetByLead retrieves phone calls for a specific lead with pagination
func (s *PhoneCallService) GetByLead(leadID uuid.UUID, page, pageSize int) (*PhoneCallListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	if err := s.verifyLead(&leadID); err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	calls, total, err := s.repo.GetByLeadID(leadID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone calls by lead: %w", err)
	}

	return s.toListResponse(calls, total, page, pageSize), nil
}

// Update applies a partial update to a phone call, re-checking the time range
// against the effective start and end values
func (s *PhoneCallService) Update(id uuid.UUID, req *UpdatePhoneCallRequest) (*PhoneCallResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	call, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhoneCallNotFound
		}
		return nil, fmt.Errorf("failed to get phone call: %w", err)
	}

	start := call.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := call.EndTime
	if req.EndTime != nil {
		end = req.EndTime
	}
	if err := checkTimeRange(start, end); err != nil {
		return nil, err
	}

	if req.LeadID != nil {
		if err := s.verifyLead(req.LeadID); err != nil {
			return nil, err
		}
		call.LeadID = req.LeadID
	}

	call.StartTime = start
	call.EndTime = end
	if req.Subject != nil {
		call.Subject = *req.Subject
	}
	if req.Direction != nil {
		call.Direction = models.ParseCallDirection(*req.Direction)
	}
	if req.Status != nil {
		call.Status = models.ParseCallStatus(*req.Status)
	}
	if req.OwnerEmail != nil {
		call.OwnerEmail = *req.OwnerEmail
	}
	if req.Notes != nil {
		call.Notes = *req.Notes
	}

	if err := s.repo.Update(call); err != nil {
		return nil, fmt.Errorf("failed to update phone call: %w", err)
	}

	return s.toResponse(call), nil
}

// Delete deletes a phone call by ID
func (s *PhoneCallService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPhoneCallNotFound
		}
		return fmt.Errorf("failed to get phone call: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete phone call: %w", err)
	}

	return nil
}

func (s *PhoneCallService) toListResponse(calls []models.PhoneCall, total int64, page, pageSize int) *PhoneCallListResponse {
	responses := make([]PhoneCallResponse, len(calls))
	for i, call := range calls {
		responses[i] = *s.toResponse(&call)
	}
	return &PhoneCallListResponse{
		PhoneCalls: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}
}

// toResponse converts a phone call model to response
func (s *PhoneCallService) toResponse(call *models.PhoneCall) *PhoneCallResponse {
	return &PhoneCallResponse{
		ID:         call.ID,
		Subject:    call.Subject,
		Direction:  call.Direction.Label(),
		Status:     call.Status.Label(),
		StartTime:  call.StartTime,
		EndTime:    call.EndTime,
		LeadID:     call.LeadID,
		OwnerEmail: call.OwnerEmail,
		Notes:      call.Notes,
		CreatedAt:  call.CreatedAt,
		UpdatedAt:  call.UpdatedAt,
	}
}
