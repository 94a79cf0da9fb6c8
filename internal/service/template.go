package service

import (
	"crypto/sha256"
	"encoding/hex"
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

// TemplateService handles business logic for templates and their attachments
type TemplateService struct {
	repo               repository.TemplateRepositoryInterface
	validator          *validator.Validate
	maxAttachmentBytes int64
}

// Ensure TemplateService implements TemplateServiceInterface
var _ TemplateServiceInterface = (*TemplateService)(nil)

// NewTemplateService creates a new template service
func NewTemplateService(repo repository.TemplateRepositoryInterface, validator *validator.Validate, maxAttachmentBytes int64) *TemplateService {
	return &TemplateService{
		repo:               repo,
		validator:          validator,
		maxAttachmentBytes: maxAttachmentBytes,
	}
}

// CreateTemplateRequest represents the request to create a template.
// Format is the human-facing label ("Text Based", "HTML", "File Based");
// unrecognized labels fall back to the documented default.
type CreateTemplateRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Format   string `json:"format,omitempty"`
	Subject  string `json:"subject,omitempty" validate:"max=200"`
	Body     string `json:"body,omitempty"`
	Language string `json:"language,omitempty" validate:"omitempty,len=2,alpha"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// UpdateTemplateRequest represents the request to partially update a template
type UpdateTemplateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Format   *string `json:"format,omitempty"`
	Subject  *string `json:"subject,omitempty" validate:"omitempty,max=200"`
	Body     *string `json:"body,omitempty"`
	Language *string `json:"language,omitempty" validate:"omitempty,len=2,alpha"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// TemplateResponse represents the response for template operations
type TemplateResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Format      string    `json:"format"` // human-facing label
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Language    string    `json:"language"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TemplateListResponse represents a paginated list of templates
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"pageSize"`
}

// AttachmentUpload carries an uploaded file into the service layer
type AttachmentUpload struct {
	FileName    string `validate:"required,max=255"`
	ContentType string `validate:"max=100"`
	Content     []byte `validate:"required"`
}

// AttachmentResponse represents attachment metadata (never the content bytes)
type AttachmentResponse struct {
	ID          uuid.UUID `json:"id"`
	TemplateID  uuid.UUID `json:"templateId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	Checksum    string    `json:"checksum"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AttachmentContent carries attachment bytes for download
type AttachmentContent struct {
	FileName    string
	ContentType string
	Content     []byte
}

// checkBodyRules enforces the format/body cross-field contract: file based
// templates carry their content as attachments, the others carry it inline.
func checkBodyRules(format models.TemplateFormat, body string) error {
	if format == models.TemplateFormatFileBased {
		if body != "" {
			return apperrors.ErrBodyForbiddenForFormat
		}
		return nil
	}
	if body == "" {
		return apperrors.ErrBodyRequiredForFormat
	}
	return nil
}

// Create creates a new template
func (s *TemplateService) Create(req *CreateTemplateRequest) (*TemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	format := models.ParseTemplateFormat(req.Format)
	if err := checkBodyRules(format, req.Body); err != nil {
		return nil, err
	}

	// Friendly pre-check; the unique index remains the real guard
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing template: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTemplateExists
	}

	language := req.Language
	if language == "" {
		language = "en"
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	template := &models.Template{
		Name:     req.Name,
		Format:   format,
		Subject:  req.Subject,
		Body:     req.Body,
		Language: language,
		IsActive: isActive,
	}

	if err := s.repo.Create(template); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return s.toResponse(template), nil
}

// GetByID retrieves a template by ID
func (s *TemplateService) GetByID(id uuid.UUID) (*TemplateResponse, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return s.toResponse(template), nil
}

// GetAll retrieves templates, optionally filtered by format label, with pagination
func (s *TemplateService) GetAll(formatLabel string, page, pageSize int) (*TemplateListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	var format *models.TemplateFormat
	if formatLabel != "" {
		f := models.ParseTemplateFormat(formatLabel)
		format = &f
	}

	offset := (page - 1) * pageSize
	templates, total, err := s.repo.GetAll(format, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}

	responses := make([]TemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = *s.toResponse(&template)
	}

	return &TemplateListResponse{
		Templates: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update applies a partial update to a template, re-validating the supplied
// fields and the format/body contract against the effective values
func (s *TemplateService) Update(id uuid.UUID, req *UpdateTemplateRequest) (*TemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asFieldErrors(err)
	}

	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	format := template.Format
	if req.Format != nil {
		format = models.ParseTemplateFormat(*req.Format)
	}
	body := template.Body
	if req.Body != nil {
		body = *req.Body
	}
	if err := checkBodyRules(format, body); err != nil {
		return nil, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	template.Format = format
	template.Body = body
	if req.Subject != nil {
		template.Subject = *req.Subject
	}
	if req.Language != nil {
		template.Language = *req.Language
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := s.repo.Update(template); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	return s.toResponse(template), nil
}

// Delete deletes a template and its attachments
func (s *TemplateService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTemplateNotFound
		}
		return fmt.Errorf("failed to get template: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}

// UploadAttachment stores an attachment for a template. Ingestion is
// idempotent by content: identical bytes return the existing attachment and
// reused=true instead of creating a duplicate row.
func (s *TemplateService) UploadAttachment(templateID uuid.UUID, upload *AttachmentUpload) (*AttachmentResponse, bool, error) {
	if err := s.validator.Struct(upload); err != nil {
		return nil, false, asFieldErrors(err)
	}

	if int64(len(upload.Content)) > s.maxAttachmentBytes {
		return nil, false, apperrors.ErrAttachmentTooLarge
	}

	if _, err := s.repo.GetByID(templateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrTemplateNotFound
		}
		return nil, false, fmt.Errorf("failed to get template: %w", err)
	}

	sum := sha256.Sum256(upload.Content)
	checksum := hex.EncodeToString(sum[:])

	existing, err := s.repo.GetAttachmentByChecksum(templateID, checksum)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to check existing attachment: %w", err)
	}
	if existing != nil {
		return s.toAttachmentResponse(existing), true, nil
	}

	attachment := &models.TemplateAttachment{
		TemplateID:  templateID,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		SizeBytes:   int64(len(upload.Content)),
		Checksum:    checksum,
		Content:     upload.Content,
	}

	if err := s.repo.AddAttachment(attachment); err != nil {
		// A concurrent identical upload lost the race to the unique index;
		// resolve to the row that won
		if apperrors.IsAlreadyExists(err) {
			winner, lookupErr := s.repo.GetAttachmentByChecksum(templateID, checksum)
			if lookupErr != nil {
				return nil, false, fmt.Errorf("failed to resolve duplicate attachment: %w", lookupErr)
			}
			return s.toAttachmentResponse(winner), true, nil
		}
		return nil, false, fmt.Errorf("failed to store attachment: %w", err)
	}

	return s.toAttachmentResponse(attachment), false, nil
}

// ListAttachments lists attachment metadata for a template
func (s *TemplateService) ListAttachments(templateID uuid.UUID) ([]AttachmentResponse, error) {
	if _, err := s.repo.GetByID(templateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	attachments, err := s.repo.ListAttachments(templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	responses := make([]AttachmentResponse, len(attachments))
	for i, attachment := range attachments {
		responses[i] = *s.toAttachmentResponse(&attachment)
	}
	return responses, nil
}

// GetAttachmentContent retrieves attachment bytes for download
func (s *TemplateService) GetAttachmentContent(id uuid.UUID) (*AttachmentContent, error) {
	attachment, err := s.repo.GetAttachmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return &AttachmentContent{
		FileName:    attachment.FileName,
		ContentType: attachment.ContentType,
		Content:     attachment.Content,
	}, nil
}

// DeleteAttachment deletes an attachment by ID
func (s *TemplateService) DeleteAttachment(id uuid.UUID) error {
	_, err := s.repo.GetAttachmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAttachmentNotFound
		}
		return fmt.Errorf("failed to get attachment: %w", err)
	}

	if err := s.repo.DeleteAttachment(id); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	return nil
}

// toResponse converts a template model to response
func (s *TemplateService) toResponse(template *models.Template) *TemplateResponse {
	return &TemplateResponse{
		ID:        template.ID,
		Name:      template.Name,
		Format:    template.Format.Label(),
		Subject:   template.Subject,
		Body:      template.Body,
		Language:  template.Language,
		IsActive:  template.IsActive,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
}

// toAttachmentResponse converts an attachment model to response
func (s *TemplateService) toAttachmentResponse(attachment *models.TemplateAttachment) *AttachmentResponse {
	return &AttachmentResponse{
		ID:          attachment.ID,
		TemplateID:  attachment.TemplateID,
		FileName:    attachment.FileName,
		ContentType: attachment.ContentType,
		SizeBytes:   attachment.SizeBytes,
		Checksum:    attachment.Checksum,
		CreatedAt:   attachment.CreatedAt,
	}
}
