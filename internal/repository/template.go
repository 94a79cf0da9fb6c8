package repository

import (
	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateRepository handles database operations for templates and their attachments
type TemplateRepository struct {
	db *gorm.DB
}

// Ensure TemplateRepository implements TemplateRepositoryInterface
var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create creates a new template. A duplicate name surfaces as
// ErrTemplateExists via the unique index.
func (r *TemplateRepository) Create(template *models.Template) error {
	if err := r.db.Create(template).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrTemplateExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a template by ID
func (r *TemplateRepository) GetByID(id uuid.UUID) (*models.Template, error) {
	var template models.Template
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByName retrieves a template by its unique name
func (r *TemplateRepository) GetByName(name string) (*models.Template, error) {
	var template models.Template
	err := r.db.First(&template, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetAll retrieves templates with optional format filter and pagination
func (r *TemplateRepository) GetAll(format *models.TemplateFormat, limit, offset int) ([]models.Template, int64, error) {
	var templates []models.Template
	var total int64

	query := r.db.Model(&models.Template{})
	if format != nil {
		query = query.Where("format = ?", *format)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("name ASC").Find(&templates).Error; err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

// Update updates a template
func (r *TemplateRepository) Update(template *models.Template) error {
	if err := r.db.Save(template).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrTemplateExists
		}
		return err
	}
	return nil
}

// Delete deletes a template by ID (attachments cascade)
func (r *TemplateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Template{}, "id = ?", id).Error
}

// AddAttachment inserts an attachment row. The (template_id, checksum) unique
// index turns a concurrent duplicate upload into a constraint violation.
func (r *TemplateRepository) AddAttachment(attachment *models.TemplateAttachment) error {
	if err := r.db.Create(attachment).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAlreadyExistsError("template attachment", "with this content")
		}
		return err
	}
	return nil
}

// GetAttachmentByChecksum finds an attachment of a template by content hash
func (r *TemplateRepository) GetAttachmentByChecksum(templateID uuid.UUID, checksum string) (*models.TemplateAttachment, error) {
	var attachment models.TemplateAttachment
	err := r.db.First(&attachment, "template_id = ? AND checksum = ?", templateID, checksum).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// GetAttachmentByID retrieves an attachment, including its content
func (r *TemplateRepository) GetAttachmentByID(id uuid.UUID) (*models.TemplateAttachment, error) {
	var attachment models.TemplateAttachment
	err := r.db.First(&attachment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// ListAttachments lists attachment metadata for a template without content bytes
func (r *TemplateRepository) ListAttachments(templateID uuid.UUID) ([]models.TemplateAttachment, error) {
	var attachments []models.TemplateAttachment
	err := r.db.
		Select("id", "created_at", "updated_at", "template_id", "file_name", "content_type", "size_bytes", "checksum").
		Where("template_id = ?", templateID).
		Order("created_at ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

// DeleteAttachment deletes an attachment by ID
func (r *TemplateRepository) DeleteAttachment(id uuid.UUID) error {
	return r.db.Delete(&models.TemplateAttachment{}, "id = ?", id).Error
}
