package repository

import (
	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SalesChannelRepositoryInterface defines the interface for sales channel repository operations
type SalesChannelRepositoryInterface interface {
	Create(channel *models.SalesChannel) error
	GetByCode(code string) (*models.SalesChannel, error)
	GetAll(limit, offset int) ([]models.SalesChannel, int64, error)
	CodeExists(code string) (bool, error)
	Update(channel *models.SalesChannel) error
	Delete(code string) error
}

// TemplateRepositoryInterface defines the interface for template repository operations
type TemplateRepositoryInterface interface {
	Create(template *models.Template) error
	GetByID(id uuid.UUID) (*models.Template, error)
	GetByName(name string) (*models.Template, error)
	GetAll(format *models.TemplateFormat, limit, offset int) ([]models.Template, int64, error)
	Update(template *models.Template) error
	Delete(id uuid.UUID) error
	AddAttachment(attachment *models.TemplateAttachment) error
	GetAttachmentByChecksum(templateID uuid.UUID, checksum string) (*models.TemplateAttachment, error)
	GetAttachmentByID(id uuid.UUID) (*models.TemplateAttachment, error)
	ListAttachments(templateID uuid.UUID) ([]models.TemplateAttachment, error)
	DeleteAttachment(id uuid.UUID) error
}

// BusinessUnitRepositoryInterface defines the interface for business unit repository operations
type BusinessUnitRepositoryInterface interface {
	Create(unit *models.BusinessUnit) error
	GetByCode(code string) (*models.BusinessUnit, error)
	GetAll(limit, offset int) ([]models.BusinessUnit, int64, error)
	GetChildren(parentCode string) ([]models.BusinessUnit, error)
	CodeExists(code string) (bool, error)
	Update(unit *models.BusinessUnit) error
	Delete(code string) error
}

// MarketingOfficeRepositoryInterface defines the interface for marketing office repository operations
type MarketingOfficeRepositoryInterface interface {
	Create(office *models.MarketingOffice) error
	GetByCode(code string) (*models.MarketingOffice, error)
	GetAll(country string, limit, offset int) ([]models.MarketingOffice, int64, error)
	CodeExists(code string) (bool, error)
	Update(office *models.MarketingOffice) error
	Delete(code string) error
}

// MarketingChannelRepositoryInterface defines the interface for marketing channel repository operations
type MarketingChannelRepositoryInterface interface {
	Create(channel *models.MarketingChannel) error
	GetByID(id uuid.UUID) (*models.MarketingChannel, error)
	GetByName(name string) (*models.MarketingChannel, error)
	GetAll(medium *models.ChannelMedium, limit, offset int) ([]models.MarketingChannel, int64, error)
	Update(channel *models.MarketingChannel) error
	Delete(id uuid.UUID) error
}

// PhoneCallRepositoryInterface defines the interface for phone call repository operations
type PhoneCallRepositoryInterface interface {
	Create(call *models.PhoneCall) error
	GetByID(id uuid.UUID) (*models.PhoneCall, error)
	GetAll(status *models.CallStatus, limit, offset int) ([]models.PhoneCall, int64, error)
	GetByLeadID(leadID uuid.UUID, limit, offset int) ([]models.PhoneCall, int64, error)
	Update(call *models.PhoneCall) error
	Delete(id uuid.UUID) error
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	GetByEmail(email string) (*models.Lead, error)
	GetAll(status *models.LeadStatus, limit, offset int) ([]models.Lead, int64, error)
	Search(query string, limit, offset int) ([]models.Lead, int64, error)
	Update(lead *models.Lead) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
