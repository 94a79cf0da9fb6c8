package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SalesChannelServiceInterface defines the interface for sales channel service
type SalesChannelServiceInterface interface {
	Create(req *CreateSalesChannelRequest) (*SalesChannelResponse, error)
	GetByCode(code string) (*SalesChannelResponse, error)
	GetAll(page, pageSize int) (*SalesChannelListResponse, error)
	Update(code string, req *UpdateSalesChannelRequest) (*SalesChannelResponse, error)
	Delete(code string) error
}

// TemplateServiceInterface defines the interface for template service
type TemplateServiceInterface interface {
	Create(req *CreateTemplateRequest) (*TemplateResponse, error)
	GetByID(id uuid.UUID) (*TemplateResponse, error)
	GetAll(formatLabel string, page, pageSize int) (*TemplateListResponse, error)
	Update(id uuid.UUID, req *UpdateTemplateRequest) (*TemplateResponse, error)
	Delete(id uuid.UUID) error
	UploadAttachment(templateID uuid.UUID, upload *AttachmentUpload) (*AttachmentResponse, bool, error)
	ListAttachments(templateID uuid.UUID) ([]AttachmentResponse, error)
	GetAttachmentContent(id uuid.UUID) (*AttachmentContent, error)
	DeleteAttachment(id uuid.UUID) error
}

// BusinessUnitServiceInterface defines the interface for business unit service
type BusinessUnitServiceInterface interface {
	Create(req *CreateBusinessUnitRequest) (*BusinessUnitResponse, error)
	GetByCode(code string) (*BusinessUnitResponse, error)
	GetAll(page, pageSize int) (*BusinessUnitListResponse, error)
	GetChildren(code string) ([]BusinessUnitResponse, error)
	Update(code string, req *UpdateBusinessUnitRequest) (*BusinessUnitResponse, error)
	Delete(code string) error
}

// MarketingOfficeServiceInterface defines the interface for marketing office service
type MarketingOfficeServiceInterface interface {
	Create(req *CreateMarketingOfficeRequest) (*MarketingOfficeResponse, error)
	GetByCode(code string) (*MarketingOfficeResponse, error)
	GetAll(country string, page, pageSize int) (*MarketingOfficeListResponse, error)
	Update(code string, req *UpdateMarketingOfficeRequest) (*MarketingOfficeResponse, error)
	Delete(code string) error
}

// MarketingChannelServiceInterface defines the interface for marketing channel service
type MarketingChannelServiceInterface interface {
	Create(req *CreateMarketingChannelRequest) (*MarketingChannelResponse, error)
	GetByID(id uuid.UUID) (*MarketingChannelResponse, error)
	GetAll(mediumLabel string, page, pageSize int) (*MarketingChannelListResponse, error)
	Update(id uuid.UUID, req *UpdateMarketingChannelRequest) (*MarketingChannelResponse, error)
	Delete(id uuid.UUID) error
}

// PhoneCallServiceInterface defines the interface for phone call service
type PhoneCallServiceInterface interface {
	Create(req *CreatePhoneCallRequest) (*PhoneCallResponse, error)
	GetByID(id uuid.UUID) (*PhoneCallResponse, error)
	GetAll(statusLabel string, page, pageSize int) (*PhoneCallListResponse, error)
	GetByLead(leadID uuid.UUID, page, pageSize int) (*PhoneCallListResponse, error)
	Update(id uuid.UUID, req *UpdatePhoneCallRequest) (*PhoneCallResponse, error)
	Delete(id uuid.UUID) error
}

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	Create(req *CreateLeadRequest) (*LeadResponse, error)
	GetByID(id uuid.UUID) (*LeadResponse, error)
	GetAll(statusLabel string, page, pageSize int) (*LeadListResponse, error)
	Search(query string, page, pageSize int) (*LeadListResponse, error)
	Update(id uuid.UUID, req *UpdateLeadRequest) (*LeadResponse, error)
	Delete(id uuid.UUID) error
	Import(leads []ImportLeadInput, source string) (*LeadImportResult, error)
}

// LinkedInServiceInterface defines the interface for the LinkedIn integration service
type LinkedInServiceInterface interface {
	AuthURL(state string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*LinkedInTokenResponse, error)
	ImportLeads(req *LinkedInImportRequest) (*LeadImportResult, error)
}

// DirectoryServiceInterface defines the interface for directory (LDAP) search
type DirectoryServiceInterface interface {
	SearchUsers(query string) ([]DirectoryUser, error)
}
