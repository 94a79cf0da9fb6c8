package testutils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// SalesChannelFactory provides methods to create test SalesChannel data
type SalesChannelFactory struct{}

// NewSalesChannelFactory creates a new SalesChannelFactory
func NewSalesChannelFactory() *SalesChannelFactory {
	return &SalesChannelFactory{}
}

// Create creates a test SalesChannel with default values
func (f *SalesChannelFactory) Create() *models.SalesChannel {
	return &models.SalesChannel{
		Code:        uniqueCode(),
		Name:        "Test Sales Channel",
		Description: "A test sales channel for testing purposes",
		IsActive:    true,
		Timestamps: models.Timestamps{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

// WithCode sets a custom code for the channel
func (f *SalesChannelFactory) WithCode(code string) *models.SalesChannel {
	channel := f.Create()
	channel.Code = code
	return channel
}

// WithName sets a custom name for the channel
func (f *SalesChannelFactory) WithName(name string) *models.SalesChannel {
	channel := f.Create()
	channel.Name = name
	return channel
}

// Inactive returns a deactivated channel
func (f *SalesChannelFactory) Inactive() *models.SalesChannel {
	channel := f.Create()
	channel.IsActive = false
	return channel
}

// BusinessUnitFactory provides methods to create test BusinessUnit data
type BusinessUnitFactory struct{}

// NewBusinessUnitFactory creates a new BusinessUnitFactory
func NewBusinessUnitFactory() *BusinessUnitFactory {
	return &BusinessUnitFactory{}
}

// Create creates a test BusinessUnit with default values
func (f *BusinessUnitFactory) Create() *models.BusinessUnit {
	return &models.BusinessUnit{
		Code:        uniqueCode(),
		Name:        "Test Business Unit",
		Description: "A test business unit for testing purposes",
		CostCenter:  "CC-1000",
		Timestamps: models.Timestamps{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

// WithCode sets a custom code for the unit
func (f *BusinessUnitFactory) WithCode(code string) *models.BusinessUnit {
	unit := f.Create()
	unit.Code = code
	return unit
}

// WithParent sets the parent code for the unit
func (f *BusinessUnitFactory) WithParent(parentCode string) *models.BusinessUnit {
	unit := f.Create()
	unit.ParentCode = &parentCode
	return unit
}

// MarketingOfficeFactory provides methods to create test MarketingOffice data
type MarketingOfficeFactory struct{}

// NewMarketingOfficeFactory creates a new MarketingOfficeFactory
func NewMarketingOfficeFactory() *MarketingOfficeFactory {
	return &MarketingOfficeFactory{}
}

// Create creates a test MarketingOffice with default values
func (f *MarketingOfficeFactory) Create() *models.MarketingOffice {
	return &models.MarketingOffice{
		Code:    uniqueCode(),
		Name:    "Test Marketing Office",
		City:    "Berlin",
		Country: "DE",
		Phone:   "+49-30-1234567",
		Timestamps: models.Timestamps{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

// WithCode sets a custom code for the office
func (f *MarketingOfficeFactory) WithCode(code string) *models.MarketingOffice {
	office := f.Create()
	office.Code = code
	return office
}

// WithCountry sets a custom country for the office
func (f *MarketingOfficeFactory) WithCountry(country string) *models.MarketingOffice {
	office := f.Create()
	office.Country = country
	return office
}

// WithBusinessUnit sets the business unit code for the office
func (f *MarketingOfficeFactory) WithBusinessUnit(code string) *models.MarketingOffice {
	office := f.Create()
	office.BusinessUnitCode = &code
	return office
}

// MarketingChannelFactory provides methods to create test MarketingChannel data
type MarketingChannelFactory struct{}

// NewMarketingChannelFactory creates a new MarketingChannelFactory
func NewMarketingChannelFactory() *MarketingChannelFactory {
	return &MarketingChannelFactory{}
}

// Create creates a test MarketingChannel with default values
func (f *MarketingChannelFactory) Create() *models.MarketingChannel {
	id := uuid.New()
	return &models.MarketingChannel{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-channel-" + id.String()[:8],
		Medium:      models.ChannelMediumEmail,
		Description: "A test marketing channel for testing purposes",
		CostPerLead: 2.5,
		IsActive:    true,
	}
}

// WithName sets a custom name for the channel
func (f *MarketingChannelFactory) WithName(name string) *models.MarketingChannel {
	channel := f.Create()
	channel.Name = name
	return channel
}

// WithMedium sets a custom medium for the channel
func (f *MarketingChannelFactory) WithMedium(medium models.ChannelMedium) *models.MarketingChannel {
	channel := f.Create()
	channel.Medium = medium
	return channel
}

// TemplateFactory provides methods to create test Template data
type TemplateFactory struct{}

// NewTemplateFactory creates a new TemplateFactory
func NewTemplateFactory() *TemplateFactory {
	return &TemplateFactory{}
}

// Create creates a test Template with default values
func (f *TemplateFactory) Create() *models.Template {
	id := uuid.New()
	return &models.Template{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "test-template-" + id.String()[:8],
		Format:   models.TemplateFormatTextBased,
		Subject:  "Test Subject",
		Body:     "Hello {{firstName}}, this is a test.",
		Language: "en",
		IsActive: true,
	}
}

// WithName sets a custom name for the template
func (f *TemplateFactory) WithName(name string) *models.Template {
	template := f.Create()
	template.Name = name
	return template
}

// WithFormat sets a custom format for the template. File based templates
// carry no inline body.
func (f *TemplateFactory) WithFormat(format models.TemplateFormat) *models.Template {
	template := f.Create()
	template.Format = format
	if format == models.TemplateFormatFileBased {
		template.Body = ""
	}
	return template
}

// AttachmentFor creates a test attachment for the given template with the given content
func (f *TemplateFactory) AttachmentFor(templateID uuid.UUID, fileName string, content []byte) *models.TemplateAttachment {
	sum := sha256.Sum256(content)
	return &models.TemplateAttachment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TemplateID:  templateID,
		FileName:    fileName,
		ContentType: "application/octet-stream",
		SizeBytes:   int64(len(content)),
		Checksum:    hex.EncodeToString(sum[:]),
		Content:     content,
	}
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a test Lead with default values and a unique email
func (f *LeadFactory) Create() *models.Lead {
	id := uuid.New()
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     fmt.Sprintf("jane.doe+%s@test.com", id.String()[:8]),
		Phone:     "+1-555-0123",
		Company:   "Test Corp",
		Status:    models.LeadStatusNew,
		Source:    models.LeadSourceOther,
	}
}

// WithEmail sets a custom email for the lead
func (f *LeadFactory) WithEmail(email string) *models.Lead {
	lead := f.Create()
	lead.Email = strings.ToLower(email)
	return lead
}

// WithStatus sets a custom status for the lead
func (f *LeadFactory) WithStatus(status models.LeadStatus) *models.Lead {
	lead := f.Create()
	lead.Status = status
	return lead
}

// WithSalesChannel sets the sales channel code for the lead
func (f *LeadFactory) WithSalesChannel(code string) *models.Lead {
	lead := f.Create()
	lead.SalesChannelCode = &code
	return lead
}

// PhoneCallFactory provides methods to create test PhoneCall data
type PhoneCallFactory struct{}

// NewPhoneCallFactory creates a new PhoneCallFactory
func NewPhoneCallFactory() *PhoneCallFactory {
	return &PhoneCallFactory{}
}

// Create creates a test PhoneCall with default values
func (f *PhoneCallFactory) Create() *models.PhoneCall {
	start := time.Now().Truncate(time.Second)
	end := start.Add(30 * time.Minute)
	return &models.PhoneCall{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Subject:    "Intro call",
		Direction:  models.CallDirectionOutbound,
		Status:     models.CallStatusPlanned,
		StartTime:  start,
		EndTime:    &end,
		OwnerEmail: "agent@test.com",
		Notes:      "Test notes",
	}
}

// WithLead sets the lead ID for the call
func (f *PhoneCallFactory) WithLead(leadID uuid.UUID) *models.PhoneCall {
	call := f.Create()
	call.LeadID = &leadID
	return call
}

// WithStatus sets a custom status for the call
func (f *PhoneCallFactory) WithStatus(status models.CallStatus) *models.PhoneCall {
	call := f.Create()
	call.Status = status
	return call
}

// WithTimes sets explicit start/end times for the call
func (f *PhoneCallFactory) WithTimes(start time.Time, end *time.Time) *models.PhoneCall {
	call := f.Create()
	call.StartTime = start
	call.EndTime = end
	return call
}

// FactorySet provides access to all factories
type FactorySet struct {
	SalesChannel     *SalesChannelFactory
	BusinessUnit     *BusinessUnitFactory
	MarketingOffice  *MarketingOfficeFactory
	MarketingChannel *MarketingChannelFactory
	Template         *TemplateFactory
	Lead             *LeadFactory
	PhoneCall        *PhoneCallFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		SalesChannel:     NewSalesChannelFactory(),
		BusinessUnit:     NewBusinessUnitFactory(),
		MarketingOffice:  NewMarketingOfficeFactory(),
		MarketingChannel: NewMarketingChannelFactory(),
		Template:         NewTemplateFactory(),
		Lead:             NewLeadFactory(),
		PhoneCall:        NewPhoneCallFactory(),
	}
}

// uniqueCode derives a 4-character alphanumeric code from a fresh UUID so
// parallel factories never collide on natural keys.
func uniqueCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	code := make([]byte, 0, 4)
	for i := 0; i < len(raw) && len(code) < 4; i++ {
		c := raw[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			code = append(code, c)
		}
	}
	return string(code)
}
