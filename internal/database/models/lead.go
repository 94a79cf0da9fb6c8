package models

import (
	"github.com/google/uuid"
)

// Lead represents a sales lead. Email is the natural identity used for
// idempotent imports; the surrogate UUID remains the lookup key.
type Lead struct {
	BaseModel
	FirstName          string     `json:"firstName" gorm:"column:first_name;not null;size:100" validate:"required,max=100"`
	LastName           string     `json:"lastName" gorm:"column:last_name;not null;size:100" validate:"required,max=100"`
	Email              string     `json:"email" gorm:"column:email;uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Phone              string     `json:"phone" gorm:"column:phone;size:30" validate:"max=30"`
	Company            string     `json:"company" gorm:"column:company;size:200" validate:"max=200"`
	Status             LeadStatus `json:"status" gorm:"column:status;type:varchar(20);not null;default:'NEW'"`
	Source             LeadSource `json:"source" gorm:"column:source;type:varchar(20);not null;default:'OTHER'"`
	OwnerEmail         string     `json:"ownerEmail" gorm:"column:owner_email;size:255" validate:"omitempty,email,max=255"`
	SalesChannelCode   *string    `json:"salesChannelCode,omitempty" gorm:"column:sales_channel_code;size:4" validate:"omitempty,len=4,alphanum"`
	MarketingChannelID *uuid.UUID `json:"marketingChannelId,omitempty" gorm:"column:marketing_channel_id;type:uuid"`
	Tags               string     `json:"tags" gorm:"column:tags;size:400"` // comma separated values

	// Relationships
	SalesChannel     *SalesChannel     `json:"salesChannel,omitempty" gorm:"foreignKey:SalesChannelCode;references:Code"`
	MarketingChannel *MarketingChannel `json:"marketingChannel,omitempty" gorm:"foreignKey:MarketingChannelID"`
	PhoneCalls       []PhoneCall       `json:"phoneCalls,omitempty" gorm:"foreignKey:LeadID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
