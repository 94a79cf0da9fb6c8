package models

import (
	"time"

	"github.com/google/uuid"
)

// PhoneCall represents a logged or planned phone call activity
type PhoneCall struct {
	BaseModel
	Subject    string        `json:"subject" gorm:"column:subject;not null;size:200" validate:"required,max=200"`
	Direction  CallDirection `json:"direction" gorm:"column:direction;type:varchar(20);not null;default:'OUTBOUND'"`
	Status     CallStatus    `json:"status" gorm:"column:status;type:varchar(20);not null;default:'PLANNED'"`
	StartTime  time.Time     `json:"startTime" gorm:"column:start_time;not null" validate:"required"`
	EndTime    *time.Time    `json:"endTime,omitempty" gorm:"column:end_time"` // must be strictly after StartTime when set
	LeadID     *uuid.UUID    `json:"leadId,omitempty" gorm:"column:lead_id;type:uuid;index"`
	OwnerEmail string        `json:"ownerEmail" gorm:"column:owner_email;size:255" validate:"omitempty,email,max=255"`
	Notes      string        `json:"notes" gorm:"column:notes;type:text"`

	// Relationships
	Lead *Lead `json:"lead,omitempty" gorm:"foreignKey:LeadID"`
}

// TableName returns the table name for PhoneCall
func (PhoneCall) TableName() string {
	return "phone_calls"
}
