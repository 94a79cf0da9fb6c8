package models

// SalesChannel represents a sales channel keyed by its 4-character code.
// The code is assigned by the user at creation time and is immutable.
type SalesChannel struct {
	Code        string `json:"salesChannelCode" gorm:"column:sales_channel_code;primaryKey;size:4" validate:"required,len=4,alphanum"`
	Name        string `json:"name" gorm:"column:name;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"column:description;size:500" validate:"max=500"`
	IsActive    bool   `json:"isActive" gorm:"column:is_active;not null;default:true"`
	Timestamps

	// Relationships
	Leads []Lead `json:"leads,omitempty" gorm:"foreignKey:SalesChannelCode;references:Code"`
}

// TableName returns the table name for SalesChannel
func (SalesChannel) TableName() string {
	return "sales_channels"
}
