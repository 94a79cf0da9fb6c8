package models

// MarketingChannel represents a channel through which campaigns are run
type MarketingChannel struct {
	BaseModel
	Name        string        `json:"name" gorm:"column:name;uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Medium      ChannelMedium `json:"medium" gorm:"column:medium;type:varchar(20);not null;default:'EMAIL'"`
	Description string        `json:"description" gorm:"column:description;size:500" validate:"max=500"`
	CostPerLead float64       `json:"costPerLead" gorm:"column:cost_per_lead;not null;default:0" validate:"gte=0"`
	IsActive    bool          `json:"isActive" gorm:"column:is_active;not null;default:true"`
}

// TableName returns the table name for MarketingChannel
func (MarketingChannel) TableName() string {
	return "marketing_channels"
}
