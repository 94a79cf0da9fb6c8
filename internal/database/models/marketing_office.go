package models

// MarketingOffice represents a physical marketing office keyed by its code
type MarketingOffice struct {
	Code             string  `json:"marketingOfficeCode" gorm:"column:marketing_office_code;primaryKey;size:4" validate:"required,len=4,alphanum"`
	Name             string  `json:"name" gorm:"column:name;not null;size:100" validate:"required,min=1,max=100"`
	City             string  `json:"city" gorm:"column:city;not null;size:100" validate:"required,max=100"`
	Country          string  `json:"country" gorm:"column:country;not null;size:2" validate:"required,len=2,alpha"` // ISO 3166-1 alpha-2
	Phone            string  `json:"phone" gorm:"column:phone;size:30" validate:"max=30"`
	BusinessUnitCode *string `json:"businessUnitCode,omitempty" gorm:"column:business_unit_code;size:4" validate:"omitempty,len=4,alphanum"`
	Timestamps

	// Relationships
	BusinessUnit *BusinessUnit `json:"businessUnit,omitempty" gorm:"foreignKey:BusinessUnitCode;references:Code"`
}

// TableName returns the table name for MarketingOffice
func (MarketingOffice) TableName() string {
	return "marketing_offices"
}
