package models

// BusinessUnit represents a node in the company org structure keyed by its
// 4-character code. The code is immutable after creation.
type BusinessUnit struct {
	Code        string  `json:"businessUnitCode" gorm:"column:business_unit_code;primaryKey;size:4" validate:"required,len=4,alphanum"`
	Name        string  `json:"name" gorm:"column:name;not null;size:100" validate:"required,min=1,max=100"`
	Description string  `json:"description" gorm:"column:description;size:500" validate:"max=500"`
	ParentCode  *string `json:"parentCode,omitempty" gorm:"column:parent_code;size:4" validate:"omitempty,len=4,alphanum"`
	CostCenter  string  `json:"costCenter" gorm:"column:cost_center;size:20" validate:"max=20"`
	Timestamps

	// Relationships
	Parent   *BusinessUnit  `json:"parent,omitempty" gorm:"foreignKey:ParentCode;references:Code"`
	Children []BusinessUnit `json:"children,omitempty" gorm:"foreignKey:ParentCode;references:Code"`
}

// TableName returns the table name for BusinessUnit
func (BusinessUnit) TableName() string {
	return "business_units"
}
