package models

// Template represents a reusable outbound message template
type Template struct {
	BaseModel
	Name     string         `json:"name" gorm:"column:name;uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Format   TemplateFormat `json:"format" gorm:"column:format;type:varchar(20);not null;default:'TEXT_BASED'"`
	Subject  string         `json:"subject" gorm:"column:subject;size:200" validate:"max=200"`
	Body     string         `json:"body" gorm:"column:body;type:text"`
	Language string         `json:"language" gorm:"column:language;size:2;not null;default:'en'" validate:"omitempty,len=2,alpha"`
	IsActive bool           `json:"isActive" gorm:"column:is_active;not null;default:true"`

	// Relationships
	Attachments []TemplateAttachment `json:"attachments,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Template
func (Template) TableName() string {
	return "templates"
}
