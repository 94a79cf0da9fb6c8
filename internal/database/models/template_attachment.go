package models

import (
	"github.com/google/uuid"
)

// TemplateAttachment stores an uploaded file attached to a template.
// The (template_id, checksum) unique index makes ingestion idempotent by
// content: re-uploading identical bytes can never create a second row.
type TemplateAttachment struct {
	BaseModel
	TemplateID  uuid.UUID `json:"templateId" gorm:"column:template_id;type:uuid;not null;index;uniqueIndex:idx_template_checksum" validate:"required"`
	FileName    string    `json:"fileName" gorm:"column:file_name;not null;size:255" validate:"required,max=255"`
	ContentType string    `json:"contentType" gorm:"column:content_type;size:100" validate:"max=100"`
	SizeBytes   int64     `json:"sizeBytes" gorm:"column:size_bytes;not null"`
	Checksum    string    `json:"checksum" gorm:"column:checksum;size:64;not null;uniqueIndex:idx_template_checksum"` // sha256 hex
	Content     []byte    `json:"-" gorm:"column:content;type:bytea"`
}

// TableName returns the table name for TemplateAttachment
func (TemplateAttachment) TableName() string {
	return "template_attachments"
}
