package models

// User represents an authenticated portal user
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"column:email;uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null;size:100"`
	FullName     string `json:"fullName" gorm:"column:full_name;not null;size:200" validate:"required,max=200"`
	Role         string `json:"role" gorm:"column:role;not null;size:20;default:'agent'" validate:"omitempty,oneof=admin agent"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
