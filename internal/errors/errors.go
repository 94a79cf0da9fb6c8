package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this code"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSalesChannelNotFound     = &NotFoundError{Entity: "sales channel"}
	ErrTemplateNotFound         = &NotFoundError{Entity: "template"}
	ErrAttachmentNotFound       = &NotFoundError{Entity: "template attachment"}
	ErrBusinessUnitNotFound     = &NotFoundError{Entity: "business unit"}
	ErrMarketingChannelNotFound = &NotFoundError{Entity: "marketing channel"}
	ErrMarketingOfficeNotFound  = &NotFoundError{Entity: "marketing office"}
	ErrPhoneCallNotFound        = &NotFoundError{Entity: "phone call"}
	ErrLeadNotFound             = &NotFoundError{Entity: "lead"}
	ErrUserNotFound             = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrSalesChannelExists     = &AlreadyExistsError{Entity: "sales channel", Context: "with this code"}
	ErrTemplateExists         = &AlreadyExistsError{Entity: "template", Context: "with this name"}
	ErrBusinessUnitExists     = &AlreadyExistsError{Entity: "business unit", Context: "with this code"}
	ErrMarketingChannelExists = &AlreadyExistsError{Entity: "marketing channel", Context: "with this name"}
	ErrMarketingOfficeExists  = &AlreadyExistsError{Entity: "marketing office", Context: "with this code"}
	ErrLeadExists             = &AlreadyExistsError{Entity: "lead", Context: "with this email"}
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrImmutableCode           = &ValidationError{Field: "code", Message: "code cannot be changed after creation"}
	ErrEndBeforeStart          = &ValidationError{Field: "endTime", Message: "end time must be strictly after start time"}
	ErrBodyForbiddenForFormat  = &ValidationError{Field: "body", Message: "body must be empty for file based templates"}
	ErrBodyRequiredForFormat   = &ValidationError{Field: "body", Message: "body is required for text and html templates"}
	ErrAttachmentTooLarge      = &ValidationError{Field: "file", Message: "attachment exceeds the maximum allowed size"}
	ErrParentBusinessUnitCycle = &ValidationError{Field: "parentCode", Message: "business unit cannot be its own parent"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Configuration Errors
var (
	ErrLinkedInNotConfigured = &ConfigurationError{Message: "linkedin integration is not configured: LINKEDIN_CLIENT_ID or LINKEDIN_CLIENT_SECRET missing"}
	ErrLDAPNotConfigured     = &ConfigurationError{Message: "directory search is not configured: LDAP_HOST missing"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
