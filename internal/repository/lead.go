package repository

import (
	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// Ensure LeadRepository implements LeadRepositoryInterface
var _ LeadRepositoryInterface = (*LeadRepository)(nil)

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead. A duplicate email surfaces as ErrLeadExists via
// the unique index.
func (r *LeadRepository) Create(lead *models.Lead) error {
	if err := r.db.Create(lead).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrLeadExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByEmail retrieves a lead by email
func (r *LeadRepository) GetByEmail(email string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetAll retrieves leads with optional status filter and pagination
func (r *LeadRepository) GetAll(status *models.LeadStatus, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// Search searches leads by name, email or company
func (r *LeadRepository) Search(query string, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	like := "%" + query + "%"
	searchQuery := r.db.Model(&models.Lead{}).
		Where("(first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR company ILIKE ?)", like, like, like, like)

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := searchQuery.Limit(limit).Offset(offset).Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// Update updates a lead
func (r *LeadRepository) Update(lead *models.Lead) error {
	if err := r.db.Save(lead).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrLeadExists
		}
		return err
	}
	return nil
}

// Delete deletes a lead by ID
func (r *LeadRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Lead{}, "id = ?", id).Error
}
