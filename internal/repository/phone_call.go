package repository

import (
	"crm-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhoneCallRepository handles database operations for phone calls
type PhoneCallRepository struct {
	db *gorm.DB
}

// Ensure PhoneCallRepository implements PhoneCallRepositoryInterface
var _ PhoneCallRepositoryInterface = (*PhoneCallRepository)(nil)

// NewPhoneCallRepository creates a new phone call repository
func NewPhoneCallRepository(db *gorm.DB) *PhoneCallRepository {
	return &PhoneCallRepository{db: db}
}

// Create creates a new phone call
func (r *PhoneCallRepository) Create(call *models.PhoneCall) error {
	return r.db.Create(call).Error
}

// GetByID retrieves a phone call by ID
func (r *PhoneCallRepository) GetByID(id uuid.UUID) (*models.PhoneCall, error) {
	var call models.PhoneCall
	err := r.db.First(&call, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// GetAll retrieves phone calls with optional status filter and pagination
func (r *PhoneCallRepository) GetAll(status *models.CallStatus, limit, offset int) ([]models.PhoneCall, int64, error) {
	var calls []models.PhoneCall
	var total int64

	query := r.db.Model(&models.PhoneCall{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("start_time DESC").Find(&calls).Error; err != nil {
		return nil, 0, err
	}

	return calls, total, nil
}

// GetByLeadID retrieves phone calls for a specific lead
func (r *PhoneCallRepository) GetByLeadID(leadID uuid.UUID, limit, offset int) ([]models.PhoneCall, int64, error) {
	var calls []models.PhoneCall
	var total int64

	query := r.db.Model(&models.PhoneCall{}).Where("lead_id = ?", leadID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("start_time DESC").Find(&calls).Error; err != nil {
		return nil, 0, err
	}

	return calls, total, nil
}

// Update updates a phone call
func (r *PhoneCallRepository) Update(call *models.PhoneCall) error {
	return r.db.Save(call).Error
}

// Delete deletes a phone call by ID
func (r *PhoneCallRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PhoneCall{}, "id = ?", id).Error
}
