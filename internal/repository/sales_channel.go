package repository

import (
	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"

	"gorm.io/gorm"
)

// SalesChannelRepository handles database operations for sales channels
type SalesChannelRepository struct {
	db *gorm.DB
}

// Ensure SalesChannelRepository implements SalesChannelRepositoryInterface
var _ SalesChannelRepositoryInterface = (*SalesChannelRepository)(nil)

// NewSalesChannelRepository creates a new sales channel repository
func NewSalesChannelRepository(db *gorm.DB) *SalesChannelRepository {
	return &SalesChannelRepository{db: db}
}

// Create creates a new sales channel. A duplicate code surfaces as
// ErrSalesChannelExists via the primary-key constraint.
func (r *SalesChannelRepository) Create(channel *models.SalesChannel) error {
	if err := r.db.Create(channel).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrSalesChannelExists
		}
		return err
	}
	return nil
}

// GetByCode retrieves a sales channel by its code
func (r *SalesChannelRepository) GetByCode(code string) (*models.SalesChannel, error) {
	var channel models.SalesChannel
	err := r.db.First(&channel, "sales_channel_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// GetAll retrieves sales channels with pagination
func (r *SalesChannelRepository) GetAll(limit, offset int) ([]models.SalesChannel, int64, error) {
	var channels []models.SalesChannel
	var total int64

	if err := r.db.Model(&models.SalesChannel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Limit(limit).Offset(offset).Order("sales_channel_code ASC").Find(&channels).Error; err != nil {
		return nil, 0, err
	}

	return channels, total, nil
}

// CodeExists checks if a sales channel code is already taken
func (r *SalesChannelRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SalesChannel{}).Where("sales_channel_code = ?", code).Count(&count).Error
	return count > 0, err
}

// Update updates a sales channel
func (r *SalesChannelRepository) Update(channel *models.SalesChannel) error {
	return r.db.Save(channel).Error
}

// Delete deletes a sales channel by code
func (r *SalesChannelRepository) Delete(code string) error {
	return r.db.Delete(&models.SalesChannel{}, "sales_channel_code = ?", code).Error
}
