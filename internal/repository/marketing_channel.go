package repository

import (
	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketingChannelRepository handles database operations for marketing channels
type MarketingChannelRepository struct {
	db *gorm.DB
}

// Ensure MarketingChannelRepository implements MarketingChannelRepositoryInterface
var _ MarketingChannelRepositoryInterface = (*MarketingChannelRepository)(nil)

// NewMarketingChannelRepository creates a new marketing channel repository
func NewMarketingChannelRepository(db *gorm.DB) *MarketingChannelRepository {
	return &MarketingChannelRepository{db: db}
}

// Create creates a new marketing channel. A duplicate name surfaces as
// ErrMarketingChannelExists via the unique index.
func (r *MarketingChannelRepository) Create(channel *models.MarketingChannel) error {
	if err := r.db.Create(channel).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrMarketingChannelExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a marketing channel by ID
func (r *MarketingChannelRepository) GetByID(id uuid.UUID) (*models.MarketingChannel, error) {
	var channel models.MarketingChannel
	err := r.db.First(&channel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// GetByName retrieves a marketing channel by its unique name
func (r *MarketingChannelRepository) GetByName(name string) (*models.MarketingChannel, error) {
	var channel models.MarketingChannel
	err := r.db.First(&channel, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// GetAll retrieves marketing channels with optional medium filter and pagination
func (r *MarketingChannelRepository) GetAll(medium *models.ChannelMedium, limit, offset int) ([]models.MarketingChannel, int64, error) {
	var channels []models.MarketingChannel
	var total int64

	query := r.db.Model(&models.MarketingChannel{})
	if medium != nil {
		query = query.Where("medium = ?", *medium)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("name ASC").Find(&channels).Error; err != nil {
		return nil, 0, err
	}

	return channels, total, nil
}

// Update updates a marketing channel
func (r *MarketingChannelRepository) Update(channel *models.MarketingChannel) error {
	if err := r.db.Save(channel).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrMarketingChannelExists
		}
		return err
	}
	return nil
}

// Delete deletes a marketing channel by ID
func (r *MarketingChannelRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MarketingChannel{}, "id = ?", id).Error
}
