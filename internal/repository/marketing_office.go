package repository

import (
	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"

	"gorm.io/gorm"
)

// MarketingOfficeRepository handles database operations for marketing offices
type MarketingOfficeRepository struct {
	db *gorm.DB
}

// Ensure MarketingOfficeRepository implements MarketingOfficeRepositoryInterface
var _ MarketingOfficeRepositoryInterface = (*MarketingOfficeRepository)(nil)

// NewMarketingOfficeRepository creates a new marketing office repository
func NewMarketingOfficeRepository(db *gorm.DB) *MarketingOfficeRepository {
	return &MarketingOfficeRepository{db: db}
}

// Create creates a new marketing office. A duplicate code surfaces as
// ErrMarketingOfficeExists via the primary-key constraint.
func (r *MarketingOfficeRepository) Create(office *models.MarketingOffice) error {
	if err := r.db.Create(office).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrMarketingOfficeExists
		}
		return err
	}
	return nil
}

// GetByCode retrieves a marketing office by its code
func (r *MarketingOfficeRepository) GetByCode(code string) (*models.MarketingOffice, error) {
	var office models.MarketingOffice
	err := r.db.First(&office, "marketing_office_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &office, nil
}

// GetAll retrieves marketing offices with an optional country filter and pagination
func (r *MarketingOfficeRepository) GetAll(country string, limit, offset int) ([]models.MarketingOffice, int64, error) {
	var offices []models.MarketingOffice
	var total int64

	query := r.db.Model(&models.MarketingOffice{})
	if country != "" {
		query = query.Where("country = ?", country)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("marketing_office_code ASC").Find(&offices).Error; err != nil {
		return nil, 0, err
	}

	return offices, total, nil
}

// CodeExists checks if a marketing office code is already taken
func (r *MarketingOfficeRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.MarketingOffice{}).Where("marketing_office_code = ?", code).Count(&count).Error
	return count > 0, err
}

// Update updates a marketing office
func (r *MarketingOfficeRepository) Update(office *models.MarketingOffice) error {
	return r.db.Save(office).Error
}

// Delete deletes a marketing office by code
func (r *MarketingOfficeRepository) Delete(code string) error {
	return r.db.Delete(&models.MarketingOffice{}, "marketing_office_code = ?", code).Error
}
