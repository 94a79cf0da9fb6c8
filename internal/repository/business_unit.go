package repository

import (
	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"

	"gorm.io/gorm"
)

// BusinessUnitRepository handles database operations for business units
type BusinessUnitRepository struct {
	db *gorm.DB
}

// Ensure BusinessUnitRepository implements BusinessUnitRepositoryInterface
var _ BusinessUnitRepositoryInterface = (*BusinessUnitRepository)(nil)

// NewBusinessUnitRepository creates a new business unit repository
func NewBusinessUnitRepository(db *gorm.DB) *BusinessUnitRepository {
	return &BusinessUnitRepository{db: db}
}

// Create creates a new business unit. A duplicate code surfaces as
// ErrBusinessUnitExists via the primary-key constraint.
func (r *BusinessUnitRepository) Create(unit *models.BusinessUnit) error {
	if err := r.db.Create(unit).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrBusinessUnitExists
		}
		return err
	}
	return nil
}

// GetByCode retrieves a business unit by its code
func (r *BusinessUnitRepository) GetByCode(code string) (*models.BusinessUnit, error) {
	var unit models.BusinessUnit
	err := r.db.First(&unit, "business_unit_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetAll retrieves business units with pagination
func (r *BusinessUnitRepository) GetAll(limit, offset int) ([]models.BusinessUnit, int64, error) {
	var units []models.BusinessUnit
	var total int64

	if err := r.db.Model(&models.BusinessUnit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Limit(limit).Offset(offset).Order("business_unit_code ASC").Find(&units).Error; err != nil {
		return nil, 0, err
	}

	return units, total, nil
}

// GetChildren retrieves the direct children of a business unit
func (r *BusinessUnitRepository) GetChildren(parentCode string) ([]models.BusinessUnit, error) {
	var units []models.BusinessUnit
	err := r.db.Where("parent_code = ?", parentCode).Order("business_unit_code ASC").Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

// CodeExists checks if a business unit code is already taken
func (r *BusinessUnitRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BusinessUnit{}).Where("business_unit_code = ?", code).Count(&count).Error
	return count > 0, err
}

// Update updates a business unit
func (r *BusinessUnitRepository) Update(unit *models.BusinessUnit) error {
	return r.db.Save(unit).Error
}

// Delete deletes a business unit by code
func (r *BusinessUnitRepository) Delete(code string) error {
	return r.db.Delete(&models.BusinessUnit{}, "business_unit_code = ?", code).Error
}
