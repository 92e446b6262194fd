package postgres

import (
	"errors"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/country"
	"gorm.io/gorm"
)

type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) country.RepositoryAPI {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) List(params country.ListParams) ([]*catalog.Country, int64, error) {
	query := r.db.Model(&catalog.Country{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(country_id) LIKE LOWER(?)", like, like)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*catalog.Country
	err := query.
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *CountryRepository) GetActive() ([]*catalog.Country, error) {
	var rows []*catalog.Country
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *CountryRepository) GetByID(id string) (*catalog.Country, error) {
	var row catalog.Country
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *CountryRepository) GetByName(name string) (*catalog.Country, error) {
	var row catalog.Country
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *CountryRepository) GetByNameExcluding(name, excludeID string) (*catalog.Country, error) {
	var row catalog.Country
	err := r.db.Where("LOWER(name) = LOWER(?) AND id <> ?", name, excludeID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *CountryRepository) Create(c *catalog.Country) error {
	return r.db.Create(c).Error
}

func (r *CountryRepository) Update(c *catalog.Country) error {
	return r.db.Save(c).Error
}

func (r *CountryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&catalog.Country{}).Error
}
