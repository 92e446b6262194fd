package postgres

import (
	"errors"

	"github.com/santhosh9133/sterline-hr/internal/city"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"gorm.io/gorm"
)

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) city.RepositoryAPI {
	return &CityRepository{db: db}
}

func (r *CityRepository) List(params city.ListParams) ([]*catalog.City, int64, error) {
	query := r.db.Model(&catalog.City{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(city_id) LIKE LOWER(?)", like, like)
	}
	if params.StateID != "" {
		query = query.Where("state_id = ?", params.StateID)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*catalog.City
	err := query.
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *CityRepository) GetActive() ([]*catalog.City, error) {
	var rows []*catalog.City
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *CityRepository) GetByID(id string) (*catalog.City, error) {
	var row catalog.City
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *CityRepository) GetByState(stateID string) ([]*catalog.City, error) {
	var rows []*catalog.City
	err := r.db.Where("state_id = ? AND is_active = ?", stateID, true).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *CityRepository) GetByNameInState(name, stateID string) (*catalog.City, error) {
	var row catalog.City
	err := r.db.Where("LOWER(name) = LOWER(?) AND state_id = ?", name, stateID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *CityRepository) GetByNameInStateExcluding(name, stateID, excludeID string) (*catalog.City, error) {
	var row catalog.City
	err := r.db.Where("LOWER(name) = LOWER(?) AND state_id = ? AND id <> ?", name, stateID, excludeID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *CityRepository) Create(c *catalog.City) error {
	return r.db.Create(c).Error
}

func (r *CityRepository) Update(c *catalog.City) error {
	return r.db.Save(c).Error
}

func (r *CityRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&catalog.City{}).Error
}

func (r *CityRepository) GetState(stateID string) (*catalog.State, error) {
	var row catalog.State
	err := r.db.Where("state_id = ?", stateID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
