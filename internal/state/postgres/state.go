package postgres

import (
	"errors"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/state"
	"gorm.io/gorm"
)

type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) state.RepositoryAPI {
	return &StateRepository{db: db}
}

func (r *StateRepository) List(params state.ListParams) ([]*catalog.State, int64, error) {
	query := r.db.Model(&catalog.State{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(state_id) LIKE LOWER(?) OR LOWER(country) LIKE LOWER(?)", like, like, like)
	}
	if params.CountryID != "" {
		query = query.Where("country_id = ?", params.CountryID)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*catalog.State
	err := query.
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *StateRepository) GetActive() ([]*catalog.State, error) {
	var rows []*catalog.State
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *StateRepository) GetByID(id string) (*catalog.State, error) {
	var row catalog.State
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *StateRepository) GetByCountry(countryID string) ([]*catalog.State, error) {
	var rows []*catalog.State
	err := r.db.Where("country_id = ? AND is_active = ?", countryID, true).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *StateRepository) GetByNameInCountry(name, countryID string) (*catalog.State, error) {
	var row catalog.State
	err := r.db.Where("LOWER(name) = LOWER(?) AND country_id = ?", name, countryID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *StateRepository) GetByNameInCountryExcluding(name, countryID, excludeID string) (*catalog.State, error) {
	var row catalog.State
	err := r.db.Where("LOWER(name) = LOWER(?) AND country_id = ? AND id <> ?", name, countryID, excludeID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *StateRepository) Create(s *catalog.State) error {
	return r.db.Create(s).Error
}

func (r *StateRepository) Update(s *catalog.State) error {
	return r.db.Save(s).Error
}

func (r *StateRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&catalog.State{}).Error
}

func (r *StateRepository) GetCountry(countryID string) (*catalog.Country, error) {
	var row catalog.Country
	err := r.db.Where("country_id = ?", countryID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
