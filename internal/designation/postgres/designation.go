package postgres

import (
	"errors"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/designation"
	"gorm.io/gorm"
)

type DesignationRepository struct {
	db *gorm.DB
}

func NewDesignationRepository(db *gorm.DB) designation.RepositoryAPI {
	return &DesignationRepository{db: db}
}

func (r *DesignationRepository) List(params designation.ListParams) ([]*catalog.Designation, int64, error) {
	query := r.db.Model(&catalog.Designation{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(designation_id) LIKE LOWER(?)", like, like)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*catalog.Designation
	err := query.
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *DesignationRepository) GetActive() ([]*catalog.Designation, error) {
	var rows []*catalog.Designation
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *DesignationRepository) GetByID(id string) (*catalog.Designation, error) {
	var row catalog.Designation
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *DesignationRepository) GetByName(name string) (*catalog.Designation, error) {
	var row catalog.Designation
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *DesignationRepository) GetByNameExcluding(name, excludeID string) (*catalog.Designation, error) {
	var row catalog.Designation
	err := r.db.Where("LOWER(name) = LOWER(?) AND id <> ?", name, excludeID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *DesignationRepository) Create(d *catalog.Designation) error {
	return r.db.Create(d).Error
}

func (r *DesignationRepository) Update(d *catalog.Designation) error {
	return r.db.Save(d).Error
}

func (r *DesignationRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&catalog.Designation{}).Error
}
