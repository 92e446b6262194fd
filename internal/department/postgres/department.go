package postgres

import (
	"errors"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/department"
	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) List(params department.ListParams) ([]*catalog.Department, int64, error) {
	query := r.db.Model(&catalog.Department{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(department_id) LIKE LOWER(?)", like, like)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*catalog.Department
	err := query.
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *DepartmentRepository) GetActive() ([]*catalog.Department, error) {
	var rows []*catalog.Department
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *DepartmentRepository) GetByID(id string) (*catalog.Department, error) {
	var row catalog.Department
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *DepartmentRepository) GetByName(name string) (*catalog.Department, error) {
	var row catalog.Department
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *DepartmentRepository) GetByNameExcluding(name, excludeID string) (*catalog.Department, error) {
	var row catalog.Department
	err := r.db.Where("LOWER(name) = LOWER(?) AND id <> ?", name, excludeID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *DepartmentRepository) Create(d *catalog.Department) error {
	return r.db.Create(d).Error
}

func (r *DepartmentRepository) Update(d *catalog.Department) error {
	return r.db.Save(d).Error
}

func (r *DepartmentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&catalog.Department{}).Error
}

func (r *DepartmentRepository) CountActiveEmployees(departmentName string) (int64, error) {
	var count int64
	err := r.db.Model(&account.Employee{}).
		Where("LOWER(department) = LOWER(?) AND is_active = ?", departmentName, true).
		Count(&count).Error
	return count, err
}

func (r *DepartmentRepository) ListEmployees(departmentName string) ([]department.DepartmentEmployee, error) {
	var employees []*account.Employee
	err := r.db.
		Where("LOWER(department) = LOWER(?)", departmentName).
		Order("first_name ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}

	out := make([]department.DepartmentEmployee, 0, len(employees))
	for _, e := range employees {
		out = append(out, department.DepartmentEmployee{
			ID:          e.ID,
			EmpCode:     e.EmpCode,
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			Email:       e.Email,
			Designation: e.Designation,
			IsActive:    e.IsActive,
		})
	}
	return out, nil
}

func (r *DepartmentRepository) SetEmployeeCount(id string, count int64) error {
	return r.db.Model(&catalog.Department{}).Where("id = ?", id).Update("employee_count", count).Error
}
