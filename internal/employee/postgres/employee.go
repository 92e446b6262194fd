package postgres

import (
	"errors"
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
	"github.com/santhosh9133/sterline-hr/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(params employee.ListParams) ([]*account.Employee, int64, error) {
	query := r.db.Model(&account.Employee{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(emp_code) LIKE LOWER(?) OR contact_number LIKE ?",
			like, like, like, like, like)
	}
	if params.Department != "" {
		query = query.Where("LOWER(department) = LOWER(?)", params.Department)
	}
	if params.Designation != "" {
		query = query.Where("LOWER(designation) = LOWER(?)", params.Designation)
	}
	if params.Gender != "" {
		query = query.Where("gender = ?", params.Gender)
	}
	if params.Shift != "" {
		query = query.Where("shift = ?", params.Shift)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*account.Employee
	err := query.
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *EmployeeRepository) GetByID(id string) (*account.Employee, error) {
	var row account.Employee
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *EmployeeRepository) GetByEmail(email string) (*account.Employee, error) {
	var row account.Employee
	err := r.db.Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *EmployeeRepository) GetByEmpCode(empCode string) (*account.Employee, error) {
	var row account.Employee
	err := r.db.Where("emp_code = ?", empCode).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *EmployeeRepository) FindByEmailOrEmpCode(email, empCode string) (*account.Employee, error) {
	var row account.Employee
	err := r.db.Where("email = ? OR emp_code = ?", email, empCode).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *EmployeeRepository) GetByEmailExcluding(email, excludeID string) (*account.Employee, error) {
	var row account.Employee
	err := r.db.Where("email = ? AND id <> ?", email, excludeID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *EmployeeRepository) Create(e *account.Employee) error {
	return r.db.Create(e).Error
}

func (r *EmployeeRepository) Update(e *account.Employee) error {
	return r.db.Save(e).Error
}

func (r *EmployeeRepository) SetActive(id string, active bool) error {
	return r.db.Model(&account.Employee{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *EmployeeRepository) HardDelete(id string) error {
	return r.db.Where("id = ?", id).Delete(&account.Employee{}).Error
}

func (r *EmployeeRepository) UpdateLastLogin(id string, at time.Time) error {
	return r.db.Model(&account.Employee{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *EmployeeRepository) Stats(since time.Time) (*employee.StatsOverview, error) {
	stats := &employee.StatsOverview{}

	if err := r.db.Model(&account.Employee{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&account.Employee{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	stats.Inactive = stats.Total - stats.Active

	if err := r.db.Model(&account.Employee{}).
		Where("joining_date >= ?", since).
		Count(&stats.RecentJoinings).Error; err != nil {
		return nil, err
	}

	groupBy := func(column string) ([]employee.GroupCount, error) {
		var out []employee.GroupCount
		err := r.db.Model(&account.Employee{}).
			Select(column+" AS name, COUNT(*) AS count").
			Where(column+" <> ''").
			Group(column).
			Order("count DESC").
			Scan(&out).Error
		return out, err
	}

	var err error
	if stats.ByDepartment, err = groupBy("department"); err != nil {
		return nil, err
	}
	if stats.ByDesignation, err = groupBy("designation"); err != nil {
		return nil, err
	}
	if stats.ByGender, err = groupBy("gender"); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *EmployeeRepository) DistinctDepartments() ([]string, error) {
	var names []string
	err := r.db.Model(&account.Employee{}).
		Where("is_active = ? AND department <> ''", true).
		Distinct("department").
		Order("department ASC").
		Pluck("department", &names).Error
	return names, err
}

func (r *EmployeeRepository) DistinctDesignations() ([]string, error) {
	var names []string
	err := r.db.Model(&account.Employee{}).
		Where("is_active = ? AND designation <> ''", true).
		Distinct("designation").
		Order("designation ASC").
		Pluck("designation", &names).Error
	return names, err
}
