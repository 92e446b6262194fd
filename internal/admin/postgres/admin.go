package postgres

import (
	"errors"
	"time"

	"github.com/santhosh9133/sterline-hr/internal/admin"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) admin.RepositoryAPI {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) List(params admin.ListParams) ([]*account.Admin, int64, error) {
	query := r.db.Model(&account.Admin{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(username) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			like, like, like, like)
	}
	if params.Role != "" {
		query = query.Where("role = ?", params.Role)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*account.Admin
	err := query.
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *AdminRepository) GetByID(id string) (*account.Admin, error) {
	var row account.Admin
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *AdminRepository) GetByEmail(email string) (*account.Admin, error) {
	var row account.Admin
	err := r.db.Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *AdminRepository) FindByIdentity(email, username, mobile string) (*account.Admin, error) {
	var row account.Admin
	err := r.db.Where("email = ? OR username = ? OR mobile = ?", email, username, mobile).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *AdminRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&account.Admin{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *AdminRepository) Create(a *account.Admin) error {
	return r.db.Create(a).Error
}

func (r *AdminRepository) Update(a *account.Admin) error {
	return r.db.Save(a).Error
}

func (r *AdminRepository) SetActive(id string, active bool) error {
	return r.db.Model(&account.Admin{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *AdminRepository) UpdatePassword(id, passwordHash string) error {
	return r.db.Model(&account.Admin{}).Where("id = ?", id).Update("password_hash", passwordHash).Error
}

func (r *AdminRepository) UpdateLastLogin(id string, at time.Time) error {
	return r.db.Model(&account.Admin{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *AdminRepository) Stats(since time.Time) (*admin.StatsOverview, error) {
	stats := &admin.StatsOverview{}

	if err := r.db.Model(&account.Admin{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&account.Admin{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	stats.Inactive = stats.Total - stats.Active

	if err := r.db.Model(&account.Admin{}).
		Where("created_at >= ?", since).
		Count(&stats.RecentRegistrations).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&account.Admin{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("count DESC").
		Scan(&stats.ByRole).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
