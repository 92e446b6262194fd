package postgres

import (
	"errors"
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
	"gorm.io/gorm"
)

// UserRepository persists user accounts with gorm.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(email string) (*account.User, error) {
	var user account.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id string) (*account.User, error) {
	var user account.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmailOrUserName(email, userName string) (*account.User, error) {
	var user account.User
	err := r.db.Where("email = ? OR user_name = ?", email, userName).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUserNameExcluding(userName, excludeID string) (*account.User, error) {
	var user account.User
	err := r.db.Where("user_name = ? AND id <> ?", userName, excludeID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(u *account.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) UpdateUserName(id, userName string) (*account.User, error) {
	res := r.db.Model(&account.User{}).Where("id = ?", id).Update("user_name", userName)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *UserRepository) UpdatePassword(id, passwordHash string) error {
	return r.db.Model(&account.User{}).Where("id = ?", id).Update("password_hash", passwordHash).Error
}

func (r *UserRepository) UpdateLastLogin(id string, at time.Time) error {
	return r.db.Model(&account.User{}).Where("id = ?", id).Update("last_login", at).Error
}
