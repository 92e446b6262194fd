package admin

import (
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/common/validation"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
)

type RegisterDTO struct {
	FirstName   string             `json:"firstName" validate:"required,min=2,max=50"`
	LastName    string             `json:"lastName" validate:"required,min=1,max=50"`
	Username    string             `json:"username" validate:"required,min=3,max=30"`
	Email       string             `json:"email" validate:"required,email"`
	Mobile      string             `json:"mobile" validate:"required,min=7,max=20"`
	Password    string             `json:"password" validate:"required,min=6"`
	Role        string             `json:"role" validate:"omitempty,oneof=super_admin admin hr_admin"`
	Permissions account.StringList `json:"permissions"`
}

func (d RegisterDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (d LoginDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

// UpdateDTO whitelists the mutable profile fields; credential and audit
// columns are untouchable through this path.
type UpdateDTO struct {
	FirstName   *string             `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName    *string             `json:"lastName" validate:"omitempty,min=1,max=50"`
	Mobile      *string             `json:"mobile" validate:"omitempty,min=7,max=20"`
	ProfilePic  *string             `json:"profilePic"`
	Role        *string             `json:"role" validate:"omitempty,oneof=super_admin admin hr_admin"`
	Permissions *account.StringList `json:"permissions"`
}

func (d UpdateDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

func (d ChangePasswordDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type SetupSuperAdminDTO struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=1,max=50"`
	Username  string `json:"username" validate:"required,min=3,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required,min=7,max=20"`
	Password  string `json:"password" validate:"required,min=6"`
}

func (d SetupSuperAdminDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type ListParams struct {
	Page     int
	Limit    int
	Search   string
	Role     string
	IsActive *bool
}
