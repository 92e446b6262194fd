package auth

import (
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/common/validation"
)

// RegisterDTO is the payload for POST /api/auth/register.
type RegisterDTO struct {
	UserName        string `json:"userName" validate:"required,min=3,max=30"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (d RegisterDTO) Validate() *errors.AppError {
	if err := validation.Struct(d); err != nil {
		return err
	}
	if d.Password != d.ConfirmPassword {
		return errors.NewValidationError("Passwords do not match", errors.ErrCodePasswordMismatch)
	}
	return nil
}

// LoginDTO is the payload for POST /api/auth/login.
type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (d LoginDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

// UpdateProfileDTO is the payload for PUT /api/auth/profile.
type UpdateProfileDTO struct {
	UserName string `json:"userName" validate:"required,min=3,max=30"`
}

func (d UpdateProfileDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

// ChangePasswordDTO is the payload for PUT /api/auth/change-password.
type ChangePasswordDTO struct {
	CurrentPassword    string `json:"currentPassword" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required,min=6"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required"`
}

func (d ChangePasswordDTO) Validate() *errors.AppError {
	if err := validation.Struct(d); err != nil {
		return err
	}
	if d.NewPassword != d.ConfirmNewPassword {
		return errors.NewValidationError("New passwords do not match", errors.ErrCodePasswordMismatch)
	}
	return nil
}
