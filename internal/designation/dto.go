package designation

import (
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/common/validation"
)

type CreateDesignationDTO struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

func (d CreateDesignationDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type UpdateDesignationDTO struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

func (d UpdateDesignationDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type ListParams struct {
	Page     int
	Limit    int
	Search   string
	IsActive *bool
}
