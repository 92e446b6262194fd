package country

import (
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/common/validation"
)

type CreateCountryDTO struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

func (d CreateCountryDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type UpdateCountryDTO struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

func (d UpdateCountryDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

// ListParams carries the pagination and filter query values.
type ListParams struct {
	Page     int
	Limit    int
	Search   string
	IsActive *bool
}
