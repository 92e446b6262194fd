package state

import (
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/common/validation"
)

type CreateStateDTO struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	CountryID string `json:"countryId" validate:"required"`
	IsActive  *bool  `json:"isActive"`
}

func (d CreateStateDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type UpdateStateDTO struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	CountryID string `json:"countryId" validate:"required"`
	IsActive  *bool  `json:"isActive"`
}

func (d UpdateStateDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type ListParams struct {
	Page      int
	Limit     int
	Search    string
	CountryID string
	IsActive  *bool
}
