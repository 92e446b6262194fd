package city

import (
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/common/validation"
)

type CreateCityDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	StateID  string `json:"stateId" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

func (d CreateCityDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type UpdateCityDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	StateID  string `json:"stateId" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

func (d UpdateCityDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type ListParams struct {
	Page     int
	Limit    int
	Search   string
	StateID  string
	IsActive *bool
}
