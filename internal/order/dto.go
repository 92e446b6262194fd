package order

import (
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/common/validation"
)

type CreateOrderDTO struct {
	FoodItem string `json:"foodItem" validate:"required,min=1,max=100"`
	Amount   string `json:"amount" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
}

func (d CreateOrderDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

type UpdateOrderDTO struct {
	FoodItem *string `json:"foodItem" validate:"omitempty,min=1,max=100"`
	Amount   *string `json:"amount"`
}

func (d UpdateOrderDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}
