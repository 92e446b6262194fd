package order

import (
	"time"

	ordermodel "github.com/santhosh9133/sterline-hr/internal/core/datamodel/order"
)

// OrderResponse is the wire shape for a food order.
type OrderResponse struct {
	ID        string    `json:"id"`
	FoodItem  string    `json:"foodItem"`
	Amount    string    `json:"amount"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromDataModel(o *ordermodel.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		FoodItem:  o.FoodItem,
		Amount:    o.Amount,
		UserID:    o.UserID,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromDataModels(rows []*ordermodel.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	return out
}
