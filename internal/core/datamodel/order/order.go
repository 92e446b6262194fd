package order

import "time"

// Order is the legacy food-order record kept from the first iteration of
// the backend; it references the user collection by id.
type Order struct {
	ID        string    `gorm:"primaryKey;column:id"`
	FoodItem  string    `gorm:"column:food_item"`
	Amount    string    `gorm:"column:amount"`
	UserID    string    `gorm:"column:user_id;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Order) TableName() string { return "orders" }
