package postgres

import (
	"errors"

	ordermodel "github.com/santhosh9133/sterline-hr/internal/core/datamodel/order"
	"github.com/santhosh9133/sterline-hr/internal/order"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) order.RepositoryAPI {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) List() ([]*ordermodel.Order, error) {
	var rows []*ordermodel.Order
	err := r.db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *OrderRepository) GetByID(id string) (*ordermodel.Order, error) {
	var row ordermodel.Order
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *OrderRepository) GetByUser(userID string) ([]*ordermodel.Order, error) {
	var rows []*ordermodel.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *OrderRepository) Create(o *ordermodel.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) GetByFoodItem(foodItem string) ([]*ordermodel.Order, error) {
	var rows []*ordermodel.Order
	err := r.db.Where("LOWER(food_item) = LOWER(?)", foodItem).Order("created_at DESC").Find(&rows).Error
	return rows, err
}
