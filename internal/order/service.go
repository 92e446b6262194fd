package order

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errors "github.com/santhosh9133/sterline-hr/internal"
	ordermodel "github.com/santhosh9133/sterline-hr/internal/core/datamodel/order"
)

type RepositoryAPI interface {
	List() ([]*ordermodel.Order, error)
	GetByID(id string) (*ordermodel.Order, error)
	GetByUser(userID string) ([]*ordermodel.Order, error)
	GetByFoodItem(foodItem string) ([]*ordermodel.Order, error)
	Create(o *ordermodel.Order) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(dto CreateOrderDTO) (*OrderResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &ordermodel.Order{
		ID:       uuid.NewString(),
		FoodItem: strings.TrimSpace(dto.FoodItem),
		Amount:   strings.TrimSpace(dto.Amount),
		UserID:   dto.UserID,
	}

	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create order", "error", err)
		return nil, errors.NewInternalError("Server error while creating order", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) List() ([]OrderResponse, error) {
	rows, err := s.repo.List()
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching orders", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) GetByUser(userID string) ([]OrderResponse, error) {
	rows, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching orders", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) GetByFoodItem(foodItem string) ([]OrderResponse, error) {
	rows, err := s.repo.GetByFoodItem(foodItem)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching orders", err)
	}
	return FromDataModels(rows), nil
}
