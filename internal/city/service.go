package city

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/sequence"
)

type RepositoryAPI interface {
	List(params ListParams) ([]*catalog.City, int64, error)
	GetActive() ([]*catalog.City, error)
	GetByID(id string) (*catalog.City, error)
	GetByState(stateID string) ([]*catalog.City, error)
	GetByNameInState(name, stateID string) (*catalog.City, error)
	GetByNameInStateExcluding(name, stateID, excludeID string) (*catalog.City, error)
	Create(c *catalog.City) error
	Update(c *catalog.City) error
	Delete(id string) error

	// Parent lookup keyed by the generated state identifier.
	GetState(stateID string) (*catalog.State, error)
}

type Service struct {
	repo   RepositoryAPI
	seq    *sequence.Generator
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, seq *sequence.Generator, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		seq:    seq,
		logger: logger,
	}
}

func (s *Service) List(params ListParams) ([]CityResponse, int64, error) {
	rows, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list cities", "error", err)
		return nil, 0, errors.NewInternalError("Server error while fetching cities", err)
	}
	return FromDataModels(rows), total, nil
}

func (s *Service) GetActive() ([]CityResponse, error) {
	rows, err := s.repo.GetActive()
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching cities", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) GetByID(id string) (*CityResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching city", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("City not found", errors.ErrCodeRecordNotFound)
	}
	resp := FromDataModel(row)
	return &resp, nil
}

// GetByState lists the cities referencing the given state identifier.
func (s *Service) GetByState(stateID string) ([]CityResponse, error) {
	state, err := s.repo.GetState(stateID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching cities", err)
	}
	if state == nil {
		return nil, errors.NewNotFoundError("State not found", errors.ErrCodeRecordNotFound)
	}

	rows, err := s.repo.GetByState(stateID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching cities", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) Create(dto CreateCityDTO) (*CityResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)

	state, err := s.repo.GetState(dto.StateID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating city", err)
	}
	if state == nil {
		return nil, errors.NewValidationError("State not found", errors.ErrCodeRecordNotFound)
	}

	existing, err := s.repo.GetByNameInState(name, dto.StateID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating city", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("City with this name already exists in this state", errors.ErrCodeDuplicateRecord)
	}

	cityID, err := s.seq.NextSeeded("cities", "CTY",
		sequence.MaxSuffixSeeder("cities", "city_id", "CTY"))
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating city", err)
	}

	row := &catalog.City{
		ID:       uuid.NewString(),
		CityID:   cityID,
		Name:     name,
		StateID:  state.StateID,
		IsActive: true,
	}
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Create(row); err != nil {
		if errors.IsDuplicateKey(err) {
			return nil, errors.NewConflictError("City with this name already exists in this state", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewInternalError("Server error while creating city", err)
	}

	s.logger.Info("city created", "city_id", row.CityID, "name", row.Name, "state_id", row.StateID)
	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Update(id string, dto UpdateCityDTO) (*CityResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating city", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("City not found", errors.ErrCodeRecordNotFound)
	}

	name := strings.TrimSpace(dto.Name)

	state, err := s.repo.GetState(dto.StateID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating city", err)
	}
	if state == nil {
		return nil, errors.NewValidationError("State not found", errors.ErrCodeRecordNotFound)
	}

	taken, err := s.repo.GetByNameInStateExcluding(name, dto.StateID, id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating city", err)
	}
	if taken != nil {
		return nil, errors.NewConflictError("City with this name already exists in this state", errors.ErrCodeDuplicateRecord)
	}

	row.Name = name
	row.StateID = state.StateID
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating city", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Delete(id string) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return errors.NewInternalError("Server error while deleting city", err)
	}
	if row == nil {
		return errors.NewNotFoundError("City not found", errors.ErrCodeRecordNotFound)
	}

	if err := s.repo.Delete(id); err != nil {
		return errors.NewInternalError("Server error while deleting city", err)
	}

	s.logger.Info("city deleted", "city_id", row.CityID)
	return nil
}

func (s *Service) ToggleStatus(id string) (*CityResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating city", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("City not found", errors.ErrCodeRecordNotFound)
	}

	row.IsActive = !row.IsActive
	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating city", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}
