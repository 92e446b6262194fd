package state

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/sequence"
)

type RepositoryAPI interface {
	List(params ListParams) ([]*catalog.State, int64, error)
	GetActive() ([]*catalog.State, error)
	GetByID(id string) (*catalog.State, error)
	GetByCountry(countryID string) ([]*catalog.State, error)
	GetByNameInCountry(name, countryID string) (*catalog.State, error)
	GetByNameInCountryExcluding(name, countryID, excludeID string) (*catalog.State, error)
	Create(s *catalog.State) error
	Update(s *catalog.State) error
	Delete(id string) error

	// Parent lookup keyed by the generated country identifier.
	GetCountry(countryID string) (*catalog.Country, error)
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

func (s *Service) List(params ListParams) ([]StateResponse, int64, error) {
	rows, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list states", "error", err)
		return nil, 0, errors.NewInternalError("Server error while fetching states", err)
	}
	return FromDataModels(rows), total, nil
}

func (s *Service) GetActive() ([]StateResponse, error) {
	rows, err := s.repo.GetActive()
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching states", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) GetByID(id string) (*StateResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching state", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("State not found", errors.ErrCodeRecordNotFound)
	}
	resp := FromDataModel(row)
	return &resp, nil
}

// GetByCountry lists the states referencing the given country identifier.
func (s *Service) GetByCountry(countryID string) ([]StateResponse, error) {
	country, err := s.repo.GetCountry(countryID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching states", err)
	}
	if country == nil {
		return nil, errors.NewNotFoundError("Country not found", errors.ErrCodeRecordNotFound)
	}

	rows, err := s.repo.GetByCountry(countryID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching states", err)
	}
	return FromDataModels(rows), nil
}

// Create validates the parent country and the name's uniqueness within it,
// then assigns the next ST identifier.
func (s *Service) Create(dto CreateStateDTO) (*StateResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)

	country, err := s.repo.GetCountry(dto.CountryID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating state", err)
	}
	if country == nil {
		return nil, errors.NewValidationError("Country not found", errors.ErrCodeRecordNotFound)
	}

	existing, err := s.repo.GetByNameInCountry(name, dto.CountryID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating state", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("State with this name already exists in this country", errors.ErrCodeDuplicateRecord)
	}

	stateID, err := s.seq.NextSeeded("states", "ST",
		sequence.MaxSuffixSeeder("states", "state_id", "ST"))
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating state", err)
	}

	row := &catalog.State{
		ID:        uuid.NewString(),
		StateID:   stateID,
		Name:      name,
		CountryID: country.CountryID,
		Country:   country.Name,
		IsActive:  true,
	}
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Create(row); err != nil {
		if errors.IsDuplicateKey(err) {
			return nil, errors.NewConflictError("State with this name already exists in this country", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewInternalError("Server error while creating state", err)
	}

	s.logger.Info("state created", "state_id", row.StateID, "name", row.Name, "country", row.Country)
	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Update(id string, dto UpdateStateDTO) (*StateResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating state", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("State not found", errors.ErrCodeRecordNotFound)
	}

	name := strings.TrimSpace(dto.Name)

	country, err := s.repo.GetCountry(dto.CountryID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating state", err)
	}
	if country == nil {
		return nil, errors.NewValidationError("Country not found", errors.ErrCodeRecordNotFound)
	}

	taken, err := s.repo.GetByNameInCountryExcluding(name, dto.CountryID, id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating state", err)
	}
	if taken != nil {
		return nil, errors.NewConflictError("State with this name already exists in this country", errors.ErrCodeDuplicateRecord)
	}

	row.Name = name
	row.CountryID = country.CountryID
	row.Country = country.Name
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating state", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Delete(id string) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return errors.NewInternalError("Server error while deleting state", err)
	}
	if row == nil {
		return errors.NewNotFoundError("State not found", errors.ErrCodeRecordNotFound)
	}

	if err := s.repo.Delete(id); err != nil {
		return errors.NewInternalError("Server error while deleting state", err)
	}

	s.logger.Info("state deleted", "state_id", row.StateID)
	return nil
}

func (s *Service) ToggleStatus(id string) (*StateResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating state", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("State not found", errors.ErrCodeRecordNotFound)
	}

	row.IsActive = !row.IsActive
	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating state", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}
