package country

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/sequence"
)

type RepositoryAPI interface {
	List(params ListParams) ([]*catalog.Country, int64, error)
	GetActive() ([]*catalog.Country, error)
	GetByID(id string) (*catalog.Country, error)
	GetByName(name string) (*catalog.Country, error)
	GetByNameExcluding(name, excludeID string) (*catalog.Country, error)
	Create(c *catalog.Country) error
	Update(c *catalog.Country) error
	Delete(id string) error
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

func (s *Service) List(params ListParams) ([]CountryResponse, int64, error) {
	rows, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list countries", "error", err)
		return nil, 0, errors.NewInternalError("Server error while fetching countries", err)
	}
	return FromDataModels(rows), total, nil
}

func (s *Service) GetActive() ([]CountryResponse, error) {
	rows, err := s.repo.GetActive()
	if err != nil {
		s.logger.Error("failed to list active countries", "error", err)
		return nil, errors.NewInternalError("Server error while fetching countries", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) GetByID(id string) (*CountryResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching country", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Country not found", errors.ErrCodeRecordNotFound)
	}
	resp := FromDataModel(row)
	return &resp, nil
}

// Create validates the payload, checks the name case-insensitively and
// assigns the next CNT identifier before inserting.
func (s *Service) Create(dto CreateCountryDTO) (*CountryResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)

	existing, err := s.repo.GetByName(name)
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating country", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("Country with this name already exists", errors.ErrCodeDuplicateRecord)
	}

	countryID, err := s.seq.NextSeeded("countries", "CNT",
		sequence.MaxSuffixSeeder("countries", "country_id", "CNT"))
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating country", err)
	}

	row := &catalog.Country{
		ID:          uuid.NewString(),
		CountryID:   countryID,
		Name:        name,
		Description: strings.TrimSpace(dto.Description),
		IsActive:    true,
	}
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Create(row); err != nil {
		if errors.IsDuplicateKey(err) {
			return nil, errors.NewConflictError("Country with this name already exists", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewInternalError("Server error while creating country", err)
	}

	s.logger.Info("country created", "country_id", row.CountryID, "name", row.Name)
	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Update(id string, dto UpdateCountryDTO) (*CountryResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating country", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Country not found", errors.ErrCodeRecordNotFound)
	}

	name := strings.TrimSpace(dto.Name)

	taken, err := s.repo.GetByNameExcluding(name, id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating country", err)
	}
	if taken != nil {
		return nil, errors.NewConflictError("Country with this name already exists", errors.ErrCodeDuplicateRecord)
	}

	row.Name = name
	row.Description = strings.TrimSpace(dto.Description)
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating country", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Delete(id string) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return errors.NewInternalError("Server error while deleting country", err)
	}
	if row == nil {
		return errors.NewNotFoundError("Country not found", errors.ErrCodeRecordNotFound)
	}

	if err := s.repo.Delete(id); err != nil {
		return errors.NewInternalError("Server error while deleting country", err)
	}

	s.logger.Info("country deleted", "country_id", row.CountryID)
	return nil
}

// ToggleStatus flips the active flag and returns the updated row.
func (s *Service) ToggleStatus(id string) (*CountryResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating country", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Country not found", errors.ErrCodeRecordNotFound)
	}

	row.IsActive = !row.IsActive
	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating country", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}
