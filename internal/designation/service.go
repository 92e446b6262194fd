package designation

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/sequence"
)

type RepositoryAPI interface {
	List(params ListParams) ([]*catalog.Designation, int64, error)
	GetActive() ([]*catalog.Designation, error)
	GetByID(id string) (*catalog.Designation, error)
	GetByName(name string) (*catalog.Designation, error)
	GetByNameExcluding(name, excludeID string) (*catalog.Designation, error)
	Create(d *catalog.Designation) error
	Update(d *catalog.Designation) error
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

func (s *Service) List(params ListParams) ([]DesignationResponse, int64, error) {
	rows, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list designations", "error", err)
		return nil, 0, errors.NewInternalError("Server error while fetching designations", err)
	}
	return FromDataModels(rows), total, nil
}

func (s *Service) GetActive() ([]DesignationResponse, error) {
	rows, err := s.repo.GetActive()
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching designations", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) GetByID(id string) (*DesignationResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching designation", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Designation not found", errors.ErrCodeRecordNotFound)
	}
	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Create(dto CreateDesignationDTO) (*DesignationResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)

	existing, err := s.repo.GetByName(name)
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating designation", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("Designation with this name already exists", errors.ErrCodeDuplicateRecord)
	}

	designationID, err := s.seq.NextSeeded("designations", "DES",
		sequence.MaxSuffixSeeder("designations", "designation_id", "DES"))
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating designation", err)
	}

	row := &catalog.Designation{
		ID:            uuid.NewString(),
		DesignationID: designationID,
		Name:          name,
		Description:   strings.TrimSpace(dto.Description),
		IsActive:      true,
	}
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Create(row); err != nil {
		if errors.IsDuplicateKey(err) {
			return nil, errors.NewConflictError("Designation with this name already exists", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewInternalError("Server error while creating designation", err)
	}

	s.logger.Info("designation created", "designation_id", row.DesignationID, "name", row.Name)
	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Update(id string, dto UpdateDesignationDTO) (*DesignationResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating designation", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Designation not found", errors.ErrCodeRecordNotFound)
	}

	name := strings.TrimSpace(dto.Name)

	taken, err := s.repo.GetByNameExcluding(name, id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating designation", err)
	}
	if taken != nil {
		return nil, errors.NewConflictError("Designation with this name already exists", errors.ErrCodeDuplicateRecord)
	}

	row.Name = name
	row.Description = strings.TrimSpace(dto.Description)
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating designation", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Delete(id string) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return errors.NewInternalError("Server error while deleting designation", err)
	}
	if row == nil {
		return errors.NewNotFoundError("Designation not found", errors.ErrCodeRecordNotFound)
	}

	if err := s.repo.Delete(id); err != nil {
		return errors.NewInternalError("Server error while deleting designation", err)
	}

	s.logger.Info("designation deleted", "designation_id", row.DesignationID)
	return nil
}

func (s *Service) ToggleStatus(id string) (*DesignationResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating designation", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Designation not found", errors.ErrCodeRecordNotFound)
	}

	row.IsActive = !row.IsActive
	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating designation", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}
