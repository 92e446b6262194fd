package department

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
	"github.com/santhosh9133/sterline-hr/internal/sequence"
)

type RepositoryAPI interface {
	List(params ListParams) ([]*catalog.Department, int64, error)
	GetActive() ([]*catalog.Department, error)
	GetByID(id string) (*catalog.Department, error)
	GetByName(name string) (*catalog.Department, error)
	GetByNameExcluding(name, excludeID string) (*catalog.Department, error)
	Create(d *catalog.Department) error
	Update(d *catalog.Department) error
	Delete(id string) error

	// Employees are linked to departments by name.
	CountActiveEmployees(departmentName string) (int64, error)
	ListEmployees(departmentName string) ([]DepartmentEmployee, error)
	SetEmployeeCount(id string, count int64) error
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

func (s *Service) List(params ListParams) ([]DepartmentResponse, int64, error) {
	rows, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, 0, errors.NewInternalError("Server error while fetching departments", err)
	}
	return FromDataModels(rows), total, nil
}

func (s *Service) GetActive() ([]DepartmentResponse, error) {
	rows, err := s.repo.GetActive()
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching departments", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) GetByID(id string) (*DepartmentResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching department", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Department not found", errors.ErrCodeRecordNotFound)
	}
	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Create(dto CreateDepartmentDTO) (*DepartmentResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)

	existing, err := s.repo.GetByName(name)
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating department", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("Department with this name already exists", errors.ErrCodeDuplicateRecord)
	}

	departmentID, err := s.seq.NextSeeded("departments", "DEP",
		sequence.MaxSuffixSeeder("departments", "department_id", "DEP"))
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating department", err)
	}

	row := &catalog.Department{
		ID:           uuid.NewString(),
		DepartmentID: departmentID,
		Name:         name,
		Description:  strings.TrimSpace(dto.Description),
		IsActive:     true,
	}
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Create(row); err != nil {
		if errors.IsDuplicateKey(err) {
			return nil, errors.NewConflictError("Department with this name already exists", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewInternalError("Server error while creating department", err)
	}

	s.logger.Info("department created", "department_id", row.DepartmentID, "name", row.Name)
	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) Update(id string, dto UpdateDepartmentDTO) (*DepartmentResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating department", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Department not found", errors.ErrCodeRecordNotFound)
	}

	name := strings.TrimSpace(dto.Name)

	taken, err := s.repo.GetByNameExcluding(name, id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating department", err)
	}
	if taken != nil {
		return nil, errors.NewConflictError("Department with this name already exists", errors.ErrCodeDuplicateRecord)
	}

	row.Name = name
	row.Description = strings.TrimSpace(dto.Description)
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating department", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}

// Delete refuses while active employees are still assigned; the refusal
// message carries the count so the caller knows how many to reassign.
func (s *Service) Delete(id string) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return errors.NewInternalError("Server error while deleting department", err)
	}
	if row == nil {
		return errors.NewNotFoundError("Department not found", errors.ErrCodeRecordNotFound)
	}

	count, err := s.repo.CountActiveEmployees(row.Name)
	if err != nil {
		return errors.NewInternalError("Server error while deleting department", err)
	}
	if count > 0 {
		return errors.NewValidationError(
			fmt.Sprintf("Cannot delete department. %d active employee(s) are assigned to it", count),
			errors.ErrCodeDependentRecords)
	}

	if err := s.repo.Delete(id); err != nil {
		return errors.NewInternalError("Server error while deleting department", err)
	}

	s.logger.Info("department deleted", "department_id", row.DepartmentID)
	return nil
}

func (s *Service) ToggleStatus(id string) (*DepartmentResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating department", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Department not found", errors.ErrCodeRecordNotFound)
	}

	row.IsActive = !row.IsActive
	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating department", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}

// Employees lists the employees assigned to the department.
func (s *Service) Employees(id string) ([]DepartmentEmployee, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching department employees", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Department not found", errors.ErrCodeRecordNotFound)
	}

	employees, err := s.repo.ListEmployees(row.Name)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching department employees", err)
	}
	return employees, nil
}

// RefreshEmployeeCounts recomputes the cached employee count for every
// department from the employees collection.
func (s *Service) RefreshEmployeeCounts() (int, error) {
	rows, _, err := s.repo.List(ListParams{Page: 1, Limit: 1000})
	if err != nil {
		return 0, errors.NewInternalError("Server error while updating employee counts", err)
	}

	updated := 0
	for _, row := range rows {
		count, err := s.repo.CountActiveEmployees(row.Name)
		if err != nil {
			return updated, errors.NewInternalError("Server error while updating employee counts", err)
		}
		if count == row.EmployeeCount {
			continue
		}
		if err := s.repo.SetEmployeeCount(row.ID, count); err != nil {
			return updated, errors.NewInternalError("Server error while updating employee counts", err)
		}
		updated++
	}

	s.logger.Info("department employee counts refreshed", "updated", updated)
	return updated, nil
}
