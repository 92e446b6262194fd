package employee

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/auth"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
)

type RepositoryAPI interface {
	List(params ListParams) ([]*account.Employee, int64, error)
	GetByID(id string) (*account.Employee, error)
	GetByEmail(email string) (*account.Employee, error)
	GetByEmpCode(empCode string) (*account.Employee, error)
	FindByEmailOrEmpCode(email, empCode string) (*account.Employee, error)
	GetByEmailExcluding(email, excludeID string) (*account.Employee, error)
	Create(e *account.Employee) error
	Update(e *account.Employee) error
	SetActive(id string, active bool) error
	HardDelete(id string) error
	UpdateLastLogin(id string, at time.Time) error

	Stats(since time.Time) (*StatsOverview, error)
	DistinctDepartments() ([]string, error)
	DistinctDesignations() ([]string, error)
}

type Service struct {
	repo       RepositoryAPI
	tokens     auth.TokenIssuer
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, tokens auth.TokenIssuer, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = auth.DefaultBcryptCost
	}
	return &Service{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) List(params ListParams) ([]EmployeeResponse, int64, error) {
	rows, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, 0, errors.NewInternalError("Server error while fetching employees", err)
	}
	return FromDataModels(rows), total, nil
}

func (s *Service) GetByID(id string) (*EmployeeResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching employee", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Employee not found", errors.ErrCodeRecordNotFound)
	}
	resp := FromDataModel(row)
	return &resp, nil
}

func (s *Service) GetByEmpCode(empCode string) (*EmployeeResponse, error) {
	row, err := s.repo.GetByEmpCode(empCode)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching employee", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Employee not found", errors.ErrCodeRecordNotFound)
	}
	resp := FromDataModel(row)
	return &resp, nil
}

// Create checks email and employee code for duplicates, hashes the password
// once and inserts the record.
func (s *Service) Create(dto CreateEmployeeDTO) (*EmployeeResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	empCode := strings.TrimSpace(dto.EmpCode)

	existing, err := s.repo.FindByEmailOrEmpCode(email, empCode)
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating employee", err)
	}
	if existing != nil {
		if strings.EqualFold(existing.Email, email) {
			return nil, errors.NewConflictError("Employee with this email already exists", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewConflictError("Employee with this code already exists", errors.ErrCodeDuplicateRecord)
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("Server error while creating employee", err)
	}

	role := dto.Role
	if role == "" {
		role = account.EmployeeRoleEmployee
	}

	row := &account.Employee{
		ID:                uuid.NewString(),
		FirstName:         strings.TrimSpace(dto.FirstName),
		LastName:          strings.TrimSpace(dto.LastName),
		Email:             email,
		ContactNumber:     strings.TrimSpace(dto.ContactNumber),
		EmpCode:           empCode,
		DateOfBirth:       dto.DateOfBirth,
		JoiningDate:       dto.JoiningDate,
		Gender:            dto.Gender,
		Nationality:       dto.Nationality,
		Shift:             dto.Shift,
		Department:        dto.Department,
		Designation:       dto.Designation,
		BloodGroup:        dto.BloodGroup,
		About:             dto.About,
		Address:           dto.Address,
		Country:           dto.Country,
		State:             dto.State,
		City:              dto.City,
		Zipcode:           dto.Zipcode,
		EmergencyContacts: dto.EmergencyContacts,
		Bank:              dto.Bank,
		PasswordHash:      hash,
		Role:              role,
		IsActive:          true,
	}
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if err := s.repo.Create(row); err != nil {
		if errors.IsDuplicateKey(err) {
			return nil, errors.NewConflictError("Employee with this email already exists", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewInternalError("Server error while creating employee", err)
	}

	s.logger.Info("employee created", "emp_code", row.EmpCode)
	resp := FromDataModel(row)
	return &resp, nil
}

// Update applies only the fields present on the DTO. The stored password
// hash changes only when a new password is supplied.
func (s *Service) Update(id string, dto UpdateEmployeeDTO) (*EmployeeResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating employee", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Employee not found", errors.ErrCodeRecordNotFound)
	}

	if dto.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*dto.Email))
		taken, err := s.repo.GetByEmailExcluding(email, id)
		if err != nil {
			return nil, errors.NewInternalError("Server error while updating employee", err)
		}
		if taken != nil {
			return nil, errors.NewConflictError("Employee with this email already exists", errors.ErrCodeDuplicateRecord)
		}
		row.Email = email
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	applyString(&row.FirstName, dto.FirstName)
	applyString(&row.LastName, dto.LastName)
	applyString(&row.ContactNumber, dto.ContactNumber)
	applyString(&row.Gender, dto.Gender)
	applyString(&row.Nationality, dto.Nationality)
	applyString(&row.Shift, dto.Shift)
	applyString(&row.Department, dto.Department)
	applyString(&row.Designation, dto.Designation)
	applyString(&row.BloodGroup, dto.BloodGroup)
	applyString(&row.About, dto.About)
	applyString(&row.Address, dto.Address)
	applyString(&row.Country, dto.Country)
	applyString(&row.State, dto.State)
	applyString(&row.City, dto.City)
	applyString(&row.Zipcode, dto.Zipcode)

	if dto.ProfilePhoto != nil {
		row.ProfilePhoto = dto.ProfilePhoto
	}
	if dto.DateOfBirth != nil {
		row.DateOfBirth = *dto.DateOfBirth
	}
	if dto.JoiningDate != nil {
		row.JoiningDate = *dto.JoiningDate
	}
	if dto.EmergencyContacts != nil {
		row.EmergencyContacts = *dto.EmergencyContacts
	}
	if dto.Bank != nil {
		row.Bank = *dto.Bank
	}
	if dto.Role != nil {
		row.Role = *dto.Role
	}
	if dto.IsActive != nil {
		row.IsActive = *dto.IsActive
	}

	if dto.Password != nil {
		hash, err := auth.HashPassword(*dto.Password, s.bcryptCost)
		if err != nil {
			return nil, errors.NewInternalError("Server error while updating employee", err)
		}
		row.PasswordHash = hash
	}

	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating employee", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}

// Deactivate is the soft delete: the record stays, logins stop working.
func (s *Service) Deactivate(id string) error {
	return s.setActive(id, false)
}

func (s *Service) Activate(id string) error {
	return s.setActive(id, true)
}

func (s *Service) setActive(id string, active bool) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return errors.NewInternalError("Server error while updating employee", err)
	}
	if row == nil {
		return errors.NewNotFoundError("Employee not found", errors.ErrCodeRecordNotFound)
	}

	if err := s.repo.SetActive(id, active); err != nil {
		return errors.NewInternalError("Server error while updating employee", err)
	}

	s.logger.Info("employee active flag changed", "emp_code", row.EmpCode, "active", active)
	return nil
}

// HardDelete removes the record permanently.
func (s *Service) HardDelete(id string) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return errors.NewInternalError("Server error while deleting employee", err)
	}
	if row == nil {
		return errors.NewNotFoundError("Employee not found", errors.ErrCodeRecordNotFound)
	}

	if err := s.repo.HardDelete(id); err != nil {
		return errors.NewInternalError("Server error while deleting employee", err)
	}

	s.logger.Info("employee permanently deleted", "emp_code", row.EmpCode)
	return nil
}

// Login authenticates an employee. All failure causes collapse to one
// generic unauthorized error.
func (s *Service) Login(dto LoginDTO) (*AuthResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))

	row, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, errors.NewInternalError("Server error during login", err)
	}
	if row == nil || !row.IsActive {
		return nil, auth.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(row.PasswordHash, dto.Password) {
		return nil, auth.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(row.ID, now); err != nil {
		return nil, errors.NewInternalError("Server error during login", err)
	}
	row.LastLogin = &now

	token, err := s.tokens.Issue(auth.Claims{
		UserID: row.ID,
		Email:  row.Email,
		Role:   row.Role,
	})
	if err != nil {
		s.logger.Error("failed to issue employee token", "employee_id", row.ID, "error", err)
		return nil, errors.NewInternalError("Server error during authentication", err)
	}

	return &AuthResult{
		Token:    token,
		Employee: FromDataModel(row),
	}, nil
}

// Stats aggregates totals and group counts; recent joinings cover the last
// 30 days.
func (s *Service) Stats() (*StatsOverview, error) {
	since := time.Now().AddDate(0, 0, -30)
	stats, err := s.repo.Stats(since)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching employee statistics", err)
	}
	return stats, nil
}

func (s *Service) Departments() ([]string, error) {
	names, err := s.repo.DistinctDepartments()
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching departments", err)
	}
	return names, nil
}

func (s *Service) Designations() ([]string, error) {
	names, err := s.repo.DistinctDesignations()
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching designations", err)
	}
	return names, nil
}
