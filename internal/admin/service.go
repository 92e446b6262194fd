package admin

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
	List(params ListParams) ([]*account.Admin, int64, error)
	GetByID(id string) (*account.Admin, error)
	GetByEmail(email string) (*account.Admin, error)
	FindByIdentity(email, username, mobile string) (*account.Admin, error)
	CountByRole(role string) (int64, error)
	Create(a *account.Admin) error
	Update(a *account.Admin) error
	SetActive(id string, active bool) error
	UpdatePassword(id, passwordHash string) error
	UpdateLastLogin(id string, at time.Time) error

	Stats(since time.Time) (*StatsOverview, error)
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

// Register creates an admin account. Email, username and mobile must all be
// unused; permissions default to read/write/delete.
func (s *Service) Register(dto RegisterDTO, createdBy *string) (*AdminResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	username := strings.TrimSpace(dto.Username)
	mobile := strings.TrimSpace(dto.Mobile)

	existing, err := s.repo.FindByIdentity(email, username, mobile)
	if err != nil {
		return nil, errors.NewInternalError("Server error during admin registration", err)
	}
	if existing != nil {
		switch {
		case strings.EqualFold(existing.Email, email):
			return nil, errors.NewConflictError("Admin with this email already exists", errors.ErrCodeDuplicateRecord)
		case strings.EqualFold(existing.Username, username):
			return nil, errors.NewConflictError("Username already taken", errors.ErrCodeDuplicateRecord)
		default:
			return nil, errors.NewConflictError("Admin with this mobile number already exists", errors.ErrCodeDuplicateRecord)
		}
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("Server error during admin registration", err)
	}

	role := dto.Role
	if role == "" {
		role = account.AdminRoleAdmin
	}
	permissions := dto.Permissions
	if len(permissions) == 0 {
		permissions = DefaultPermissions
	}

	row := &account.Admin{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(dto.FirstName),
		LastName:     strings.TrimSpace(dto.LastName),
		Username:     username,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		Permissions:  permissions,
		CreatedBy:    createdBy,
	}

	if err := s.repo.Create(row); err != nil {
		if errors.IsDuplicateKey(err) {
			return nil, errors.NewConflictError("Admin with this email already exists", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewInternalError("Server error during admin registration", err)
	}

	s.logger.Info("admin registered", "username", row.Username, "role", row.Role)
	resp := FromDataModel(row)
	return &resp, nil
}

// Login authenticates an admin. Unknown email, inactive account and wrong
// password are indistinguishable to the caller.
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
		UserID:   row.ID,
		Email:    row.Email,
		UserName: row.Username,
		Role:     row.Role,
	})
	if err != nil {
		s.logger.Error("failed to issue admin token", "admin_id", row.ID, "error", err)
		return nil, errors.NewInternalError("Server error during authentication", err)
	}

	return &AuthResult{
		Token: token,
		Admin: FromDataModel(row),
	}, nil
}

func (s *Service) List(params ListParams) ([]AdminResponse, int64, error) {
	rows, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list admins", "error", err)
		return nil, 0, errors.NewInternalError("Server error while fetching admins", err)
	}
	return FromDataModels(rows), total, nil
}

func (s *Service) GetByID(id string) (*AdminResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching admin", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Admin not found", errors.ErrCodeRecordNotFound)
	}
	resp := FromDataModel(row)
	return &resp, nil
}

// Update applies the whitelisted fields only.
func (s *Service) Update(id string, dto UpdateDTO) (*AdminResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating admin", err)
	}
	if row == nil {
		return nil, errors.NewNotFoundError("Admin not found", errors.ErrCodeRecordNotFound)
	}

	if dto.FirstName != nil {
		row.FirstName = strings.TrimSpace(*dto.FirstName)
	}
	if dto.LastName != nil {
		row.LastName = strings.TrimSpace(*dto.LastName)
	}
	if dto.Mobile != nil {
		row.Mobile = strings.TrimSpace(*dto.Mobile)
	}
	if dto.ProfilePic != nil {
		row.ProfilePic = dto.ProfilePic
	}
	if dto.Role != nil {
		row.Role = *dto.Role
	}
	if dto.Permissions != nil {
		row.Permissions = *dto.Permissions
	}

	if err := s.repo.Update(row); err != nil {
		return nil, errors.NewInternalError("Server error while updating admin", err)
	}

	resp := FromDataModel(row)
	return &resp, nil
}

// ChangePassword verifies the current password before re-hashing.
func (s *Service) ChangePassword(id string, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return errors.NewInternalError("Server error while changing password", err)
	}
	if row == nil {
		return errors.NewNotFoundError("Admin not found", errors.ErrCodeRecordNotFound)
	}

	if !auth.VerifyPassword(row.PasswordHash, dto.CurrentPassword) {
		return errors.NewValidationError("Current password is incorrect", errors.ErrCodeInvalidCredentials)
	}

	hash, err := auth.HashPassword(dto.NewPassword, s.bcryptCost)
	if err != nil {
		return errors.NewInternalError("Server error while changing password", err)
	}

	return s.repo.UpdatePassword(id, hash)
}

func (s *Service) Deactivate(id string) error {
	return s.setActive(id, false)
}

func (s *Service) Activate(id string) error {
	return s.setActive(id, true)
}

func (s *Service) setActive(id string, active bool) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return errors.NewInternalError("Server error while updating admin", err)
	}
	if row == nil {
		return errors.NewNotFoundError("Admin not found", errors.ErrCodeRecordNotFound)
	}

	if err := s.repo.SetActive(id, active); err != nil {
		return errors.NewInternalError("Server error while updating admin", err)
	}

	s.logger.Info("admin active flag changed", "username", row.Username, "active", active)
	return nil
}

// SetupSuperAdmin provisions the first super admin. It refuses once one
// exists.
func (s *Service) SetupSuperAdmin(dto SetupSuperAdminDTO) (*AdminResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByRole(account.AdminRoleSuper)
	if err != nil {
		return nil, errors.NewInternalError("Server error during super admin setup", err)
	}
	if count > 0 {
		return nil, errors.NewValidationError("Super admin already exists", errors.ErrCodeDuplicateRecord)
	}

	return s.Register(RegisterDTO{
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Username:    dto.Username,
		Email:       dto.Email,
		Mobile:      dto.Mobile,
		Password:    dto.Password,
		Role:        account.AdminRoleSuper,
		Permissions: account.StringList{"read", "write", "delete", "manage_admins"},
	}, nil)
}

// Stats aggregates totals and role counts; recent registrations cover the
// last 30 days.
func (s *Service) Stats() (*StatsOverview, error) {
	since := time.Now().AddDate(0, 0, -30)
	stats, err := s.repo.Stats(since)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching admin statistics", err)
	}
	return stats, nil
}
