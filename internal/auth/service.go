package auth

import (
	stderrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
	"gorm.io/gorm"
)

// Service owns the user account kind: registration, login, profile and
// password management. Employee and admin logins live with their own
// modules; all three share the credential store and token issuer here.
type Service struct {
	repo       UserRepository
	tokens     TokenIssuer
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo UserRepository, tokens TokenIssuer, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &Service{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a user account, hashing the password exactly once before
// the insert. The duplicate pre-check is advisory; the unique index is the
// authoritative guard and its violation maps to the same message.
func (s *Service) Register(dto RegisterDTO) (*AuthResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	userName := strings.TrimSpace(dto.UserName)

	existing, err := s.repo.FindByEmailOrUserName(email, userName)
	if err != nil {
		return nil, errors.NewInternalError("Server error during registration", err)
	}
	if existing != nil {
		if strings.EqualFold(existing.Email, email) {
			return nil, errors.NewConflictError("User with this email already exists", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewConflictError("Username already taken", errors.ErrCodeDuplicateRecord)
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("Server error during registration", err)
	}

	user := &account.User{
		ID:           uuid.NewString(),
		UserName:     userName,
		Email:        email,
		PasswordHash: hash,
		Role:         account.UserRoleUser,
		IsActive:     true,
	}

	if err := s.repo.Create(user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.NewConflictError("User with this email already exists", errors.ErrCodeDuplicateRecord)
		}
		return nil, errors.NewInternalError("Server error during registration", err)
	}

	return s.issueFor(user)
}

// Login authenticates by email and password. Unknown email, inactive
// account and wrong password are indistinguishable to the caller.
func (s *Service) Login(dto LoginDTO) (*AuthResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))

	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, errors.NewInternalError("Server error during login", err)
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(user.PasswordHash, dto.Password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, errors.NewInternalError("Server error during login", err)
	}
	user.LastLogin = &now

	return s.issueFor(user)
}

// Profile returns the sanitized projection for the authenticated user.
func (s *Service) Profile(userID string) (*UserProfile, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while fetching profile", err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("User not found", errors.ErrCodeRecordNotFound)
	}

	profile := ProfileFromDataModel(user)
	return &profile, nil
}

// UpdateProfile renames the account after checking the name is free among
// other users.
func (s *Service) UpdateProfile(userID string, dto UpdateProfileDTO) (*UserProfile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	userName := strings.TrimSpace(dto.UserName)

	taken, err := s.repo.GetByUserNameExcluding(userName, userID)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating profile", err)
	}
	if taken != nil {
		return nil, errors.NewConflictError("Username already taken", errors.ErrCodeDuplicateRecord)
	}

	user, err := s.repo.UpdateUserName(userID, userName)
	if err != nil {
		return nil, errors.NewInternalError("Server error while updating profile", err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("User not found", errors.ErrCodeRecordNotFound)
	}

	profile := ProfileFromDataModel(user)
	return &profile, nil
}

// ChangePassword verifies the current password before re-hashing the new
// one; unrelated account fields are untouched, so the stored hash only ever
// changes through this path.
func (s *Service) ChangePassword(userID string, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return errors.NewInternalError("Server error while changing password", err)
	}
	if user == nil {
		return errors.NewNotFoundError("User not found", errors.ErrCodeRecordNotFound)
	}

	if !VerifyPassword(user.PasswordHash, dto.CurrentPassword) {
		return errors.NewValidationError("Current password is incorrect", errors.ErrCodeInvalidCredentials)
	}

	hash, err := HashPassword(dto.NewPassword, s.bcryptCost)
	if err != nil {
		return errors.NewInternalError("Server error while changing password", err)
	}

	return s.repo.UpdatePassword(userID, hash)
}

// VerifyToken exposes token validation to the HTTP middleware.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	return s.tokens.Verify(tokenString)
}

func (s *Service) issueFor(user *account.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(Claims{
		UserID:   user.ID,
		Email:    user.Email,
		UserName: user.UserName,
		Role:     user.Role,
	})
	if err != nil {
		s.logger.Error("failed to issue token", "user_id", user.ID, "error", err)
		return nil, errors.NewInternalError("Server error during authentication", err)
	}

	return &AuthResult{
		Token: token,
		User:  ProfileFromDataModel(user),
	}, nil
}
