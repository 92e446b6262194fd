package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
)

// Claims is the identity carried by every issued token: enough to authorize
// a request without another database round-trip.
type Claims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies bearer tokens.
type TokenIssuer interface {
	Issue(claims Claims) (string, error)
	Verify(tokenString string) (*Claims, error)
}

// UserRepository is the persistence surface the user account flow needs.
// Lookups return (nil, nil) when no record matches.
type UserRepository interface {
	GetByEmail(email string) (*account.User, error)
	GetByID(id string) (*account.User, error)
	FindByEmailOrUserName(email, userName string) (*account.User, error)
	GetByUserNameExcluding(userName, excludeID string) (*account.User, error)
	Create(u *account.User) error
	UpdateUserName(id, userName string) (*account.User, error)
	UpdatePassword(id, passwordHash string) error
	UpdateLastLogin(id string, at time.Time) error
}

// UserProfile is the sanitized projection returned by every endpoint that
// exposes a user; it structurally has no password field.
type UserProfile struct {
	ID        string     `json:"id"`
	UserName  string     `json:"userName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func ProfileFromDataModel(u *account.User) UserProfile {
	return UserProfile{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AuthResult pairs a freshly issued token with the sanitized profile.
type AuthResult struct {
	Token string
	User  UserProfile
}

var (
	// ErrInvalidCredentials covers unknown identity, inactive account and
	// password mismatch alike, so a caller cannot probe which one occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

type contextKey string

const claimsContextKey contextKey = "authClaims"

func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}
