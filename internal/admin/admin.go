package admin

import (
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
)

// DefaultPermissions are granted to newly registered admins.
var DefaultPermissions = account.StringList{"read", "write", "delete"}

// AdminResponse is the sanitized admin projection; it structurally lacks
// the password hash.
type AdminResponse struct {
	ID          string             `json:"id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	Mobile      string             `json:"mobile"`
	ProfilePic  *string            `json:"profilePic,omitempty"`
	Role        string             `json:"role"`
	IsActive    bool               `json:"isActive"`
	LastLogin   *time.Time         `json:"lastLogin,omitempty"`
	Permissions account.StringList `json:"permissions"`
	CreatedBy   *string            `json:"createdBy,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func FromDataModel(a *account.Admin) AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Username:    a.Username,
		Email:       a.Email,
		Mobile:      a.Mobile,
		ProfilePic:  a.ProfilePic,
		Role:        a.Role,
		IsActive:    a.IsActive,
		LastLogin:   a.LastLogin,
		Permissions: a.Permissions,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromDataModels(rows []*account.Admin) []AdminResponse {
	out := make([]AdminResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	return out
}

// RoleCount is one bucket of the role aggregation.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// StatsOverview is the admin statistics payload.
type StatsOverview struct {
	Total               int64       `json:"total"`
	Active              int64       `json:"active"`
	Inactive            int64       `json:"inactive"`
	RecentRegistrations int64       `json:"recentRegistrations"`
	ByRole              []RoleCount `json:"byRole"`
}

// AuthResult pairs a freshly issued token with the sanitized admin.
type AuthResult struct {
	Token string
	Admin AdminResponse
}
