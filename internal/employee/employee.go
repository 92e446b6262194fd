package employee

import (
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
)

// EmployeeResponse is the sanitized employee projection; it structurally
// lacks the password hash.
type EmployeeResponse struct {
	ID            string     `json:"id"`
	ProfilePhoto  *string    `json:"profilePhoto,omitempty"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	FullName      string     `json:"fullName"`
	Email         string     `json:"email"`
	ContactNumber string     `json:"contactNumber"`
	EmpCode       string     `json:"empCode"`
	DateOfBirth   time.Time  `json:"dateOfBirth"`
	JoiningDate   time.Time  `json:"joiningDate"`
	Gender        string     `json:"gender,omitempty"`
	Nationality   string     `json:"nationality,omitempty"`
	Shift         string     `json:"shift,omitempty"`
	Department    string     `json:"department,omitempty"`
	Designation   string     `json:"designation,omitempty"`
	BloodGroup    string     `json:"bloodGroup,omitempty"`
	About         string     `json:"about,omitempty"`
	Address       string     `json:"address,omitempty"`
	Country       string     `json:"country,omitempty"`
	State         string     `json:"state,omitempty"`
	City          string     `json:"city,omitempty"`
	Zipcode       string     `json:"zipcode,omitempty"`

	EmergencyContacts account.EmergencyContactList `json:"emergencyContacts"`
	Bank              account.BankDetails          `json:"bank"`

	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func FromDataModel(e *account.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		ProfilePhoto:      e.ProfilePhoto,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		FullName:          e.FullName(),
		Email:             e.Email,
		ContactNumber:     e.ContactNumber,
		EmpCode:           e.EmpCode,
		DateOfBirth:       e.DateOfBirth,
		JoiningDate:       e.JoiningDate,
		Gender:            e.Gender,
		Nationality:       e.Nationality,
		Shift:             e.Shift,
		Department:        e.Department,
		Designation:       e.Designation,
		BloodGroup:        e.BloodGroup,
		About:             e.About,
		Address:           e.Address,
		Country:           e.Country,
		State:             e.State,
		City:              e.City,
		Zipcode:           e.Zipcode,
		EmergencyContacts: e.EmergencyContacts,
		Bank:              e.Bank,
		Role:              e.Role,
		IsActive:          e.IsActive,
		LastLogin:         e.LastLogin,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromDataModels(rows []*account.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	return out
}

// GroupCount is one bucket of a grouped aggregation.
type GroupCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// StatsOverview is the employee statistics payload.
type StatsOverview struct {
	Total          int64        `json:"total"`
	Active         int64        `json:"active"`
	Inactive       int64        `json:"inactive"`
	RecentJoinings int64        `json:"recentJoinings"`
	ByDepartment   []GroupCount `json:"byDepartment"`
	ByDesignation  []GroupCount `json:"byDesignation"`
	ByGender       []GroupCount `json:"byGender"`
}

// AuthResult pairs a freshly issued token with the sanitized employee.
type AuthResult struct {
	Token    string
	Employee EmployeeResponse
}
