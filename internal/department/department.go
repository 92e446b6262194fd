package department

import (
	"time"

	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/catalog"
)

type DepartmentResponse struct {
	ID            string    `json:"id"`
	DepartmentID  string    `json:"departmentId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"isActive"`
	EmployeeCount int64     `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromDataModel(d *catalog.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		DepartmentID:  d.DepartmentID,
		Name:          d.Name,
		Description:   d.Description,
		IsActive:      d.IsActive,
		EmployeeCount: d.EmployeeCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func FromDataModels(rows []*catalog.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	return out
}

// DepartmentEmployee is the trimmed employee projection listed under a
// department.
type DepartmentEmployee struct {
	ID          string `json:"id"`
	EmpCode     string `json:"empCode"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Designation string `json:"designation,omitempty"`
	IsActive    bool   `json:"isActive"`
}
