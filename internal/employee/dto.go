package employee

import (
	"time"
	"unicode"

	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/common/validation"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
)

// validatePasswordPolicy enforces the employee password policy: at least 8
// characters with an uppercase letter, a digit and a symbol.
func validatePasswordPolicy(password string) *errors.AppError {
	if len(password) < 8 {
		return errors.NewValidationError("Password must be at least 8 characters long", errors.ErrCodeValidationFailed)
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasUpper || !hasDigit || !hasSymbol {
		return errors.NewValidationError(
			"Password must contain an uppercase letter, a number and a special character",
			errors.ErrCodeValidationFailed)
	}
	return nil
}

type CreateEmployeeDTO struct {
	FirstName     string    `json:"firstName" validate:"required,min=2,max=50"`
	LastName      string    `json:"lastName" validate:"required,min=1,max=50"`
	Email         string    `json:"email" validate:"required,email"`
	ContactNumber string    `json:"contactNumber" validate:"required,min=7,max=20"`
	EmpCode       string    `json:"empCode" validate:"required,min=2,max=20"`
	DateOfBirth   time.Time `json:"dateOfBirth" validate:"required"`
	JoiningDate   time.Time `json:"joiningDate" validate:"required"`
	Gender        string    `json:"gender" validate:"omitempty,oneof=male female other"`
	Nationality   string    `json:"nationality" validate:"max=50"`
	Shift         string    `json:"shift" validate:"omitempty,oneof=day night rotational"`
	Department    string    `json:"department" validate:"max=100"`
	Designation   string    `json:"designation" validate:"max=100"`
	BloodGroup    string    `json:"bloodGroup" validate:"max=5"`
	About         string    `json:"about" validate:"max=60"`
	Address       string    `json:"address" validate:"max=200"`
	Country       string    `json:"country" validate:"max=100"`
	State         string    `json:"state" validate:"max=100"`
	City          string    `json:"city" validate:"max=100"`
	Zipcode       string    `json:"zipcode" validate:"max=12"`

	EmergencyContacts account.EmergencyContactList `json:"emergencyContacts"`
	Bank              account.BankDetails          `json:"bank"`

	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=employee manager admin"`
	IsActive *bool  `json:"isActive"`
}

func (d CreateEmployeeDTO) Validate() *errors.AppError {
	if err := validation.Struct(d); err != nil {
		return err
	}
	return validatePasswordPolicy(d.Password)
}

// UpdateEmployeeDTO carries optional fields; nil means leave unchanged.
// Password is only re-hashed when present.
type UpdateEmployeeDTO struct {
	ProfilePhoto  *string    `json:"profilePhoto"`
	FirstName     *string    `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName      *string    `json:"lastName" validate:"omitempty,min=1,max=50"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	ContactNumber *string    `json:"contactNumber" validate:"omitempty,min=7,max=20"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	JoiningDate   *time.Time `json:"joiningDate"`
	Gender        *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	Nationality   *string    `json:"nationality" validate:"omitempty,max=50"`
	Shift         *string    `json:"shift" validate:"omitempty,oneof=day night rotational"`
	Department    *string    `json:"department" validate:"omitempty,max=100"`
	Designation   *string    `json:"designation" validate:"omitempty,max=100"`
	BloodGroup    *string    `json:"bloodGroup" validate:"omitempty,max=5"`
	About         *string    `json:"about" validate:"omitempty,max=60"`
	Address       *string    `json:"address" validate:"omitempty,max=200"`
	Country       *string    `json:"country" validate:"omitempty,max=100"`
	State         *string    `json:"state" validate:"omitempty,max=100"`
	City          *string    `json:"city" validate:"omitempty,max=100"`
	Zipcode       *string    `json:"zipcode" validate:"omitempty,max=12"`

	EmergencyContacts *account.EmergencyContactList `json:"emergencyContacts"`
	Bank              *account.BankDetails          `json:"bank"`

	Password *string `json:"password"`
	Role     *string `json:"role" validate:"omitempty,oneof=employee manager admin"`
	IsActive *bool   `json:"isActive"`
}

func (d UpdateEmployeeDTO) Validate() *errors.AppError {
	if err := validation.Struct(d); err != nil {
		return err
	}
	if d.Password != nil {
		return validatePasswordPolicy(*d.Password)
	}
	return nil
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (d LoginDTO) Validate() *errors.AppError {
	return validation.Struct(d)
}

// ListParams carries the pagination, search and filter query values.
type ListParams struct {
	Page        int
	Limit       int
	Search      string
	Department  string
	Designation string
	Gender      string
	Shift       string
	IsActive    *bool
}
