package account

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Role values per account kind. Accounts are three independent collections
// sharing the same credential shape; they are deliberately not polymorphic.
const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"

	EmployeeRoleEmployee = "employee"
	EmployeeRoleManager  = "manager"
	EmployeeRoleAdmin    = "admin"

	AdminRoleSuper = "super_admin"
	AdminRoleAdmin = "admin"
	AdminRoleHR    = "hr_admin"
)

// User is a self-registered portal account.
type User struct {
	ID           string     `gorm:"primaryKey;column:id"`
	UserName     string     `gorm:"column:user_name;not null"`
	Email        string     `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         string     `gorm:"column:role;default:user"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }

// EmergencyContact is embedded in the employee document.
type EmergencyContact struct {
	Name          string `json:"name"`
	Relation      string `json:"relation"`
	ContactNumber string `json:"contactNumber"`
}

// EmergencyContactList persists as a JSON column, the document-store
// analogue of the original embedded array.
type EmergencyContactList []EmergencyContact

func (l EmergencyContactList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *EmergencyContactList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// BankDetails is the embedded bank block on an employee.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	Branch        string `json:"branch"`
}

func (b BankDetails) Value() (driver.Value, error) {
	raw, err := json.Marshal(b)
	return string(raw), err
}

func (b *BankDetails) Scan(value interface{}) error {
	return scanJSON(value, b)
}

// StringList persists a flat string array (admin permissions) as JSON.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported type for JSON column")
	}
}

// Employee is the HR employee record, credential fields included.
type Employee struct {
	ID            string     `gorm:"primaryKey;column:id"`
	ProfilePhoto  *string    `gorm:"column:profile_photo"`
	FirstName     string     `gorm:"column:first_name;not null"`
	LastName      string     `gorm:"column:last_name;not null"`
	Email         string     `gorm:"column:email;not null;uniqueIndex"`
	ContactNumber string     `gorm:"column:contact_number;not null"`
	EmpCode       string     `gorm:"column:emp_code;not null;uniqueIndex"`
	DateOfBirth   time.Time  `gorm:"column:date_of_birth"`
	JoiningDate   time.Time  `gorm:"column:joining_date"`
	Gender        string     `gorm:"column:gender"`
	Nationality   string     `gorm:"column:nationality"`
	Shift         string     `gorm:"column:shift"`
	Department    string     `gorm:"column:department"`
	Designation   string     `gorm:"column:designation"`
	BloodGroup    string     `gorm:"column:blood_group"`
	About         string     `gorm:"column:about"`
	Address       string     `gorm:"column:address"`
	Country       string     `gorm:"column:country"`
	State         string     `gorm:"column:state"`
	City          string     `gorm:"column:city"`
	Zipcode       string     `gorm:"column:zipcode"`

	EmergencyContacts EmergencyContactList `gorm:"column:emergency_contacts;type:jsonb"`
	Bank              BankDetails          `gorm:"column:bank;type:jsonb"`

	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         string     `gorm:"column:role;default:employee"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Admin is a back-office operator account.
type Admin struct {
	ID           string     `gorm:"primaryKey;column:id"`
	FirstName    string     `gorm:"column:first_name;not null"`
	LastName     string     `gorm:"column:last_name;not null"`
	Username     string     `gorm:"column:username;not null;uniqueIndex"`
	Email        string     `gorm:"column:email;not null;uniqueIndex"`
	Mobile       string     `gorm:"column:mobile;not null;uniqueIndex"`
	ProfilePic   *string    `gorm:"column:profile_pic"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         string     `gorm:"column:role;default:admin"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	Permissions  StringList `gorm:"column:permissions;type:jsonb"`
	CreatedBy    *string    `gorm:"column:created_by"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (Admin) TableName() string { return "admins" }
