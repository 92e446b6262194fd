package catalog

import "time"

// Catalog entities share one shape: a generated human-readable identifier,
// a display name unique within scope, an active flag and timestamps.

type Country struct {
	ID          string    `gorm:"primaryKey;column:id"`
	CountryID   string    `gorm:"column:country_id;not null;uniqueIndex"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Country) TableName() string { return "countries" }

type State struct {
	ID        string    `gorm:"primaryKey;column:id"`
	StateID   string    `gorm:"column:state_id;not null;uniqueIndex"`
	Name      string    `gorm:"column:name;not null"`
	CountryID string    `gorm:"column:country_id;not null"`
	Country   string    `gorm:"column:country;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (State) TableName() string { return "states" }

type City struct {
	ID        string    `gorm:"primaryKey;column:id"`
	CityID    string    `gorm:"column:city_id;not null;uniqueIndex"`
	Name      string    `gorm:"column:name;not null"`
	StateID   string    `gorm:"column:state_id;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (City) TableName() string { return "cities" }

type Department struct {
	ID            string    `gorm:"primaryKey;column:id"`
	DepartmentID  string    `gorm:"column:department_id;not null;uniqueIndex"`
	Name          string    `gorm:"column:name;not null"`
	Description   string    `gorm:"column:description"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	EmployeeCount int64     `gorm:"column:employee_count;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Department) TableName() string { return "departments" }

type Designation struct {
	ID            string    `gorm:"primaryKey;column:id"`
	DesignationID string    `gorm:"column:designation_id;not null;uniqueIndex"`
	Name          string    `gorm:"column:name;not null"`
	Description   string    `gorm:"column:description"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Designation) TableName() string { return "designations" }
