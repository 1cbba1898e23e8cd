package models

import (
	"github.com/google/uuid"
)

// Employee represents a schedulable member of an account's roster
type Employee struct {
	BaseModel
	AccountID uuid.UUID  `json:"account_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Roles     StringList `json:"roles" gorm:"type:jsonb" validate:"required,min=1"`
	// Rate scales the account's monthly hour baseline; 1.0 is full time
	Rate   float64 `json:"rate" gorm:"not null;default:1.0" validate:"min=0,max=1"`
	Gender string  `json:"gender,omitempty" gorm:"size:20"`

	// Relationships
	Account      Account              `json:"account,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Availability []AvailabilityRecord `json:"availability,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// PrimaryRole returns the first role label, or "" for an unskilled employee
func (e *Employee) PrimaryRole() string {
	if len(e.Roles) == 0 {
		return ""
	}
	return e.Roles[0]
}
