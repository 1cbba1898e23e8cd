package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift is one persisted assignment of an employee to a concrete shift window.
// The full set for an (account, year, month) is replaced atomically on
// regeneration; rows are never patched individually.
type Shift struct {
	BaseModel
	AccountID  uuid.UUID `json:"account_id" gorm:"type:uuid;not null;index:idx_shifts_account_period" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	Year       int       `json:"year" gorm:"not null;index:idx_shifts_account_period" validate:"required,min=2020,max=2100"`
	Month      int       `json:"month" gorm:"not null;index:idx_shifts_account_period" validate:"required,min=1,max=12"`
	// Role the assignment was generated for, not necessarily the employee's only role
	Role     string    `json:"role" gorm:"not null;size:50" validate:"required"`
	StartsAt time.Time `json:"starts_at" gorm:"not null" validate:"required"`
	EndsAt   time.Time `json:"ends_at" gorm:"not null" validate:"required"`
	FullDay  bool      `json:"full_day" gorm:"default:false"`

	// Relationships
	Account  Account  `json:"account,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}
