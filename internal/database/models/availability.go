package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRecord marks one employee's status on one calendar date.
// At most one record exists per (employee, date); a status change replaces
// the record rather than patching it in place.
type AvailabilityRecord struct {
	BaseModel
	EmployeeID uuid.UUID          `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_availability_employee_date" validate:"required"`
	Date       time.Time          `json:"date" gorm:"type:date;not null;uniqueIndex:idx_availability_employee_date" validate:"required"`
	Status     AvailabilityStatus `json:"status" gorm:"type:varchar(20);not null" validate:"required"`
	FullDay    bool               `json:"full_day" gorm:"default:true"`
	// StartTime/EndTime bound a partial-day record as local clock times ("HH:MM:SS").
	// Ignored when FullDay is set.
	StartTime string `json:"start_time,omitempty" gorm:"size:8"`
	EndTime   string `json:"end_time,omitempty" gorm:"size:8"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AvailabilityRecord
func (AvailabilityRecord) TableName() string {
	return "availability_records"
}
