package models

import (
	"github.com/google/uuid"
)

// ShiftTemplate is account-scoped configuration describing an abstract shift:
// a local time window, the weekdays it runs on and the roles it needs.
// Headcounts live in AccountSettings, keyed by (role, template label, weekday).
type ShiftTemplate struct {
	BaseModel
	AccountID uuid.UUID `json:"account_id" gorm:"type:uuid;not null;index" validate:"required"`
	// Label identifies the template in the staffing-target table (e.g. "early", "night")
	Label     string     `json:"label" gorm:"not null;size:50" validate:"required,max=50"`
	StartTime string     `json:"start_time" gorm:"size:8;not null" validate:"required"`
	EndTime   string     `json:"end_time" gorm:"size:8;not null" validate:"required"`
	Weekdays  StringList `json:"weekdays" gorm:"type:jsonb" validate:"required,min=1"`
	Roles     StringList `json:"roles" gorm:"type:jsonb" validate:"required,min=1"`
	FullDay   bool       `json:"full_day" gorm:"default:false"`
	// Split-staffing parameters: above SplitHeadcount assigned heads, the template
	// is handled differently from SplitHour onward. Both nil when unused.
	SplitHeadcount *int `json:"split_headcount,omitempty"`
	SplitHour      *int `json:"split_hour,omitempty" validate:"omitempty,min=0,max=23"`

	// Relationships
	Account Account `json:"account,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftTemplate
func (ShiftTemplate) TableName() string {
	return "shift_templates"
}
