package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// StaffingTargets maps role -> template label -> weekday -> required headcount.
// Missing cells mean zero.
type StaffingTargets map[string]map[string]map[string]int

// Value implements driver.Valuer
func (t StaffingTargets) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	b, err := json.Marshal(t)
	return string(b), err
}

// Scan implements sql.Scanner
func (t *StaffingTargets) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported type %T for StaffingTargets", value)
	}
}

// Lookup returns the headcount for (role, label, weekday), zero when any level is absent
func (t StaffingTargets) Lookup(role, label, weekday string) int {
	byLabel, ok := t[role]
	if !ok {
		return 0
	}
	byDay, ok := byLabel[label]
	if !ok {
		return 0
	}
	n := byDay[weekday]
	if n < 0 {
		return 0
	}
	return n
}

// Validate rejects malformed staffing shapes: unknown weekday keys and negative counts.
// Enforced at the settings-update boundary so reads never see a bad shape.
func (t StaffingTargets) Validate() error {
	for role, byLabel := range t {
		if role == "" {
			return fmt.Errorf("staffing targets: empty role key")
		}
		for label, byDay := range byLabel {
			if label == "" {
				return fmt.Errorf("staffing targets: empty shift label under role %q", role)
			}
			for weekday, count := range byDay {
				if !IsValidWeekday(weekday) {
					return fmt.Errorf("staffing targets: unknown weekday %q under %s/%s", weekday, role, label)
				}
				if count < 0 {
					return fmt.Errorf("staffing targets: negative headcount %d for %s/%s/%s", count, role, label, weekday)
				}
			}
		}
	}
	return nil
}

// FullDayTargets maps weekday -> headcount for full-day templates.
// The same count applies to every role on the template.
type FullDayTargets map[string]int

// Value implements driver.Valuer
func (t FullDayTargets) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	b, err := json.Marshal(t)
	return string(b), err
}

// Scan implements sql.Scanner
func (t *FullDayTargets) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported type %T for FullDayTargets", value)
	}
}

// Lookup returns the headcount for a weekday, zero when absent
func (t FullDayTargets) Lookup(weekday string) int {
	n := t[weekday]
	if n < 0 {
		return 0
	}
	return n
}

// Validate rejects unknown weekday keys and negative counts
func (t FullDayTargets) Validate() error {
	for weekday, count := range t {
		if !IsValidWeekday(weekday) {
			return fmt.Errorf("full-day targets: unknown weekday %q", weekday)
		}
		if count < 0 {
			return fmt.Errorf("full-day targets: negative headcount %d for %s", count, weekday)
		}
	}
	return nil
}

// DefaultMonthlyHours is the monthly hour baseline used when an account has none configured
const DefaultMonthlyHours = 160

// AccountSettings holds per-account scheduling configuration
type AccountSettings struct {
	BaseModel
	AccountID uuid.UUID `json:"account_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	// MonthlyHours is the full-time monthly target, scaled by each employee's rate
	MonthlyHours int `json:"monthly_hours" gorm:"not null;default:160" validate:"min=0"`
	// Location is the fixed location label stamped on generated shift instances
	Location        string          `json:"location" gorm:"size:100;default:'hospital'"`
	StaffingTargets StaffingTargets `json:"staffing_targets" gorm:"type:jsonb"`
	FullDayTargets  FullDayTargets  `json:"full_day_targets" gorm:"type:jsonb"`

	// Relationships
	Account Account `json:"account,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AccountSettings
func (AccountSettings) TableName() string {
	return "account_settings"
}
