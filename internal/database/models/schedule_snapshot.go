package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ScheduleSnapshot is the UI's working copy of a month's schedule after human
// adjustment: an opaque payload keyed by role, shifts carrying employee names
// (not ids) for portability. Upserted by (account, year, month).
type ScheduleSnapshot struct {
	BaseModel
	AccountID uuid.UUID       `json:"account_id" gorm:"type:uuid;not null;uniqueIndex:idx_snapshots_account_period" validate:"required"`
	Year      int             `json:"year" gorm:"not null;uniqueIndex:idx_snapshots_account_period" validate:"required,min=2020,max=2100"`
	Month     int             `json:"month" gorm:"not null;uniqueIndex:idx_snapshots_account_period" validate:"required,min=1,max=12"`
	Payload   json.RawMessage `json:"payload" gorm:"type:jsonb;not null"`

	// Relationships
	Account Account `json:"account,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduleSnapshot
func (ScheduleSnapshot) TableName() string {
	return "schedule_snapshots"
}
