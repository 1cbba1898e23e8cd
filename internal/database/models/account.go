package models

// Account represents a tenant: one manager-owned roster with its settings and schedules
type Account struct {
	BaseModel
	Name  string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`

	// Relationships
	Employees      []Employee      `json:"employees,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	ShiftTemplates []ShiftTemplate `json:"shift_templates,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}
