package repository

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountSettingsRepository handles database operations for account settings
type AccountSettingsRepository struct {
	db *gorm.DB
}

// NewAccountSettingsRepository creates a new account settings repository
func NewAccountSettingsRepository(db *gorm.DB) *AccountSettingsRepository {
	return &AccountSettingsRepository{db: db}
}

// GetByAccountID retrieves settings for an account
func (r *AccountSettingsRepository) GetByAccountID(accountID uuid.UUID) (*models.AccountSettings, error) {
	var settings models.AccountSettings
	err := r.db.First(&settings, "account_id = ?", accountID).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert writes settings keyed by account id in a single query
func (r *AccountSettingsRepository) Upsert(settings *models.AccountSettings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"monthly_hours":    settings.MonthlyHours,
			"location":         settings.Location,
			"staffing_targets": settings.StaffingTargets,
			"full_day_targets": settings.FullDayTargets,
			"updated_at":       gorm.Expr("NOW()"),
		}),
	}).Create(settings).Error
}
