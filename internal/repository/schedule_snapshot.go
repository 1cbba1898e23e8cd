package repository

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleSnapshotRepository handles database operations for schedule snapshots
type ScheduleSnapshotRepository struct {
	db *gorm.DB
}

// NewScheduleSnapshotRepository creates a new schedule snapshot repository
func NewScheduleSnapshotRepository(db *gorm.DB) *ScheduleSnapshotRepository {
	return &ScheduleSnapshotRepository{db: db}
}

// Upsert fully replaces the snapshot payload for (account, year, month)
func (r *ScheduleSnapshotRepository) Upsert(snapshot *models.ScheduleSnapshot) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"payload":    snapshot.Payload,
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(snapshot).Error
}

// GetByPeriod retrieves the snapshot for (account, year, month)
func (r *ScheduleSnapshotRepository) GetByPeriod(accountID uuid.UUID, year int, month int) (*models.ScheduleSnapshot, error) {
	var snapshot models.ScheduleSnapshot
	err := r.db.First(&snapshot, "account_id = ? AND year = ? AND month = ?", accountID, year, month).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
