package repository

import (
	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for persisted shift assignments
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// ReplaceForPeriod atomically swaps the full shift set for (account, year, month):
// existing rows are deleted and the new set inserted inside one transaction, so a
// failure at any point leaves the prior rows intact. An empty set clears the period.
func (r *ShiftRepository) ReplaceForPeriod(accountID uuid.UUID, year int, month int, shifts []models.Shift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ? AND year = ? AND month = ?", accountID, year, month).
			Delete(&models.Shift{}).Error; err != nil {
			return err
		}
		if len(shifts) == 0 {
			return nil
		}
		return tx.CreateInBatches(shifts, 200).Error
	})
}

// GetByPeriod retrieves the canonical shift set for (account, year, month)
func (r *ShiftRepository) GetByPeriod(accountID uuid.UUID, year int, month int) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("account_id = ? AND year = ? AND month = ?", accountID, year, month).
		Order("starts_at ASC").
		Find(&shifts).Error
	return shifts, err
}

// GetByEmployeeAndPeriod retrieves one employee's shifts for a month
func (r *ShiftRepository) GetByEmployeeAndPeriod(employeeID uuid.UUID, year int, month int) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		Order("starts_at ASC").
		Find(&shifts).Error
	return shifts, err
}
