package repository

import (
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityRepository handles database operations for availability records
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Upsert writes a record for (employee, date), superseding any existing one.
// A status change replaces the stored row rather than patching it.
func (r *AvailabilityRepository) Upsert(record *models.AvailabilityRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":     record.Status,
			"full_day":   record.FullDay,
			"start_time": record.StartTime,
			"end_time":   record.EndTime,
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(record).Error
}

// GetByEmployeeID retrieves all availability records for an employee
func (r *AvailabilityRepository) GetByEmployeeID(employeeID uuid.UUID) ([]models.AvailabilityRecord, error) {
	var records []models.AvailabilityRecord
	err := r.db.Where("employee_id = ?", employeeID).Order("date ASC").Find(&records).Error
	return records, err
}

// GetByEmployeeAndDate retrieves the record for one employee and date
func (r *AvailabilityRepository) GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) (*models.AvailabilityRecord, error) {
	var record models.AvailabilityRecord
	err := r.db.First(&record, "employee_id = ? AND date = ?", employeeID, date).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByAccountForMonth retrieves all availability records in a month across
// an account's roster
func (r *AvailabilityRepository) GetByAccountForMonth(accountID uuid.UUID, year int, month time.Month) ([]models.AvailabilityRecord, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var records []models.AvailabilityRecord
	err := r.db.
		Joins("JOIN employees ON employees.id = availability_records.employee_id").
		Where("employees.account_id = ? AND availability_records.date >= ? AND availability_records.date < ?", accountID, from, to).
		Order("availability_records.date ASC").
		Find(&records).Error
	return records, err
}

// DeleteByEmployeeAndDate clears one calendar cell
func (r *AvailabilityRepository) DeleteByEmployeeAndDate(employeeID uuid.UUID, date time.Time) error {
	result := r.db.Delete(&models.AvailabilityRecord{}, "employee_id = ? AND date = ?", employeeID, date)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes an availability record by ID
func (r *AvailabilityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AvailabilityRecord{}, "id = ?", id).Error
}
