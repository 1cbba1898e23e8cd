package repository

import (
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AccountRepositoryInterface defines the interface for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	Delete(id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByAccountID(accountID uuid.UUID, limit, offset int) ([]models.Employee, int64, error)
	GetByAccountIDWithAvailability(accountID uuid.UUID) ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// AvailabilityRepositoryInterface defines the interface for availability repository operations
type AvailabilityRepositoryInterface interface {
	Upsert(record *models.AvailabilityRecord) error
	GetByEmployeeID(employeeID uuid.UUID) ([]models.AvailabilityRecord, error)
	GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) (*models.AvailabilityRecord, error)
	GetByAccountForMonth(accountID uuid.UUID, year int, month time.Month) ([]models.AvailabilityRecord, error)
	DeleteByEmployeeAndDate(employeeID uuid.UUID, date time.Time) error
	Delete(id uuid.UUID) error
}

// ShiftTemplateRepositoryInterface defines the interface for shift template repository operations
type ShiftTemplateRepositoryInterface interface {
	Create(template *models.ShiftTemplate) error
	GetByID(id uuid.UUID) (*models.ShiftTemplate, error)
	GetByAccountID(accountID uuid.UUID) ([]models.ShiftTemplate, error)
	Update(template *models.ShiftTemplate) error
	Delete(id uuid.UUID) error
}

// AccountSettingsRepositoryInterface defines the interface for settings repository operations
type AccountSettingsRepositoryInterface interface {
	GetByAccountID(accountID uuid.UUID) (*models.AccountSettings, error)
	Upsert(settings *models.AccountSettings) error
}

// ShiftRepositoryInterface defines the interface for persisted shift repository operations
type ShiftRepositoryInterface interface {
	ReplaceForPeriod(accountID uuid.UUID, year int, month int, shifts []models.Shift) error
	GetByPeriod(accountID uuid.UUID, year int, month int) ([]models.Shift, error)
	GetByEmployeeAndPeriod(employeeID uuid.UUID, year int, month int) ([]models.Shift, error)
}

// ScheduleSnapshotRepositoryInterface defines the interface for snapshot repository operations
type ScheduleSnapshotRepositoryInterface interface {
	Upsert(snapshot *models.ScheduleSnapshot) error
	GetByPeriod(accountID uuid.UUID, year int, month int) (*models.ScheduleSnapshot, error)
}
