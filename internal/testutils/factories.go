package testutils

import (
	"fmt"
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenience in suites
type FactorySet struct {
	Account       *AccountFactory
	Employee      *EmployeeFactory
	Availability  *AvailabilityFactory
	ShiftTemplate *ShiftTemplateFactory
	Settings      *SettingsFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Account:       NewAccountFactory(),
		Employee:      NewEmployeeFactory(),
		Availability:  NewAvailabilityFactory(),
		ShiftTemplate: NewShiftTemplateFactory(),
		Settings:      NewSettingsFactory(),
	}
}

// AccountFactory provides methods to create test Account data
type AccountFactory struct{}

// NewAccountFactory creates a new AccountFactory
func NewAccountFactory() *AccountFactory {
	return &AccountFactory{}
}

// Create creates a test Account with default values
func (f *AccountFactory) Create() *models.Account {
	id := uuid.New()
	return &models.Account{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Maternity Ward",
		// unique per account to satisfy the email index
		Email: fmt.Sprintf("manager-%s@ward.example", id.String()[:8]),
	}
}

// WithEmail sets a custom email for the account
func (f *AccountFactory) WithEmail(email string) *models.Account {
	account := f.Create()
	account.Email = email
	return account
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create(accountID uuid.UUID) *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AccountID: accountID,
		Name:      "Nurse " + id.String()[:8],
		Roles:     models.StringList{"nurse"},
		Rate:      1.0,
	}
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(accountID uuid.UUID, name string) *models.Employee {
	employee := f.Create(accountID)
	employee.Name = name
	return employee
}

// WithRoles sets custom roles for the employee
func (f *EmployeeFactory) WithRoles(accountID uuid.UUID, roles ...string) *models.Employee {
	employee := f.Create(accountID)
	employee.Roles = models.StringList(roles)
	return employee
}

// AvailabilityFactory provides methods to create test AvailabilityRecord data
type AvailabilityFactory struct{}

// NewAvailabilityFactory creates a new AvailabilityFactory
func NewAvailabilityFactory() *AvailabilityFactory {
	return &AvailabilityFactory{}
}

// Create creates a full-day test record with default values
func (f *AvailabilityFactory) Create(employeeID uuid.UUID, date time.Time, status models.AvailabilityStatus) *models.AvailabilityRecord {
	return &models.AvailabilityRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		FullDay:    true,
	}
}

// Partial creates a partial-day test record
func (f *AvailabilityFactory) Partial(employeeID uuid.UUID, date time.Time, status models.AvailabilityStatus, startTime, endTime string) *models.AvailabilityRecord {
	record := f.Create(employeeID, date, status)
	record.FullDay = false
	record.StartTime = startTime
	record.EndTime = endTime
	return record
}

// ShiftTemplateFactory provides methods to create test ShiftTemplate data
type ShiftTemplateFactory struct{}

// NewShiftTemplateFactory creates a new ShiftTemplateFactory
func NewShiftTemplateFactory() *ShiftTemplateFactory {
	return &ShiftTemplateFactory{}
}

// Create creates a test ShiftTemplate with default values
func (f *ShiftTemplateFactory) Create(accountID uuid.UUID) *models.ShiftTemplate {
	return &models.ShiftTemplate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AccountID: accountID,
		Label:     "early",
		StartTime: "07:00:00",
		EndTime:   "15:00:00",
		Weekdays:  models.StringList{"monday", "tuesday", "wednesday", "thursday", "friday"},
		Roles:     models.StringList{"nurse"},
	}
}

// WithLabel sets a custom label and window for the template
func (f *ShiftTemplateFactory) WithLabel(accountID uuid.UUID, label, startTime, endTime string) *models.ShiftTemplate {
	template := f.Create(accountID)
	template.Label = label
	template.StartTime = startTime
	template.EndTime = endTime
	return template
}

// SettingsFactory provides methods to create test AccountSettings data
type SettingsFactory struct{}

// NewSettingsFactory creates a new SettingsFactory
func NewSettingsFactory() *SettingsFactory {
	return &SettingsFactory{}
}

// Create creates test settings with a single nurse/early staffing cell
func (f *SettingsFactory) Create(accountID uuid.UUID) *models.AccountSettings {
	return &models.AccountSettings{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AccountID:    accountID,
		MonthlyHours: models.DefaultMonthlyHours,
		Location:     "hospital",
		StaffingTargets: models.StaffingTargets{
			"nurse": {"early": {"monday": 1, "tuesday": 1, "wednesday": 1, "thursday": 1, "friday": 1}},
		},
		FullDayTargets: models.FullDayTargets{},
	}
}
