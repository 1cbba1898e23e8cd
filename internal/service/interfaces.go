package service

import (
	"context"

	"github.com/google/uuid"

	"shift-planner-backend/internal/database/models"
	"shift-planner-backend/internal/scheduling"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SolverServiceInterface defines the interface for the external solver client
type SolverServiceInterface interface {
	Submit(ctx context.Context, request *scheduling.SolverRequest) (string, error)
	GetStatus(ctx context.Context, jobID string) (*scheduling.SolvedSchedule, error)
	Solve(ctx context.Context, request *scheduling.SolverRequest) (*scheduling.SolvedSchedule, error)
}

// ScheduleServiceInterface defines the interface for schedule operations
type ScheduleServiceInterface interface {
	Generate(ctx context.Context, req *GenerateScheduleRequest) (*ScheduleResponse, error)
	Save(ctx context.Context, req *SaveScheduleRequest) (*ScheduleResponse, error)
	GetSchedule(ctx context.Context, accountID uuid.UUID, year, month int) (*ScheduleResponse, error)
	GetShifts(ctx context.Context, accountID uuid.UUID, year, month int) ([]models.Shift, error)
}

// AccountServiceInterface defines the interface for tenant lifecycle operations
type AccountServiceInterface interface {
	Register(req *RegisterAccountRequest) (*AccountResponse, error)
	Token(req *TokenRequest) (*TokenResponse, error)
	Get(id uuid.UUID) (*AccountResponse, error)
	Delete(id uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for roster operations
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	Get(id uuid.UUID) (*EmployeeResponse, error)
	List(accountID uuid.UUID, limit, offset int) (*EmployeeListResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
}

// AvailabilityServiceInterface defines the interface for availability operations
type AvailabilityServiceInterface interface {
	Set(employeeID uuid.UUID, req *SetAvailabilityRequest) (*AvailabilityResponse, error)
	List(employeeID uuid.UUID) ([]AvailabilityResponse, error)
	Clear(employeeID uuid.UUID, date string) error
}

// ShiftTemplateServiceInterface defines the interface for shift template operations
type ShiftTemplateServiceInterface interface {
	Create(req *CreateShiftTemplateRequest) (*ShiftTemplateResponse, error)
	Get(id uuid.UUID) (*ShiftTemplateResponse, error)
	List(accountID uuid.UUID) ([]ShiftTemplateResponse, error)
	Update(id uuid.UUID, req *UpdateShiftTemplateRequest) (*ShiftTemplateResponse, error)
	Delete(id uuid.UUID) error
}

// SettingsServiceInterface defines the interface for account settings operations
type SettingsServiceInterface interface {
	Get(accountID uuid.UUID) (*SettingsResponse, error)
	Update(accountID uuid.UUID, req *UpdateSettingsRequest) (*SettingsResponse, error)
}
