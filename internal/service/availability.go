package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/scheduling"
)

const dateLayout = "2006-01-02"

// SetAvailabilityRequest marks one employee's status for one calendar date.
// Setting a date that already has a record replaces it.
type SetAvailabilityRequest struct {
	Date    string `json:"date" validate:"required"`
	Status  string `json:"status" validate:"required"`
	FullDay *bool  `json:"full_day,omitempty"`
	// StartTime/EndTime bound a partial-day record ("HH:MM:SS"); ignored for full-day
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// AvailabilityResponse represents an availability record in API responses
type AvailabilityResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	FullDay    bool      `json:"full_day"`
	StartTime  string    `json:"start_time,omitempty"`
	EndTime    string    `json:"end_time,omitempty"`
}

// AvailabilityService handles availability business logic
type AvailabilityService struct {
	availabilityRepo repository.AvailabilityRepositoryInterface
	employeeRepo     repository.EmployeeRepositoryInterface
	validator        *validator.Validate
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(availabilityRepo repository.AvailabilityRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface) *AvailabilityService {
	return &AvailabilityService{
		availabilityRepo: availabilityRepo,
		employeeRepo:     employeeRepo,
		validator:        validator.New(),
	}
}

// Set records the employee's status for a date, replacing any existing record
// for the same date.
func (s *AvailabilityService) Set(employeeID uuid.UUID, req *SetAvailabilityRequest) (*AvailabilityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	status := models.AvailabilityStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAvailabilityStatus, req.Status)
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date))
	}

	fullDay := true
	if req.FullDay != nil {
		fullDay = *req.FullDay
	}
	if !fullDay {
		if _, err := scheduling.ParseTimeOfDay(req.StartTime); err != nil {
			return nil, fmt.Errorf("%w: start_time %q", apperrors.ErrInvalidTimeOfDay, req.StartTime)
		}
		if _, err := scheduling.ParseTimeOfDay(req.EndTime); err != nil {
			return nil, fmt.Errorf("%w: end_time %q", apperrors.ErrInvalidTimeOfDay, req.EndTime)
		}
	}

	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	record := &models.AvailabilityRecord{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		FullDay:    fullDay,
	}
	if !fullDay {
		record.StartTime = req.StartTime
		record.EndTime = req.EndTime
	}

	if err := s.availabilityRepo.Upsert(record); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}
	return toAvailabilityResponse(record), nil
}

// List returns all availability records of one employee
func (s *AvailabilityService) List(employeeID uuid.UUID) ([]AvailabilityResponse, error) {
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.availabilityRepo.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}

	responses := make([]AvailabilityResponse, len(records))
	for i := range records {
		responses[i] = *toAvailabilityResponse(&records[i])
	}
	return responses, nil
}

// Clear removes the employee's record for one date
func (s *AvailabilityService) Clear(employeeID uuid.UUID, dateStr string) error {
	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", dateStr))
	}

	if err := s.availabilityRepo.DeleteByEmployeeAndDate(employeeID, date); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAvailabilityNotFound
		}
		return fmt.Errorf("failed to delete availability: %w", err)
	}
	return nil
}

func toAvailabilityResponse(record *models.AvailabilityRecord) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Date:       record.Date.Format(dateLayout),
		Status:     string(record.Status),
		FullDay:    record.FullDay,
		StartTime:  record.StartTime,
		EndTime:    record.EndTime,
	}
}
