package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/repository"
)

// UpdateSettingsRequest represents a full settings write for an account.
// The nested staffing shapes are validated here so generation never has to
// defend against malformed weekday keys or negative counts.
type UpdateSettingsRequest struct {
	MonthlyHours    *int                   `json:"monthly_hours,omitempty" validate:"omitempty,min=0"`
	Location        *string                `json:"location,omitempty" validate:"omitempty,max=100"`
	StaffingTargets models.StaffingTargets `json:"staffing_targets,omitempty"`
	FullDayTargets  models.FullDayTargets  `json:"full_day_targets,omitempty"`
}

// SettingsResponse represents account settings in API responses
type SettingsResponse struct {
	AccountID       uuid.UUID              `json:"account_id"`
	MonthlyHours    int                    `json:"monthly_hours"`
	Location        string                 `json:"location"`
	StaffingTargets models.StaffingTargets `json:"staffing_targets"`
	FullDayTargets  models.FullDayTargets  `json:"full_day_targets"`
}

// SettingsService handles account settings business logic
type SettingsService struct {
	settingsRepo repository.AccountSettingsRepositoryInterface
	accountRepo  repository.AccountRepositoryInterface
	validator    *validator.Validate
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.AccountSettingsRepositoryInterface, accountRepo repository.AccountRepositoryInterface) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		accountRepo:  accountRepo,
		validator:    validator.New(),
	}
}

// Get returns the account's settings. Accounts that never saved settings get
// the defaults rather than a not-found error.
func (s *SettingsService) Get(accountID uuid.UUID) (*SettingsResponse, error) {
	if _, err := s.accountRepo.GetByID(accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	settings, err := s.settingsRepo.GetByAccountID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &SettingsResponse{
				AccountID:       accountID,
				MonthlyHours:    models.DefaultMonthlyHours,
				Location:        "hospital",
				StaffingTargets: models.StaffingTargets{},
				FullDayTargets:  models.FullDayTargets{},
			}, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return toSettingsResponse(settings), nil
}

// Update writes the account's settings, validating the staffing shapes first
func (s *SettingsService) Update(accountID uuid.UUID, req *UpdateSettingsRequest) (*SettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := req.StaffingTargets.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := req.FullDayTargets.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if _, err := s.accountRepo.GetByID(accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	settings, err := s.settingsRepo.GetByAccountID(accountID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = &models.AccountSettings{
			AccountID:    accountID,
			MonthlyHours: models.DefaultMonthlyHours,
			Location:     "hospital",
		}
	}

	if req.MonthlyHours != nil {
		settings.MonthlyHours = *req.MonthlyHours
	}
	if req.Location != nil {
		settings.Location = *req.Location
	}
	if req.StaffingTargets != nil {
		settings.StaffingTargets = req.StaffingTargets
	}
	if req.FullDayTargets != nil {
		settings.FullDayTargets = req.FullDayTargets
	}

	if err := s.settingsRepo.Upsert(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(settings *models.AccountSettings) *SettingsResponse {
	resp := &SettingsResponse{
		AccountID:       settings.AccountID,
		MonthlyHours:    settings.MonthlyHours,
		Location:        settings.Location,
		StaffingTargets: settings.StaffingTargets,
		FullDayTargets:  settings.FullDayTargets,
	}
	if resp.StaffingTargets == nil {
		resp.StaffingTargets = models.StaffingTargets{}
	}
	if resp.FullDayTargets == nil {
		resp.FullDayTargets = models.FullDayTargets{}
	}
	return resp
}
