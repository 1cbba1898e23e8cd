package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/scheduling"
)

// CreateShiftTemplateRequest represents the request to create a shift template
type CreateShiftTemplateRequest struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
	Label     string    `json:"label" validate:"required,max=50"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
	Weekdays  []string  `json:"weekdays" validate:"required,min=1,dive,required"`
	Roles     []string  `json:"roles" validate:"required,min=1,dive,required"`
	FullDay   bool      `json:"full_day"`
	// Split-staffing parameters, both optional
	SplitHeadcount *int `json:"split_headcount,omitempty"`
	SplitHour      *int `json:"split_hour,omitempty" validate:"omitempty,min=0,max=23"`
}

// UpdateShiftTemplateRequest represents a partial template update
type UpdateShiftTemplateRequest struct {
	Label          *string  `json:"label,omitempty" validate:"omitempty,max=50"`
	StartTime      *string  `json:"start_time,omitempty"`
	EndTime        *string  `json:"end_time,omitempty"`
	Weekdays       []string `json:"weekdays,omitempty" validate:"omitempty,min=1,dive,required"`
	Roles          []string `json:"roles,omitempty" validate:"omitempty,min=1,dive,required"`
	FullDay        *bool    `json:"full_day,omitempty"`
	SplitHeadcount *int     `json:"split_headcount,omitempty"`
	SplitHour      *int     `json:"split_hour,omitempty" validate:"omitempty,min=0,max=23"`
}

// ShiftTemplateResponse represents a shift template in API responses
type ShiftTemplateResponse struct {
	ID             uuid.UUID `json:"id"`
	AccountID      uuid.UUID `json:"account_id"`
	Label          string    `json:"label"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Weekdays       []string  `json:"weekdays"`
	Roles          []string  `json:"roles"`
	FullDay        bool      `json:"full_day"`
	SplitHeadcount *int      `json:"split_headcount,omitempty"`
	SplitHour      *int      `json:"split_hour,omitempty"`
}

// ShiftTemplateService handles shift template business logic
type ShiftTemplateService struct {
	templateRepo repository.ShiftTemplateRepositoryInterface
	accountRepo  repository.AccountRepositoryInterface
	validator    *validator.Validate
}

// NewShiftTemplateService creates a new shift template service
func NewShiftTemplateService(templateRepo repository.ShiftTemplateRepositoryInterface, accountRepo repository.AccountRepositoryInterface) *ShiftTemplateService {
	return &ShiftTemplateService{
		templateRepo: templateRepo,
		accountRepo:  accountRepo,
		validator:    validator.New(),
	}
}

// Create creates a shift template for an account
func (s *ShiftTemplateService) Create(req *CreateShiftTemplateRequest) (*ShiftTemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	weekdays, err := normalizeWeekdays(req.Weekdays)
	if err != nil {
		return nil, err
	}
	if err := validateTemplateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.GetByID(req.AccountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	template := &models.ShiftTemplate{
		AccountID:      req.AccountID,
		Label:          strings.ToLower(strings.TrimSpace(req.Label)),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Weekdays:       weekdays,
		Roles:          normalizeRoles(req.Roles),
		FullDay:        req.FullDay,
		SplitHeadcount: req.SplitHeadcount,
		SplitHour:      req.SplitHour,
	}
	if err := s.templateRepo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create shift template: %w", err)
	}
	return toShiftTemplateResponse(template), nil
}

// Get retrieves one shift template by id
func (s *ShiftTemplateService) Get(id uuid.UUID) (*ShiftTemplateResponse, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get shift template: %w", err)
	}
	return toShiftTemplateResponse(template), nil
}

// List returns all shift templates of an account
func (s *ShiftTemplateService) List(accountID uuid.UUID) ([]ShiftTemplateResponse, error) {
	templates, err := s.templateRepo.GetByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift templates: %w", err)
	}

	responses := make([]ShiftTemplateResponse, len(templates))
	for i := range templates {
		responses[i] = *toShiftTemplateResponse(&templates[i])
	}
	return responses, nil
}

// Update applies a partial update to a shift template
func (s *ShiftTemplateService) Update(id uuid.UUID, req *UpdateShiftTemplateRequest) (*ShiftTemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get shift template: %w", err)
	}

	if req.Label != nil {
		template.Label = strings.ToLower(strings.TrimSpace(*req.Label))
	}
	if req.StartTime != nil {
		template.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		template.EndTime = *req.EndTime
	}
	if err := validateTemplateWindow(template.StartTime, template.EndTime); err != nil {
		return nil, err
	}
	if req.Weekdays != nil {
		weekdays, err := normalizeWeekdays(req.Weekdays)
		if err != nil {
			return nil, err
		}
		template.Weekdays = weekdays
	}
	if req.Roles != nil {
		template.Roles = normalizeRoles(req.Roles)
	}
	if req.FullDay != nil {
		template.FullDay = *req.FullDay
	}
	if req.SplitHeadcount != nil {
		template.SplitHeadcount = req.SplitHeadcount
	}
	if req.SplitHour != nil {
		template.SplitHour = req.SplitHour
	}

	if err := s.templateRepo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update shift template: %w", err)
	}
	return toShiftTemplateResponse(template), nil
}

// Delete removes a shift template
func (s *ShiftTemplateService) Delete(id uuid.UUID) error {
	if _, err := s.templateRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftTemplateNotFound
		}
		return fmt.Errorf("failed to get shift template: %w", err)
	}
	if err := s.templateRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift template: %w", err)
	}
	return nil
}

func normalizeWeekdays(weekdays []string) (models.StringList, error) {
	normalized := make(models.StringList, 0, len(weekdays))
	for _, day := range weekdays {
		day = strings.ToLower(strings.TrimSpace(day))
		if !models.IsValidWeekday(day) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidWeekday, day)
		}
		normalized = append(normalized, day)
	}
	return normalized, nil
}

func validateTemplateWindow(startTime, endTime string) error {
	if _, err := scheduling.ParseTimeOfDay(startTime); err != nil {
		return fmt.Errorf("%w: start_time %q", apperrors.ErrInvalidTimeOfDay, startTime)
	}
	if _, err := scheduling.ParseTimeOfDay(endTime); err != nil {
		return fmt.Errorf("%w: end_time %q", apperrors.ErrInvalidTimeOfDay, endTime)
	}
	return nil
}

func toShiftTemplateResponse(template *models.ShiftTemplate) *ShiftTemplateResponse {
	return &ShiftTemplateResponse{
		ID:             template.ID,
		AccountID:      template.AccountID,
		Label:          template.Label,
		StartTime:      template.StartTime,
		EndTime:        template.EndTime,
		Weekdays:       template.Weekdays,
		Roles:          template.Roles,
		FullDay:        template.FullDay,
		SplitHeadcount: template.SplitHeadcount,
		SplitHour:      template.SplitHour,
	}
}
