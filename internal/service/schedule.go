package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/logger"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/scheduling"
)

// GenerateScheduleRequest asks for a fresh schedule for one account month.
// Year defaults to the current year when omitted.
type GenerateScheduleRequest struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
	Year      int       `json:"year" validate:"omitempty,min=2000,max=2200"`
	Month     int       `json:"month" validate:"required,min=1,max=12"`
}

// ShiftEdit is one externally edited assignment. The employee is referenced
// by display name; entries without a role are presentation rows and are
// dropped during save.
type ShiftEdit struct {
	Employee struct {
		Name string `json:"name"`
	} `json:"employee"`
	Role    string              `json:"role"`
	Start   scheduling.CivilTime `json:"start"`
	End     scheduling.CivilTime `json:"end"`
	FullDay bool                `json:"fullDay"`
}

// SaveScheduleRequest persists an externally edited schedule for one month.
type SaveScheduleRequest struct {
	AccountID uuid.UUID   `json:"account_id" validate:"required"`
	Year      int         `json:"year" validate:"omitempty,min=2000,max=2200"`
	Month     int         `json:"month" validate:"required,min=1,max=12"`
	Schedule  []ShiftEdit `json:"schedule"`
}

// SnapshotShift is one assignment inside the per-role snapshot payload.
type SnapshotShift struct {
	Employee string               `json:"employee"`
	Role     string               `json:"role"`
	Start    scheduling.CivilTime `json:"start"`
	End      scheduling.CivilTime `json:"end"`
	FullDay  bool                 `json:"fullDay"`
}

// RoleSchedule groups the snapshot assignments of a single role.
type RoleSchedule struct {
	Shifts []SnapshotShift `json:"shifts"`
}

// ScheduleResponse is the schedule surface returned after generation and on
// reads: the per-role grouping plus the period it covers.
type ScheduleResponse struct {
	AccountID uuid.UUID                `json:"account_id"`
	Year      int                      `json:"year"`
	Month     int                      `json:"month"`
	Schedule  map[string]*RoleSchedule `json:"schedule"`
}

// ScheduleService drives the monthly pipeline: expand staffing demand, build
// the solver request from the roster, run the solver job, then reconcile the
// outcome into the snapshot and the canonical per-employee shift rows.
type ScheduleService struct {
	accountRepo  repository.AccountRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	templateRepo repository.ShiftTemplateRepositoryInterface
	settingsRepo repository.AccountSettingsRepositoryInterface
	shiftRepo    repository.ShiftRepositoryInterface
	snapshotRepo repository.ScheduleSnapshotRepositoryInterface
	solver       SolverServiceInterface
	validator    *validator.Validate
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	accountRepo repository.AccountRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	templateRepo repository.ShiftTemplateRepositoryInterface,
	settingsRepo repository.AccountSettingsRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	snapshotRepo repository.ScheduleSnapshotRepositoryInterface,
	solver SolverServiceInterface,
) *ScheduleService {
	return &ScheduleService{
		accountRepo:  accountRepo,
		employeeRepo: employeeRepo,
		templateRepo: templateRepo,
		settingsRepo: settingsRepo,
		shiftRepo:    shiftRepo,
		snapshotRepo: snapshotRepo,
		solver:       solver,
		validator:    validator.New(),
	}
}

// Generate runs the full pipeline for the requested month and returns the
// per-role schedule that was persisted.
func (s *ScheduleService) Generate(ctx context.Context, req *GenerateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	year := req.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"account_id": req.AccountID.String(),
		"year":       year,
		"month":      req.Month,
	})

	if _, err := s.accountRepo.GetByID(req.AccountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	employees, err := s.employeeRepo.GetByAccountIDWithAvailability(req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	templates, err := s.templateRepo.GetByAccountID(req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift templates: %w", err)
	}
	settings, err := s.settingsRepo.GetByAccountID(req.AccountID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = &models.AccountSettings{MonthlyHours: models.DefaultMonthlyHours}
	}

	request, err := scheduling.BuildSolverRequest(scheduling.BuildInput{
		Year:           year,
		Month:          time.Month(req.Month),
		Employees:      employees,
		Templates:      templates,
		Targets:        settings.StaffingTargets,
		FullDayTargets: settings.FullDayTargets,
		MonthlyHours:   settings.MonthlyHours,
		Location:       settings.Location,
	})
	if err != nil {
		return nil, err
	}
	log.Infof("Built solver request: employees=%d shifts=%d", len(request.Employees), len(request.Shifts))

	solved, err := s.solver.Solve(ctx, request)
	if err != nil {
		return nil, err
	}

	grouped := groupByRole(solved.Shifts)
	if err := s.persist(ctx, req.AccountID, year, req.Month, employees, grouped); err != nil {
		return nil, err
	}

	return &ScheduleResponse{
		AccountID: req.AccountID,
		Year:      year,
		Month:     req.Month,
		Schedule:  grouped,
	}, nil
}

// Save persists an externally edited schedule, replacing whatever the month
// held before. Entries without a role are dropped; entries naming an unknown
// employee keep their snapshot row but produce no canonical shift.
func (s *ScheduleService) Save(ctx context.Context, req *SaveScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if len(req.Schedule) == 0 {
		return nil, apperrors.ErrEmptySchedule
	}
	year := req.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	if _, err := s.accountRepo.GetByID(req.AccountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	employees, _, err := s.employeeRepo.GetByAccountID(req.AccountID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	grouped := make(map[string]*RoleSchedule)
	for _, edit := range req.Schedule {
		if edit.Role == "" {
			continue
		}
		bucket, ok := grouped[edit.Role]
		if !ok {
			bucket = &RoleSchedule{Shifts: []SnapshotShift{}}
			grouped[edit.Role] = bucket
		}
		bucket.Shifts = append(bucket.Shifts, SnapshotShift{
			Employee: edit.Employee.Name,
			Role:     edit.Role,
			Start:    edit.Start,
			End:      edit.End,
			FullDay:  edit.FullDay,
		})
	}

	if err := s.persist(ctx, req.AccountID, year, req.Month, employees, grouped); err != nil {
		return nil, err
	}

	return &ScheduleResponse{
		AccountID: req.AccountID,
		Year:      year,
		Month:     req.Month,
		Schedule:  grouped,
	}, nil
}

// GetSchedule returns the saved per-role snapshot for one month.
func (s *ScheduleService) GetSchedule(ctx context.Context, accountID uuid.UUID, year, month int) (*ScheduleResponse, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	snapshot, err := s.snapshotRepo.GetByPeriod(accountID, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to load schedule snapshot: %w", err)
	}

	var grouped map[string]*RoleSchedule
	if err := json.Unmarshal(snapshot.Payload, &grouped); err != nil {
		return nil, fmt.Errorf("failed to decode schedule snapshot: %w", err)
	}

	return &ScheduleResponse{
		AccountID: accountID,
		Year:      year,
		Month:     month,
		Schedule:  grouped,
	}, nil
}

// GetShifts returns the canonical per-employee shift rows for one month.
func (s *ScheduleService) GetShifts(ctx context.Context, accountID uuid.UUID, year, month int) ([]models.Shift, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	return s.shiftRepo.GetByPeriod(accountID, year, month)
}

// persist writes the snapshot and rebuilds the month's canonical shift rows
// in one pass so the two representations describe the same schedule.
func (s *ScheduleService) persist(ctx context.Context, accountID uuid.UUID, year, month int, employees []models.Employee, grouped map[string]*RoleSchedule) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"account_id": accountID.String(),
		"year":       year,
		"month":      month,
	})

	payload, err := json.Marshal(grouped)
	if err != nil {
		return fmt.Errorf("failed to encode schedule snapshot: %w", err)
	}
	if err := s.snapshotRepo.Upsert(&models.ScheduleSnapshot{
		AccountID: accountID,
		Year:      year,
		Month:     month,
		Payload:   payload,
	}); err != nil {
		return fmt.Errorf("failed to save schedule snapshot: %w", err)
	}

	// Display names are resolved to ids by first match; a roster with
	// duplicate names keeps the first and logs the collision.
	byName := make(map[string]uuid.UUID, len(employees))
	for _, emp := range employees {
		if _, exists := byName[emp.Name]; exists {
			log.Warnf("Duplicate employee name in roster, keeping first: name=%s", emp.Name)
			continue
		}
		byName[emp.Name] = emp.ID
	}

	var rows []models.Shift
	for role, bucket := range grouped {
		for _, shift := range bucket.Shifts {
			if shift.Employee == "" {
				continue
			}
			employeeID, ok := byName[shift.Employee]
			if !ok {
				log.Warnf("Assignment references unknown employee, skipping: name=%s role=%s", shift.Employee, role)
				continue
			}
			rows = append(rows, models.Shift{
				AccountID:  accountID,
				EmployeeID: employeeID,
				Year:       year,
				Month:      month,
				Role:       role,
				StartsAt:   time.Time(shift.Start),
				EndsAt:     time.Time(shift.End),
				FullDay:    shift.FullDay,
			})
		}
	}

	if err := s.shiftRepo.ReplaceForPeriod(accountID, year, month, rows); err != nil {
		return fmt.Errorf("failed to persist shifts: %w", err)
	}
	log.Infof("Schedule persisted: roles=%d shifts=%d", len(grouped), len(rows))
	return nil
}

// groupByRole buckets solver assignments by required skill, keeping solver
// order inside each bucket. Unassigned instances keep an empty employee so
// the snapshot still shows the uncovered demand.
func groupByRole(shifts []scheduling.AssignedShift) map[string]*RoleSchedule {
	grouped := make(map[string]*RoleSchedule)
	for _, shift := range shifts {
		bucket, ok := grouped[shift.RequiredSkill]
		if !ok {
			bucket = &RoleSchedule{Shifts: []SnapshotShift{}}
			grouped[shift.RequiredSkill] = bucket
		}
		bucket.Shifts = append(bucket.Shifts, SnapshotShift{
			Employee: shift.Employee,
			Role:     shift.RequiredSkill,
			Start:    shift.Start,
			End:      shift.End,
			FullDay:  shift.FullDay,
		})
	}
	return grouped
}
