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
)

// CreateEmployeeRequest represents the request to add an employee to a roster
type CreateEmployeeRequest struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=200"`
	Roles     []string  `json:"roles" validate:"required,min=1,dive,required"`
	Rate      float64   `json:"rate" validate:"min=0,max=1"`
	Gender    string    `json:"gender" validate:"omitempty,max=20"`
}

// UpdateEmployeeRequest represents a partial employee update
type UpdateEmployeeRequest struct {
	Name   *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Roles  []string `json:"roles,omitempty" validate:"omitempty,min=1,dive,required"`
	Rate   *float64 `json:"rate,omitempty" validate:"omitempty,min=0,max=1"`
	Gender *string  `json:"gender,omitempty" validate:"omitempty,max=20"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	Rate      float64   `json:"rate"`
	Gender    string    `json:"gender,omitempty"`
}

// EmployeeListResponse represents a paginated roster listing
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// EmployeeService handles roster business logic
type EmployeeService struct {
	employeeRepo repository.EmployeeRepositoryInterface
	accountRepo  repository.AccountRepositoryInterface
	validator    *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepositoryInterface, accountRepo repository.AccountRepositoryInterface) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		accountRepo:  accountRepo,
		validator:    validator.New(),
	}
}

// Create adds an employee to the account's roster. Role labels are stored
// lower-case so staffing-target keys and solver skills always agree.
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if _, err := s.accountRepo.GetByID(req.AccountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	employee := &models.Employee{
		AccountID: req.AccountID,
		Name:      strings.TrimSpace(req.Name),
		Roles:     normalizeRoles(req.Roles),
		Rate:      req.Rate,
		Gender:    req.Gender,
	}
	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return toEmployeeResponse(employee), nil
}

// Get retrieves one employee by id
func (s *EmployeeService) Get(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// List returns the account roster, paginated
func (s *EmployeeService) List(accountID uuid.UUID, limit, offset int) (*EmployeeListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	employees, total, err := s.employeeRepo.GetByAccountID(accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *toEmployeeResponse(&employees[i])
	}
	return &EmployeeListResponse{
		Employees: responses,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// Update applies a partial update to an employee
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		employee.Name = strings.TrimSpace(*req.Name)
	}
	if req.Roles != nil {
		employee.Roles = normalizeRoles(req.Roles)
	}
	if req.Rate != nil {
		employee.Rate = *req.Rate
	}
	if req.Gender != nil {
		employee.Gender = *req.Gender
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return toEmployeeResponse(employee), nil
}

// Delete removes an employee and, via the cascade, their availability records
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.employeeRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	if err := s.employeeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func normalizeRoles(roles []string) models.StringList {
	normalized := make(models.StringList, 0, len(roles))
	for _, role := range roles {
		role = strings.ToLower(strings.TrimSpace(role))
		if role == "" {
			continue
		}
		normalized = append(normalized, role)
	}
	return normalized
}

func toEmployeeResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        employee.ID,
		AccountID: employee.AccountID,
		Name:      employee.Name,
		Roles:     employee.Roles,
		Rate:      employee.Rate,
		Gender:    employee.Gender,
	}
}
