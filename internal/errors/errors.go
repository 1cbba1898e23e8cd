package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// UpstreamError represents a failure in an external dependency (solver, storage).
// The wrapped cause is logged but not detailed to API callers.
type UpstreamError struct {
	Dependency string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Dependency, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Dependency)
}

// Unwrap exposes the underlying cause
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrAccountNotFound       = &NotFoundError{Entity: "account"}
	ErrEmployeeNotFound      = &NotFoundError{Entity: "employee"}
	ErrAvailabilityNotFound  = &NotFoundError{Entity: "availability record"}
	ErrShiftTemplateNotFound = &NotFoundError{Entity: "shift template"}
	ErrSettingsNotFound      = &NotFoundError{Entity: "account settings"}
	ErrScheduleNotFound      = &NotFoundError{Entity: "schedule"}
)

// Already Exists Errors
var (
	ErrAccountExists      = &AlreadyExistsError{Entity: "account", Context: "with this email"}
	ErrAvailabilityExists = &AlreadyExistsError{Entity: "availability record", Context: "for this employee and date"}
)

// Business Logic Errors
var (
	ErrInvalidMonth              = errors.New("month must be between 1 and 12")
	ErrInvalidYear               = errors.New("invalid year")
	ErrInvalidAvailabilityStatus = errors.New("invalid availability status")
	ErrInvalidTimeOfDay          = errors.New("time must be formatted as HH:MM:SS")
	ErrInvalidWeekday            = errors.New("unknown weekday name")
	ErrInvalidRate               = errors.New("rate must be between 0.0 and 1.0")
	ErrEmptySchedule             = errors.New("schedule payload contains no assignable shifts")
)

// Solver Errors
var (
	ErrSolverNotConfigured = errors.New("solver base URL is not configured")
	ErrSolverBadStatus     = errors.New("solver returned a non-parseable status response")
	ErrSolverExhausted     = errors.New("solver polling exceeded the configured attempt limit")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NewUpstreamError wraps a dependency failure
func NewUpstreamError(dependency string, err error) error {
	return &UpstreamError{Dependency: dependency, Err: err}
}
