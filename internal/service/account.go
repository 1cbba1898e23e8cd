package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shift-planner-backend/internal/auth"
	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/repository"
)

// RegisterAccountRequest represents a new tenant registration
type RegisterAccountRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// TokenRequest represents a bearer token request for an existing account
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// tokenTTL is how long issued bearer tokens stay valid
const tokenTTL = 24 * time.Hour

// AccountService handles tenant lifecycle and token issuance
type AccountService struct {
	accountRepo repository.AccountRepositoryInterface
	authService *auth.Service
	validator   *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repository.AccountRepositoryInterface, authService *auth.Service) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		authService: authService,
		validator:   validator.New(),
	}
}

// Register creates a new account. Emails are unique across tenants.
func (s *AccountService) Register(req *RegisterAccountRequest) (*AccountResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.accountRepo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrAccountExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account := &models.Account{
		Name:  strings.TrimSpace(req.Name),
		Email: email,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	return toAccountResponse(account), nil
}

// Token issues a bearer token for an existing account
func (s *AccountService) Token(req *TokenRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	account, err := s.accountRepo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}

	token, err := s.authService.IssueToken(account.ID.String(), account.Email, tokenTTL)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(tokenTTL),
	}, nil
}

// Get returns a single account
func (s *AccountService) Get(id uuid.UUID) (*AccountResponse, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Delete removes an account and, through FK cascades, its roster, templates,
// settings, shifts and snapshots
func (s *AccountService) Delete(id uuid.UUID) error {
	if _, err := s.accountRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return err
	}
	return s.accountRepo.Delete(id)
}

func toAccountResponse(account *models.Account) *AccountResponse {
	return &AccountResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	}
}
