package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/mocks"
	"shift-planner-backend/internal/service"
)

func newEmployeeService(t *testing.T) (*service.EmployeeService, *mocks.MockEmployeeRepositoryInterface, *mocks.MockAccountRepositoryInterface) {
	ctrl := gomock.NewController(t)
	employeeRepo := mocks.NewMockEmployeeRepositoryInterface(ctrl)
	accountRepo := mocks.NewMockAccountRepositoryInterface(ctrl)
	return service.NewEmployeeService(employeeRepo, accountRepo), employeeRepo, accountRepo
}

func TestEmployeeService_Create(t *testing.T) {
	svc, employeeRepo, accountRepo := newEmployeeService(t)
	accountID := uuid.New()

	accountRepo.EXPECT().GetByID(accountID).Return(&models.Account{}, nil)
	employeeRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(employee *models.Employee) error {
		assert.Equal(t, "Dana Levi", employee.Name)
		assert.Equal(t, models.StringList{"nurse", "midwife"}, employee.Roles, "roles are stored lower-case")
		employee.ID = uuid.New()
		return nil
	})

	resp, err := svc.Create(&service.CreateEmployeeRequest{
		AccountID: accountID,
		Name:      "  Dana Levi ",
		Roles:     []string{" Nurse", "MIDWIFE "},
		Rate:      0.8,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.8, resp.Rate)
	assert.Equal(t, []string{"nurse", "midwife"}, resp.Roles)
}

func TestEmployeeService_Create_RateOutOfRange(t *testing.T) {
	svc, _, _ := newEmployeeService(t)

	_, err := svc.Create(&service.CreateEmployeeRequest{
		AccountID: uuid.New(),
		Name:      "Dana",
		Roles:     []string{"nurse"},
		Rate:      1.5,
	})
	assert.True(t, apperrors.IsValidation(err), "rate above 1 should fail validation, got %v", err)
}

func TestEmployeeService_Create_AccountNotFound(t *testing.T) {
	svc, _, accountRepo := newEmployeeService(t)
	accountID := uuid.New()
	accountRepo.EXPECT().GetByID(accountID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(&service.CreateEmployeeRequest{
		AccountID: accountID,
		Name:      "Dana",
		Roles:     []string{"nurse"},
		Rate:      1,
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestEmployeeService_Get_NotFound(t *testing.T) {
	svc, employeeRepo, _ := newEmployeeService(t)
	id := uuid.New()
	employeeRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(id)
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update_PartialFields(t *testing.T) {
	svc, employeeRepo, _ := newEmployeeService(t)
	id := uuid.New()
	existing := &models.Employee{
		Name:  "Dana",
		Roles: models.StringList{"nurse"},
		Rate:  1.0,
	}
	existing.ID = id

	employeeRepo.EXPECT().GetByID(id).Return(existing, nil)
	employeeRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(employee *models.Employee) error {
		assert.Equal(t, "Dana", employee.Name, "name untouched by a rate-only update")
		assert.Equal(t, 0.5, employee.Rate)
		return nil
	})

	rate := 0.5
	resp, err := svc.Update(id, &service.UpdateEmployeeRequest{Rate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 0.5, resp.Rate)
}

func TestEmployeeService_List_ClampsLimit(t *testing.T) {
	svc, employeeRepo, _ := newEmployeeService(t)
	accountID := uuid.New()
	employeeRepo.EXPECT().GetByAccountID(accountID, 50, 0).Return(nil, int64(0), nil)

	resp, err := svc.List(accountID, 0, -3)
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Limit)
	assert.Equal(t, 0, resp.Offset)
}
