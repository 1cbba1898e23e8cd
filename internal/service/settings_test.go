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

func newSettingsService(t *testing.T) (*service.SettingsService, *mocks.MockAccountSettingsRepositoryInterface, *mocks.MockAccountRepositoryInterface) {
	ctrl := gomock.NewController(t)
	settingsRepo := mocks.NewMockAccountSettingsRepositoryInterface(ctrl)
	accountRepo := mocks.NewMockAccountRepositoryInterface(ctrl)
	return service.NewSettingsService(settingsRepo, accountRepo), settingsRepo, accountRepo
}

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc, settingsRepo, accountRepo := newSettingsService(t)
	accountID := uuid.New()

	accountRepo.EXPECT().GetByID(accountID).Return(&models.Account{}, nil)
	settingsRepo.EXPECT().GetByAccountID(accountID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Get(accountID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMonthlyHours, resp.MonthlyHours)
	assert.Equal(t, "hospital", resp.Location)
	assert.NotNil(t, resp.StaffingTargets)
	assert.NotNil(t, resp.FullDayTargets)
}

func TestSettingsService_Update(t *testing.T) {
	svc, settingsRepo, accountRepo := newSettingsService(t)
	accountID := uuid.New()
	hours := 150

	accountRepo.EXPECT().GetByID(accountID).Return(&models.Account{}, nil)
	settingsRepo.EXPECT().GetByAccountID(accountID).Return(nil, gorm.ErrRecordNotFound)
	settingsRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(settings *models.AccountSettings) error {
		assert.Equal(t, accountID, settings.AccountID)
		assert.Equal(t, 150, settings.MonthlyHours)
		assert.Equal(t, 2, settings.StaffingTargets.Lookup("nurse", "early", "monday"))
		return nil
	})

	resp, err := svc.Update(accountID, &service.UpdateSettingsRequest{
		MonthlyHours: &hours,
		StaffingTargets: models.StaffingTargets{
			"nurse": {"early": {"monday": 2}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 150, resp.MonthlyHours)
}

func TestSettingsService_Update_RejectsUnknownWeekday(t *testing.T) {
	svc, _, _ := newSettingsService(t)

	_, err := svc.Update(uuid.New(), &service.UpdateSettingsRequest{
		StaffingTargets: models.StaffingTargets{
			"nurse": {"early": {"mondayy": 2}},
		},
	})
	assert.True(t, apperrors.IsValidation(err), "unknown weekday should fail validation, got %v", err)
}

func TestSettingsService_Update_RejectsNegativeHeadcount(t *testing.T) {
	svc, _, _ := newSettingsService(t)

	_, err := svc.Update(uuid.New(), &service.UpdateSettingsRequest{
		FullDayTargets: models.FullDayTargets{"saturday": -1},
	})
	assert.True(t, apperrors.IsValidation(err), "negative headcount should fail validation, got %v", err)
}
