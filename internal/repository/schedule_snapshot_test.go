//go:build integration
// +build integration

package repository

import (
	"encoding/json"
	"testing"

	"shift-planner-backend/internal/database/models"
	"shift-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ScheduleSnapshotRepositoryTestSuite tests the ScheduleSnapshotRepository
type ScheduleSnapshotRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScheduleSnapshotRepository
	factories     *testutils.FactorySet

	account *models.Account
}

// SetupSuite runs before all tests in the suite
func (suite *ScheduleSnapshotRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScheduleSnapshotRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScheduleSnapshotRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScheduleSnapshotRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.account = suite.factories.Account.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.account).Error)
}

// TearDownTest runs after each test
func (suite *ScheduleSnapshotRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertReplacesPayload tests that writing the same period keeps a single row
func (suite *ScheduleSnapshotRepositoryTestSuite) TestUpsertReplacesPayload() {
	first := &models.ScheduleSnapshot{
		AccountID: suite.account.ID,
		Year:      2025,
		Month:     3,
		Payload:   json.RawMessage(`{"nurse":{"shifts":[]}}`),
	}
	suite.NoError(suite.repo.Upsert(first))

	second := &models.ScheduleSnapshot{
		AccountID: suite.account.ID,
		Year:      2025,
		Month:     3,
		Payload:   json.RawMessage(`{"doctor":{"shifts":[]}}`),
	}
	suite.NoError(suite.repo.Upsert(second))

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.ScheduleSnapshot{}).
		Where("account_id = ?", suite.account.ID).Count(&count).Error)
	suite.Equal(int64(1), count, "one snapshot per (account, year, month)")

	snapshot, err := suite.repo.GetByPeriod(suite.account.ID, 2025, 3)
	suite.NoError(err)
	suite.JSONEq(`{"doctor":{"shifts":[]}}`, string(snapshot.Payload))
}

// TestGetByPeriodScoped tests that periods do not bleed into each other
func (suite *ScheduleSnapshotRepositoryTestSuite) TestGetByPeriodScoped() {
	march := &models.ScheduleSnapshot{
		AccountID: suite.account.ID,
		Year:      2025,
		Month:     3,
		Payload:   json.RawMessage(`{"nurse":{"shifts":[]}}`),
	}
	suite.NoError(suite.repo.Upsert(march))

	_, err := suite.repo.GetByPeriod(suite.account.ID, 2025, 4)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByPeriod(uuid.New(), 2025, 3)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestScheduleSnapshotRepositoryTestSuite runs the test suite
func TestScheduleSnapshotRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleSnapshotRepositoryTestSuite))
}
